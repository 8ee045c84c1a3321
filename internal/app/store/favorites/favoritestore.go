// internal/app/store/favorites/favoritestore.go
package favoritestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehubapp/givehub/internal/app/system/collections"
	"github.com/givehubapp/givehub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: collections.C(db, collections.Favorites)}
}

// Add records that the member favorited the organization. The upsert keys
// on the unique (member_id, organization_id) index; favoriting twice is a
// no-op. Returns whether a new favorite was created.
func (s *Store) Add(ctx context.Context, memberID, orgID primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"member_id": memberID, "organization_id": orgID},
		bson.M{"$setOnInsert": bson.M{
			"member_id":       memberID,
			"organization_id": orgID,
			"created_at":      time.Now().UTC(),
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// Remove deletes the favorite for (memberID, orgID). Removing a favorite
// that does not exist is not an error; the returned count is 0.
func (s *Store) Remove(ctx context.Context, memberID, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"member_id": memberID, "organization_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByMember returns a member's favorites, newest first.
func (s *Store) ListByMember(ctx context.Context, memberID primitive.ObjectID) ([]models.Favorite, error) {
	cur, err := s.c.Find(ctx, bson.M{"member_id": memberID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var favs []models.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

// IsFavorite reports whether the member favorited the organization. A zero
// memberID (no member signed in) is always false.
func (s *Store) IsFavorite(ctx context.Context, memberID, orgID primitive.ObjectID) (bool, error) {
	if memberID.IsZero() {
		return false, nil
	}
	err := s.c.FindOne(ctx, bson.M{"member_id": memberID, "organization_id": orgID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FavoriteSet returns the subset of orgIDs the member has favorited.
// A zero memberID yields an empty set.
func (s *Store) FavoriteSet(ctx context.Context, memberID primitive.ObjectID, orgIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	set := make(map[primitive.ObjectID]bool)
	if memberID.IsZero() || len(orgIDs) == 0 {
		return set, nil
	}
	cur, err := s.c.Find(ctx, bson.M{
		"member_id":       memberID,
		"organization_id": bson.M{"$in": orgIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var fav models.Favorite
		if err := cur.Decode(&fav); err != nil {
			return nil, err
		}
		set[fav.OrganizationID] = true
	}
	return set, cur.Err()
}

// DeleteByOrganization removes all favorites of an organization. Returns
// the number of documents deleted.
func (s *Store) DeleteByOrganization(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
