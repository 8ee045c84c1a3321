// internal/app/store/acceptedcategories/acceptedcategorystore.go
package acceptedcategorystore

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
	return &Store{c: collections.C(db, collections.AcceptedCategories)}
}

// Upsert writes the accepted-category entry for (orgID, categoryID) in a
// single operation keyed on the unique pair index, so a concurrent Upsert
// for the same pair updates the same document instead of duplicating it.
// Returns the stored entry and whether it was newly created.
func (s *Store) Upsert(ctx context.Context, orgID primitive.ObjectID, categoryID, qualityGuidelines, instructions string) (models.AcceptedCategory, bool, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"organization_id": orgID, "category_id": categoryID},
		bson.M{
			"$set": bson.M{
				"quality_guidelines": qualityGuidelines,
				"instructions":       instructions,
				"updated_at":         now,
			},
			"$setOnInsert": bson.M{
				"organization_id": orgID,
				"category_id":     categoryID,
				"created_at":      now,
			},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return models.AcceptedCategory{}, false, err
	}

	var ac models.AcceptedCategory
	err = s.c.FindOne(ctx, bson.M{"organization_id": orgID, "category_id": categoryID}).Decode(&ac)
	if err != nil {
		return models.AcceptedCategory{}, false, err
	}
	return ac, res.UpsertedCount > 0, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AcceptedCategory, error) {
	var ac models.AcceptedCategory
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ac)
	if err != nil {
		return models.AcceptedCategory{}, err
	}
	return ac, nil
}

// ListByOrganization returns the categories an organization accepts,
// sorted by category slug.
func (s *Store) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]models.AcceptedCategory, error) {
	return s.find(ctx, bson.M{"organization_id": orgID},
		options.Find().SetSort(bson.D{{Key: "category_id", Value: 1}}))
}

// ListByCategory returns the entries of every organization accepting the
// given category.
func (s *Store) ListByCategory(ctx context.Context, categoryID string) ([]models.AcceptedCategory, error) {
	return s.find(ctx, bson.M{"category_id": categoryID},
		options.Find().SetSort(bson.D{{Key: "organization_id", Value: 1}}))
}

// ListByOrganizations loads entries for a batch of organizations at once.
func (s *Store) ListByOrganizations(ctx context.Context, orgIDs []primitive.ObjectID) ([]models.AcceptedCategory, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	return s.find(ctx, bson.M{"organization_id": bson.M{"$in": orgIDs}}, nil)
}

// Delete removes an entry by ID. Deleting an entry that does not exist is
// not an error; the returned count is 0.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByOrganization removes all entries for an organization. Returns the
// number of documents deleted.
func (s *Store) DeleteByOrganization(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.AcceptedCategory, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.c.Find(ctx, filter, opts)
	} else {
		cur, err = s.c.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.AcceptedCategory
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
