// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehubapp/givehub/internal/app/system/collections"
	"github.com/givehubapp/givehub/internal/domain/models"
)

type Store struct {
	c         *mongo.Collection
	accepted  *mongo.Collection
	favorites *mongo.Collection
	assigns   *mongo.Collection
}

var ErrDuplicateOrganization = errors.New("an organization with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{
		c:         collections.C(db, collections.Organizations),
		accepted:  collections.C(db, collections.AcceptedCategories),
		favorites: collections.C(db, collections.Favorites),
		assigns:   collections.C(db, collections.Assignments),
	}
}

func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.NameCI = text.Fold(org.Name)
	org.CreatedAt = now
	org.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, org)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Organization{}, ErrDuplicateOrganization
		}
		return models.Organization{}, err
	}
	return org, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// GetByIDs loads multiple organizations by their ObjectIDs.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update replaces an organization's mutable fields and refreshes UpdatedAt.
// Coordinates are cleared when org.Coordinates is nil (the address changed
// and did not geocode).
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, org models.Organization) error {
	set := bson.M{
		"name":        org.Name,
		"name_ci":     text.Fold(org.Name),
		"address":     org.Address,
		"phone":       org.Phone,
		"website":     org.Website,
		"email":       org.Email,
		"description": org.Description,
		"drop_off":    org.DropOff,
		"pick_up":     org.PickUp,
		"shipping":    org.Shipping,
		"updated_at":  time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if org.Coordinates != nil {
		set["coordinates"] = org.Coordinates
	} else {
		update["$unset"] = bson.M{"coordinates": ""}
	}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateOrganization
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an organization and every record that references it:
// accepted categories, favorites, and staff assignments. Returns the number
// of organization documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		return 0, nil
	}

	ref := bson.M{"organization_id": id}
	if _, err := s.accepted.DeleteMany(ctx, ref); err != nil {
		return res.DeletedCount, err
	}
	if _, err := s.favorites.DeleteMany(ctx, ref); err != nil {
		return res.DeletedCount, err
	}
	if _, err := s.assigns.DeleteMany(ctx, ref); err != nil {
		return res.DeletedCount, err
	}
	return res.DeletedCount, nil
}

// List returns all organizations sorted by folded name.
func (s *Store) List(ctx context.Context) ([]models.Organization, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}))
}

// SearchByName returns organizations whose folded name starts with q,
// sorted by folded name. An empty q lists everything.
func (s *Store) SearchByName(ctx context.Context, q string) ([]models.Organization, error) {
	filter := bson.M{}
	if fq := text.Fold(q); fq != "" {
		// Prefix window on the folded name; the upper bound closes the range
		// without a regex scan.
		filter["name_ci"] = bson.M{"$gte": fq, "$lt": fq + "\uffff"}
	}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}))
}

// Find returns organizations matching the given filter with optional find
// options. The caller builds the filter and options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Organization, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Count returns the number of organizations matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
