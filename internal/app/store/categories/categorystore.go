// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehubapp/givehub/internal/app/system/collections"
	"github.com/givehubapp/givehub/internal/app/system/format"
	"github.com/givehubapp/givehub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: collections.C(db, collections.Categories)}
}

// Ensure creates the category for name if it does not exist and returns it.
// The document ID is the lower-cased slug, so concurrent Ensure calls for
// the same name converge on one document.
func (s *Store) Ensure(ctx context.Context, name string) (models.Category, error) {
	slug := format.CategorySlug(name)
	_, err := s.c.UpdateByID(ctx, slug,
		bson.M{"$setOnInsert": bson.M{"name": format.CategoryName(slug)}},
		options.Update().SetUpsert(true))
	if err != nil {
		return models.Category{}, err
	}
	return s.GetByID(ctx, slug)
}

func (s *Store) GetByID(ctx context.Context, slug string) (models.Category, error) {
	var cat models.Category
	err := s.c.FindOne(ctx, bson.M{"_id": format.CategorySlug(slug)}).Decode(&cat)
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// GetByIDs loads multiple categories by slug.
func (s *Store) GetByIDs(ctx context.Context, slugs []string) ([]models.Category, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": slugs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// List returns all categories sorted by slug.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// SearchBySlugPrefix returns categories whose slug starts with q.
func (s *Store) SearchBySlugPrefix(ctx context.Context, q string) ([]models.Category, error) {
	fq := format.CategorySlug(q)
	if fq == "" {
		return s.List(ctx)
	}
	cur, err := s.c.Find(ctx,
		bson.M{"_id": bson.M{"$gte": fq, "$lt": fq + "\uffff"}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
