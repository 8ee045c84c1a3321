// internal/app/store/assignments/assignmentstore.go
package assignmentstore

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
	return &Store{c: collections.C(db, collections.Assignments)}
}

// Assign records the member as staff of the organization. The upsert keys
// on the unique (member_id, organization_id) index, so assigning twice is
// a no-op.
func (s *Store) Assign(ctx context.Context, memberID, orgID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"member_id": memberID, "organization_id": orgID},
		bson.M{"$setOnInsert": bson.M{
			"member_id":       memberID,
			"organization_id": orgID,
			"created_at":      time.Now().UTC(),
		}},
		options.Update().SetUpsert(true))
	return err
}

// Remove deletes the assignment for (memberID, orgID).
func (s *Store) Remove(ctx context.Context, memberID, orgID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"member_id": memberID, "organization_id": orgID})
	return err
}

// MemberForOrganization returns the assignment of the organization's staff
// member. mongo.ErrNoDocuments when no one is assigned.
func (s *Store) MemberForOrganization(ctx context.Context, orgID primitive.ObjectID) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"organization_id": orgID}).Decode(&a)
	if err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

// OrganizationsForMember returns the assignments of every organization the
// member administers.
func (s *Store) OrganizationsForMember(ctx context.Context, memberID primitive.ObjectID) ([]models.Assignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"member_id": memberID},
		options.Find().SetSort(bson.D{{Key: "organization_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var assigns []models.Assignment
	if err := cur.All(ctx, &assigns); err != nil {
		return nil, err
	}
	return assigns, nil
}

// IsStaff reports whether the member administers the organization.
func (s *Store) IsStaff(ctx context.Context, memberID, orgID primitive.ObjectID) (bool, error) {
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

// DeleteByOrganization removes all assignments for an organization.
// Returns the number of documents deleted.
func (s *Store) DeleteByOrganization(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
