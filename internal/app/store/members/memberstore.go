// internal/app/store/members/memberstore.go
package memberstore

// Terminology: Member Identifiers
//   - MemberID / memberID / member_id: The MongoDB ObjectID (_id) that uniquely identifies a member record
//   - AuthID / authID / auth_id: The subject the external identity provider reports for the member

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
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
	return &Store{c: collections.C(db, collections.Members)}
}

// Ensure returns the member for authID, creating the record on first
// sight. The upsert keys on the unique auth_id index, so two concurrent
// first requests for the same subject converge on one document. Name and
// email are refreshed from the identity provider on every call.
func (s *Store) Ensure(ctx context.Context, authID, email, name string) (models.Member, error) {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"auth_id": authID},
		bson.M{
			"$set": bson.M{
				"email":      email,
				"name":       name,
				"name_ci":    text.Fold(name),
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"auth_id":    authID,
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return models.Member{}, err
	}
	return s.GetByAuthID(ctx, authID)
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) GetByAuthID(ctx context.Context, authID string) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"auth_id": authID}).Decode(&m)
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}
