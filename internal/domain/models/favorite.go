// internal/domain/models/favorite.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite marks an organization a member saved. At most one document per
// (member_id, organization_id), enforced by a unique index.
type Favorite struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID       primitive.ObjectID `bson:"member_id" json:"member_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
