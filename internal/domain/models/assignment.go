// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment links a member to the organization they administer. Staff
// checks and the dashboard resolve through this collection.
type Assignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID       primitive.ObjectID `bson:"member_id" json:"member_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
