// internal/domain/models/acceptedcategory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcceptedCategory links one organization to one category it accepts.
// Exactly one document per (organization_id, category_id); the pair is
// enforced by a unique index, so concurrent upserts cannot duplicate it.
type AcceptedCategory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	CategoryID     string             `bson:"category_id" json:"category_id"`

	// Per-category donor guidance.
	QualityGuidelines string `bson:"quality_guidelines" json:"quality_guidelines"`
	Instructions      string `bson:"instructions" json:"instructions"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
