// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates is a geocoded point. Stored only when the organization's
// address resolved successfully.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Organization is a donation-accepting entity. NameCI is the case/diacritic
// folded name used for search, sort, and the uniqueness index.
type Organization struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Address     string             `bson:"address" json:"address"`
	Phone       string             `bson:"phone" json:"phone"`
	Website     string             `bson:"website" json:"website"`
	Email       string             `bson:"email" json:"email"`
	Description string             `bson:"description" json:"description"`
	Coordinates *Coordinates       `bson:"coordinates,omitempty" json:"coordinates,omitempty"`

	// How donations can reach the organization.
	DropOff  bool `bson:"drop_off" json:"drop_off"`
	PickUp   bool `bson:"pick_up" json:"pick_up"`
	Shipping bool `bson:"shipping" json:"shipping"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
