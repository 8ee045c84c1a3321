// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a directory user, keyed by the external authentication subject
// (auth_id). Members are created lazily the first time an authenticated
// request arrives.
type Member struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthID string             `bson:"auth_id" json:"-"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
