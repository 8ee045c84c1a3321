// internal/domain/models/category.go
package models

// Category is a named class of donatable item. The document ID is the
// lower-cased slug of the name ("Baby Supplies" -> "baby supplies"), so a
// category can be referenced by slug without a lookup.
type Category struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
