// Package collections resolves environment-scoped collection names.
//
// The directory shares one MongoDB deployment across environments, so
// non-production environments prefix every collection name (e.g.
// "dev_organizations"). The prefix is fixed at startup from configuration;
// stores never see it.
package collections

import (
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// Canonical collection names.
const (
	Organizations      = "organizations"
	Categories         = "categories"
	AcceptedCategories = "accepted_categories"
	Members            = "members"
	Favorites          = "favorites"
	Assignments        = "assignments"
	OAuthStates        = "oauth_states"
)

var (
	mu     sync.RWMutex
	prefix string
)

// SetPrefix sets the environment prefix. Call once during startup, before
// any store is constructed. An empty prefix (production, tests) leaves
// names untouched.
func SetPrefix(p string) {
	mu.Lock()
	defer mu.Unlock()
	prefix = p
}

// Name returns the environment-scoped name for a canonical collection name.
func Name(canonical string) string {
	mu.RLock()
	defer mu.RUnlock()
	return prefix + canonical
}

// C is shorthand for db.Collection(Name(canonical)).
func C(db *mongo.Database, canonical string) *mongo.Collection {
	return db.Collection(Name(canonical))
}

// All lists every canonical collection name, in index-setup order.
func All() []string {
	return []string{
		Organizations,
		Categories,
		AcceptedCategories,
		Members,
		Favorites,
		Assignments,
		OAuthStates,
	}
}
