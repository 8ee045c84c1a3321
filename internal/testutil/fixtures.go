package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/givehubapp/givehub/internal/app/system/collections"
	"github.com/givehubapp/givehub/internal/app/system/format"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a test organization with the given name.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Address:     "101 Test Ave, Columbia, MO 65201",
		Phone:       "5735550100",
		Email:       "contact@example.org",
		Description: "Test organization",
		DropOff:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := collections.C(f.db, collections.Organizations).InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}

// CreateCategory creates a category for the given display name.
func (f *Fixtures) CreateCategory(ctx context.Context, name string) models.Category {
	f.t.Helper()

	cat := models.Category{
		ID:   format.CategorySlug(name),
		Name: name,
	}
	_, err := collections.C(f.db, collections.Categories).InsertOne(ctx, cat)
	if err != nil {
		f.t.Fatalf("failed to create test category: %v", err)
	}
	return cat
}

// CreateAcceptedCategory links an organization to a category.
func (f *Fixtures) CreateAcceptedCategory(ctx context.Context, orgID primitive.ObjectID, categoryID, guidelines, instructions string) models.AcceptedCategory {
	f.t.Helper()

	now := time.Now().UTC()
	ac := models.AcceptedCategory{
		ID:                primitive.NewObjectID(),
		OrganizationID:    orgID,
		CategoryID:        categoryID,
		QualityGuidelines: guidelines,
		Instructions:      instructions,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	_, err := collections.C(f.db, collections.AcceptedCategories).InsertOne(ctx, ac)
	if err != nil {
		f.t.Fatalf("failed to create test accepted category: %v", err)
	}
	return ac
}

// CreateMember creates a member with the given auth subject.
func (f *Fixtures) CreateMember(ctx context.Context, authID, email, name string) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:        primitive.NewObjectID(),
		AuthID:    authID,
		Email:     email,
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := collections.C(f.db, collections.Members).InsertOne(ctx, m)
	if err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreateFavorite marks orgID as a favorite of memberID.
func (f *Fixtures) CreateFavorite(ctx context.Context, memberID, orgID primitive.ObjectID) models.Favorite {
	f.t.Helper()

	fav := models.Favorite{
		ID:             primitive.NewObjectID(),
		MemberID:       memberID,
		OrganizationID: orgID,
		CreatedAt:      time.Now().UTC(),
	}
	_, err := collections.C(f.db, collections.Favorites).InsertOne(ctx, fav)
	if err != nil {
		f.t.Fatalf("failed to create test favorite: %v", err)
	}
	return fav
}

// CreateAssignment makes memberID the staff member for orgID.
func (f *Fixtures) CreateAssignment(ctx context.Context, memberID, orgID primitive.ObjectID) models.Assignment {
	f.t.Helper()

	a := models.Assignment{
		ID:             primitive.NewObjectID(),
		MemberID:       memberID,
		OrganizationID: orgID,
		CreatedAt:      time.Now().UTC(),
	}
	_, err := collections.C(f.db, collections.Assignments).InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}
