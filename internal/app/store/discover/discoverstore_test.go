package discoverstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	discoverstore "github.com/givehubapp/givehub/internal/app/store/discover"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestStore_Search_ByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discoverstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateOrganization(ctx, "Goodwill")
	fx.CreateOrganization(ctx, "Salvation Army")

	entries, err := store.Search(ctx, "good", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Organization.Name != "Goodwill" {
		t.Errorf("matched %q", entries[0].Organization.Name)
	}
	if entries[0].Favorite {
		t.Error("anonymous search must not report favorites")
	}
}

func TestStore_Search_ByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discoverstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Shelter House")
	cat := fx.CreateCategory(ctx, "Coats")
	fx.CreateAcceptedCategory(ctx, org.ID, cat.ID, "Clean only", "Rear door")

	// "coa" matches no organization name but prefixes the category slug.
	entries, err := store.Search(ctx, "coa", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Organization.ID != org.ID {
		t.Errorf("matched org %s, want %s", e.Organization.ID.Hex(), org.ID.Hex())
	}
	if len(e.Accepted) != 1 {
		t.Fatalf("entry has %d accepted categories, want 1", len(e.Accepted))
	}
	if e.Accepted[0].Name != "Coats" || e.Accepted[0].QualityGuidelines != "Clean only" {
		t.Errorf("accepted detail = %+v", e.Accepted[0])
	}
}

func TestStore_Search_NoDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discoverstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Name and accepted category both match the filter; the org must
	// appear once.
	org := fx.CreateOrganization(ctx, "Coat Drive Central")
	cat := fx.CreateCategory(ctx, "Coats")
	fx.CreateAcceptedCategory(ctx, org.ID, cat.ID, "", "")

	entries, err := store.Search(ctx, "coat", primitive.NilObjectID)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestStore_Search_FavoriteFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discoverstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "auth|disc", "d@test.com", "Disc")
	liked := fx.CreateOrganization(ctx, "Liked Org")
	fx.CreateOrganization(ctx, "Other Org")
	fx.CreateFavorite(ctx, member.ID, liked.ID)

	entries, err := store.Search(ctx, "", member.ID)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		want := e.Organization.ID == liked.ID
		if e.Favorite != want {
			t.Errorf("org %q favorite = %v, want %v", e.Organization.Name, e.Favorite, want)
		}
	}
}

func TestStore_CategoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := discoverstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orgA := fx.CreateOrganization(ctx, "Accepts Toys")
	orgB := fx.CreateOrganization(ctx, "Accepts Coats")
	toys := fx.CreateCategory(ctx, "Toys")
	coats := fx.CreateCategory(ctx, "Coats")
	fx.CreateAcceptedCategory(ctx, orgA.ID, toys.ID, "", "")
	fx.CreateAcceptedCategory(ctx, orgB.ID, coats.ID, "", "")

	entries, err := store.CategoryFilter(ctx, toys.ID, primitive.NilObjectID)
	if err != nil {
		t.Fatalf("CategoryFilter failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Organization.ID != orgA.ID {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
