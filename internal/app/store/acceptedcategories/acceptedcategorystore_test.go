package acceptedcategorystore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	acceptedcategorystore "github.com/givehubapp/givehub/internal/app/store/acceptedcategories"
	"github.com/givehubapp/givehub/internal/app/system/indexes"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestStore_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := acceptedcategorystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	org := fx.CreateOrganization(ctx, "Upsert Org")
	cat := fx.CreateCategory(ctx, "Coats")

	ac, created, err := store.Upsert(ctx, org.ID, cat.ID, "No broken zippers", "Rear entrance")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !created {
		t.Error("first Upsert should create")
	}
	if ac.QualityGuidelines != "No broken zippers" {
		t.Errorf("guidelines = %q", ac.QualityGuidelines)
	}

	// Second upsert for the same pair updates in place.
	ac2, created, err := store.Upsert(ctx, org.ID, cat.ID, "Clean only", "Front desk")
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if created {
		t.Error("second Upsert should update, not create")
	}
	if ac2.ID != ac.ID {
		t.Errorf("second Upsert produced a new document: %s vs %s", ac2.ID.Hex(), ac.ID.Hex())
	}
	if ac2.Instructions != "Front desk" {
		t.Errorf("instructions = %q", ac2.Instructions)
	}

	entries, err := store.ListByOrganization(ctx, org.ID)
	if err != nil {
		t.Fatalf("ListByOrganization failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("org has %d entries, want 1", len(entries))
	}
}

func TestStore_ListByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := acceptedcategorystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orgA := fx.CreateOrganization(ctx, "Org A")
	orgB := fx.CreateOrganization(ctx, "Org B")
	cat := fx.CreateCategory(ctx, "Toys")
	other := fx.CreateCategory(ctx, "Coats")
	fx.CreateAcceptedCategory(ctx, orgA.ID, cat.ID, "", "")
	fx.CreateAcceptedCategory(ctx, orgB.ID, cat.ID, "", "")
	fx.CreateAcceptedCategory(ctx, orgB.ID, other.ID, "", "")

	entries, err := store.ListByCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("category has %d entries, want 2", len(entries))
	}
}

func TestStore_Delete_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := acceptedcategorystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Delete Org")
	cat := fx.CreateCategory(ctx, "Books")
	ac := fx.CreateAcceptedCategory(ctx, org.ID, cat.ID, "", "")

	n, err := store.Delete(ctx, ac.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}

	// Deleting again is not an error.
	n, err = store.Delete(ctx, ac.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete removed %d, want 0", n)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := acceptedcategorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}
