package categorystore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestStore_Ensure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := categorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat, err := store.Ensure(ctx, "Baby Supplies")
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if cat.ID != "baby supplies" {
		t.Errorf("slug = %q, want %q", cat.ID, "baby supplies")
	}
	if cat.Name != "Baby Supplies" {
		t.Errorf("name = %q, want %q", cat.Name, "Baby Supplies")
	}

	// Ensure with a different casing converges on the same document.
	again, err := store.Ensure(ctx, "BABY SUPPLIES")
	if err != nil {
		t.Fatalf("second Ensure failed: %v", err)
	}
	if again.ID != cat.ID {
		t.Errorf("second Ensure produced slug %q, want %q", again.ID, cat.ID)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List returned %d categories, want 1", len(all))
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := categorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "no such category")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_SearchBySlugPrefix(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := categorystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"Coats", "Canned Goods", "Toys"} {
		if _, err := store.Ensure(ctx, name); err != nil {
			t.Fatalf("Ensure %q failed: %v", name, err)
		}
	}

	got, err := store.SearchBySlugPrefix(ctx, "C")
	if err != nil {
		t.Fatalf("SearchBySlugPrefix failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].ID != "canned goods" || got[1].ID != "coats" {
		t.Errorf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
}
