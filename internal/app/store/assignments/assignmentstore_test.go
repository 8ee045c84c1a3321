package assignmentstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	assignmentstore "github.com/givehubapp/givehub/internal/app/store/assignments"
	"github.com/givehubapp/givehub/internal/app/system/indexes"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestStore_Assign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	member := fx.CreateMember(ctx, "auth|staff", "s@test.com", "Staff")
	org := fx.CreateOrganization(ctx, "Staffed Org")

	if err := store.Assign(ctx, member.ID, org.ID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	// Assigning twice is a no-op.
	if err := store.Assign(ctx, member.ID, org.ID); err != nil {
		t.Fatalf("second Assign failed: %v", err)
	}

	count, err := db.Collection("assignments").CountDocuments(ctx, bson.M{"member_id": member.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("assignments = %d, want 1", count)
	}

	a, err := store.MemberForOrganization(ctx, org.ID)
	if err != nil {
		t.Fatalf("MemberForOrganization failed: %v", err)
	}
	if a.MemberID != member.ID {
		t.Errorf("assigned member = %s, want %s", a.MemberID.Hex(), member.ID.Hex())
	}

	staff, err := store.IsStaff(ctx, member.ID, org.ID)
	if err != nil {
		t.Fatalf("IsStaff failed: %v", err)
	}
	if !staff {
		t.Error("expected staff")
	}
}

func TestStore_MemberForOrganization_None(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.MemberForOrganization(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_OrganizationsForMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "auth|multi", "m@test.com", "Multi")
	orgA := fx.CreateOrganization(ctx, "Multi A")
	orgB := fx.CreateOrganization(ctx, "Multi B")
	fx.CreateAssignment(ctx, member.ID, orgA.ID)
	fx.CreateAssignment(ctx, member.ID, orgB.ID)

	assigns, err := store.OrganizationsForMember(ctx, member.ID)
	if err != nil {
		t.Fatalf("OrganizationsForMember failed: %v", err)
	}
	if len(assigns) != 2 {
		t.Errorf("member administers %d orgs, want 2", len(assigns))
	}
}

func TestStore_IsStaff_ZeroMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	staff, err := store.IsStaff(ctx, primitive.NilObjectID, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IsStaff failed: %v", err)
	}
	if staff {
		t.Error("zero member must never be staff")
	}
}
