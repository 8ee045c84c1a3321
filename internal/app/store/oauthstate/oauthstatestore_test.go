package oauthstate_test

import (
	"testing"
	"time"

	"github.com/givehubapp/givehub/internal/app/store/oauthstate"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestSaveAndValidate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "state-abc", "/dashboard", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	returnURL, valid, err := store.Validate(ctx, "state-abc")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !valid {
		t.Error("expected state to be valid")
	}
	if returnURL != "/dashboard" {
		t.Errorf("returnURL = %q, want /dashboard", returnURL)
	}
}

func TestValidate_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	returnURL, valid, err := store.Validate(ctx, "never-saved")
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if valid {
		t.Error("unknown state must not validate")
	}
	if returnURL != "" {
		t.Errorf("returnURL = %q, want empty", returnURL)
	}
}

func TestValidate_SingleUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "one-shot", "", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, valid, err := store.Validate(ctx, "one-shot"); err != nil || !valid {
		t.Fatalf("first Validate = (%v, %v), want valid", valid, err)
	}
	if _, valid, err := store.Validate(ctx, "one-shot"); err != nil {
		t.Fatalf("second Validate error: %v", err)
	} else if valid {
		t.Error("state must be single use")
	}
}

func TestValidate_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, "stale", "", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, valid, err := store.Validate(ctx, "stale"); err != nil {
		t.Fatalf("Validate error: %v", err)
	} else if valid {
		t.Error("expired state must not validate")
	}
}

func TestCleanupExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, s := range []string{"dead-a", "dead-b"} {
		if err := store.Save(ctx, s, "", time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	if err := store.Save(ctx, "live", "", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deleted, err := store.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	if _, valid, _ := store.Validate(ctx, "live"); !valid {
		t.Error("live state should survive cleanup")
	}
}
