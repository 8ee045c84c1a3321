package favorites_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	"github.com/givehubapp/givehub/internal/app/features/favorites"
	"github.com/givehubapp/givehub/internal/app/system/indexes"
	"github.com/givehubapp/givehub/internal/testutil"
)

func newHandler(t *testing.T) (*favorites.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return favorites.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestServeList_Unauthenticated(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/favorites"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAddListRemove(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, fx.DB()); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	member := fx.CreateMember(ctx, "auth|fav", "f@test.com", "Fav")
	org := fx.CreateOrganization(ctx, "Liked Org")
	user := testutil.UserFor(member.ID, member.Name, member.Email)

	add := func() *httptest.ResponseRecorder {
		req := testutil.WithChiURLParam(testutil.NewRequest("POST", "/favorites/"+org.ID.Hex()), "orgID", org.ID.Hex())
		req = testutil.WithUser(req, user)
		rec := httptest.NewRecorder()
		h.HandleAdd(rec, req)
		return rec
	}

	if rec := add(); rec.Code != http.StatusCreated {
		t.Fatalf("first add: status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	// Favoriting twice answers 200, no duplicate.
	if rec := add(); rec.Code != http.StatusOK {
		t.Fatalf("second add: status = %d, want 200", rec.Code)
	}

	listReq := testutil.WithUser(testutil.NewRequest("GET", "/favorites"), user)
	rec := httptest.NewRecorder()
	h.ServeList(rec, listReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, want 200", rec.Code)
	}
	var views []struct {
		Organization struct {
			Name string `json:"name"`
		} `json:"organization"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(views) != 1 || views[0].Organization.Name != "Liked Org" {
		t.Errorf("favorites = %+v", views)
	}

	remove := func() *httptest.ResponseRecorder {
		req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/favorites/"+org.ID.Hex()), "orgID", org.ID.Hex())
		req = testutil.WithUser(req, user)
		rec := httptest.NewRecorder()
		h.HandleRemove(rec, req)
		return rec
	}

	if rec := remove(); rec.Code != http.StatusOK {
		t.Fatalf("remove: status = %d, want 200", rec.Code)
	}
	// Removing again still answers 200.
	if rec := remove(); rec.Code != http.StatusOK {
		t.Fatalf("second remove: status = %d, want 200", rec.Code)
	}
}

func TestHandleAdd_UnknownOrganization(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "auth|miss", "m@test.com", "Miss")
	user := testutil.UserFor(member.ID, member.Name, member.Email)

	req := testutil.WithChiURLParam(testutil.NewRequest("POST", "/favorites/64f000000000000000000009"), "orgID", "64f000000000000000000009")
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	h.HandleAdd(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
