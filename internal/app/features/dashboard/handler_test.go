package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/features/dashboard"
	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	"github.com/givehubapp/givehub/internal/testutil"
)

var bootTemplates sync.Once

func newHandler(t *testing.T) (*dashboard.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	bootTemplates.Do(func() {
		eng := templates.New(false)
		if err := eng.Boot(logger); err != nil {
			t.Fatalf("template engine boot failed: %v", err)
		}
		templates.UseEngine(eng, logger)
	})

	return dashboard.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestServePage_AnonymousRedirectsToLogin(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServePage(rec, testutil.NewRequest("GET", "/dashboard"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestServePage_NoAssignmentRedirectsHome(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "auth|dash-none", "none@test.com", "None")

	req := testutil.WithUser(testutil.NewRequest("GET", "/dashboard"), testutil.UserFor(member.ID, member.Name, member.Email))
	rec := httptest.NewRecorder()
	h.ServePage(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestServePage_StaffSeesOrganization(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := fx.CreateMember(ctx, "auth|dash", "dash@test.com", "Dash")
	org := fx.CreateOrganization(ctx, "Dash Org")
	fx.CreateAssignment(ctx, member.ID, org.ID)
	cat := fx.CreateCategory(ctx, "Books")
	fx.CreateAcceptedCategory(ctx, org.ID, cat.ID, "Gently used", "")

	req := testutil.WithUser(testutil.NewRequest("GET", "/dashboard"), testutil.UserFor(member.ID, member.Name, member.Email))
	rec := httptest.NewRecorder()
	h.ServePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Dash Org", "Books", "Gently used"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard page missing %q", want)
		}
	}
}
