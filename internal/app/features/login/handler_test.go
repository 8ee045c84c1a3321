package login_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/features/login"
	"github.com/givehubapp/givehub/internal/testutil"
)

func TestServePage_SignedInRedirectsHome(t *testing.T) {
	h := login.NewHandler(true, zap.NewNop())

	req := testutil.WithUser(testutil.NewRequest("GET", "/login"), testutil.MemberUser())
	rec := httptest.NewRecorder()
	h.ServePage(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}
