package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/features/logout"
	"github.com/givehubapp/givehub/internal/app/system/auth"
)

func TestServeLogout(t *testing.T) {
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := logout.NewHandler(sm, logger)

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()
	h.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie to be expired")
	}
}
