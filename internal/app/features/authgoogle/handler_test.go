package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/features/authgoogle"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/testutil"
)

func newTestHandler(t *testing.T, clientID, clientSecret string) *authgoogle.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	return authgoogle.NewHandler(db, sessionMgr, clientID, clientSecret, "http://localhost:8080", logger)
}

func TestIsConfigured(t *testing.T) {
	if !newTestHandler(t, "test-client-id", "test-client-secret").IsConfigured() {
		t.Error("IsConfigured() should return true with client ID and secret")
	}
	if newTestHandler(t, "", "").IsConfigured() {
		t.Error("IsConfigured() should return false without credentials")
	}
}

func TestServeLogin_NotConfigured(t *testing.T) {
	h := newTestHandler(t, "", "")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_not_configured") {
		t.Errorf("Location = %q, want to contain 'google_not_configured'", loc)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	h := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google?return=/organizations/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("Location = %q, want to contain 'accounts.google.com'", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("Location = %q, want a state parameter", loc)
	}
}

func TestServeCallback_MissingState(t *testing.T) {
	h := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?code=test-code", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "invalid_state") {
		t.Errorf("Location = %q, want to contain 'invalid_state'", loc)
	}
}

func TestServeCallback_GoogleError(t *testing.T) {
	h := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_denied") {
		t.Errorf("Location = %q, want to contain 'google_denied'", loc)
	}
}

func TestServeCallback_InvalidState(t *testing.T) {
	h := newTestHandler(t, "test-client-id", "test-client-secret")

	req := httptest.NewRequest("GET", "/auth/google/callback?state=invalid-state&code=test-code", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "invalid_state") {
		t.Errorf("Location = %q, want to contain 'invalid_state'", loc)
	}
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(t, "test-client-id", "test-client-secret")
	if authgoogle.Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}
