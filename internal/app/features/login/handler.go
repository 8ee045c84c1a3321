// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

type Handler struct {
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, GoogleEnabled: googleEnabled}
}

type pageData struct {
	Title         string
	Error         string
	ReturnURL     string
	GoogleEnabled bool
}

// errorMessages maps the ?error= codes the OAuth flow redirects with to
// something a person can read.
var errorMessages = map[string]string{
	"google_not_configured": "Sign-in with Google is not available right now.",
	"google_denied":         "Google sign-in was cancelled.",
	"invalid_state":         "That sign-in link expired. Please try again.",
	"invalid_code":          "That sign-in link expired. Please try again.",
	"token_exchange":        "Google sign-in failed. Please try again.",
	"user_info":             "Google sign-in failed. Please try again.",
	"session":               "We couldn't start your session. Please try again.",
	"internal":              "Something went wrong. Please try again.",
}

// ServePage handles GET /login. Signed-in members are sent home.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pageData{
		Title:         "Sign in",
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	}
	if code := query.Get(r, "error"); code != "" {
		msg, ok := errorMessages[code]
		if !ok {
			msg = errorMessages["internal"]
		}
		data.Error = msg
	}

	templates.Render(w, r, "login", data)
}
