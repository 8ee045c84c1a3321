// internal/app/features/favorites/routes.go
package favorites

import (
	"github.com/go-chi/chi/v5"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

// Routes mounts the favorites API (typically under "/favorites"). All
// routes require a signed-in member.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Post("/{orgID}", h.HandleAdd)
	r.Delete("/{orgID}", h.HandleRemove)

	return r
}
