// internal/app/features/logout/routes.go
package logout

import (
	"github.com/go-chi/chi/v5"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/", h.ServeLogout)
	})
	return r
}
