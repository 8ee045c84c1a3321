// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/go-chi/chi/v5"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

// DataRoutes mounts the JSON API (typically under "/data/organizations").
func DataRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDataList)
	r.Get("/{id}", h.ServeData)

	// Writes need a signed-in member; update and delete additionally
	// check the staff assignment in the handler.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
		pr.Post("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}

// Routes mounts the HTML pages (typically under "/organizations").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.ServeView)
	return r
}
