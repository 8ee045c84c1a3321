// internal/app/features/acceptedcategories/routes.go
package acceptedcategories

import (
	"github.com/go-chi/chi/v5"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

// Routes mounts the JSON API (typically under "/data/acceptedcategories").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/organization/{id}", h.ServeByOrganization)
	r.Get("/category/{id}", h.ServeByCategory)
	r.Get("/{id}", h.ServeData)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/organization/{id}", h.HandleUpsert)
		pr.Post("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
