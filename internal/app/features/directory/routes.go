// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes mounts the directory page and discover query at the site root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.Post("/discover", h.HandleDiscover)
	return r
}
