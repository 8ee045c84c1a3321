// internal/app/features/memberinfo/routes.go
package memberinfo

import "github.com/go-chi/chi/v5"

// Register attaches the member lookup endpoints to the site root router:
// /member, /member-from-organization/{id}, /organization-from-member/{id}.
func Register(r chi.Router, h *Handler) {
	r.Get("/member", h.ServeMember)
	r.Get("/member-from-organization/{id}", h.ServeMemberFromOrganization)
	r.Get("/organization-from-member/{id}", h.ServeOrganizationFromMember)
}
