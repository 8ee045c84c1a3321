// internal/app/features/memberinfo/handler.go
package memberinfo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	assignmentstore "github.com/givehubapp/givehub/internal/app/store/assignments"
	memberstore "github.com/givehubapp/givehub/internal/app/store/members"
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Handler serves member identity and staff-assignment lookups.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Members *memberstore.Store
	Assigns *assignmentstore.Store
	Orgs    *organizationstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		ErrLog:  errLog,
		Members: memberstore.New(db),
		Assigns: assignmentstore.New(db),
		Orgs:    organizationstore.New(db),
	}
}

// ServeMember returns JSON with the current member's authentication
// status and identity.
//
// Response format:
//
//	{ "isAuthenticated": bool, "id": "...", "name": "...", "email": "..." }
func (h *Handler) ServeMember(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, ok := auth.CurrentUser(r)
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"isAuthenticated": false,
			"id":              "",
			"name":            "",
			"email":           "",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"isAuthenticated": true,
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
	})
}

// ServeMemberFromOrganization handles GET /member-from-organization/{id}:
// the staff member assigned to the organization, 404 when none.
func (h *Handler) ServeMemberFromOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Assigns.MemberForOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "no member assigned to this organization")
			return
		}
		h.ErrLog.LogServerError(r, "load assignment", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	member, err := h.Members.GetByID(ctx, a.MemberID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "no member assigned to this organization")
			return
		}
		h.ErrLog.LogServerError(r, "load assigned member", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, member)
}

// ServeOrganizationFromMember handles GET /organization-from-member/{id}:
// the organizations a member administers.
func (h *Handler) ServeOrganizationFromMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "member not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	assigns, err := h.Assigns.OrganizationsForMember(ctx, memberID)
	if err != nil {
		h.ErrLog.LogServerError(r, "load assignments", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	orgIDs := make([]primitive.ObjectID, 0, len(assigns))
	for _, a := range assigns {
		orgIDs = append(orgIDs, a.OrganizationID)
	}
	orgs, err := h.Orgs.GetByIDs(ctx, orgIDs)
	if err != nil {
		h.ErrLog.LogServerError(r, "load administered organizations", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	uierrors.WriteJSON(w, http.StatusOK, orgs)
}
