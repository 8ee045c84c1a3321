// internal/app/features/favorites/handler.go
package favorites

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	favoritestore "github.com/givehubapp/givehub/internal/app/store/favorites"
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Handler serves the /favorites JSON API. Every route requires a
// signed-in member.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Favorites *favoritestore.Store
	Orgs      *organizationstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:       logger,
		ErrLog:    errLog,
		Favorites: favoritestore.New(db),
		Orgs:      organizationstore.New(db),
	}
}

// favoriteView is one favorite joined with its organization.
type favoriteView struct {
	Organization models.Organization `json:"organization"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ServeList handles GET /favorites: the member's favorites, newest first,
// each joined with the organization record.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.memberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	favs, err := h.Favorites.ListByMember(ctx, memberID)
	if err != nil {
		h.ErrLog.LogServerError(r, "list favorites", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	orgIDs := make([]primitive.ObjectID, 0, len(favs))
	for _, f := range favs {
		orgIDs = append(orgIDs, f.OrganizationID)
	}
	orgs, err := h.Orgs.GetByIDs(ctx, orgIDs)
	if err != nil {
		h.ErrLog.LogServerError(r, "load favorite organizations", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	byID := make(map[primitive.ObjectID]models.Organization, len(orgs))
	for _, o := range orgs {
		byID[o.ID] = o
	}

	views := make([]favoriteView, 0, len(favs))
	for _, f := range favs {
		org, found := byID[f.OrganizationID]
		if !found {
			// Favorite of a since-deleted organization; skip it.
			continue
		}
		views = append(views, favoriteView{Organization: org, CreatedAt: f.CreatedAt})
	}
	uierrors.WriteJSON(w, http.StatusOK, views)
}

// HandleAdd handles POST /favorites/{orgID}. 201 on a new favorite, 200
// when the pair already existed.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.memberID(w, r)
	if !ok {
		return
	}
	orgID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "orgID"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// The favorite must point at a real organization.
	if _, err := h.Orgs.GetByID(ctx, orgID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
			return
		}
		h.ErrLog.LogServerError(r, "load organization", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	created, err := h.Favorites.Add(ctx, memberID, orgID)
	if err != nil {
		h.ErrLog.LogServerError(r, "add favorite", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	uierrors.WriteJSON(w, status, map[string]bool{"favorite": true})
}

// HandleRemove handles DELETE /favorites/{orgID}. Removing an absent
// favorite is a 200.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.memberID(w, r)
	if !ok {
		return
	}
	orgID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "orgID"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Favorites.Remove(ctx, memberID, orgID); err != nil {
		h.ErrLog.LogServerError(r, "remove favorite", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, map[string]bool{"favorite": false})
}

func (h *Handler) memberID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return primitive.NilObjectID, false
	}
	return id, true
}
