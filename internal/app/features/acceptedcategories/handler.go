// internal/app/features/acceptedcategories/handler.go
package acceptedcategories

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
	acceptedcategorystore "github.com/givehubapp/givehub/internal/app/store/acceptedcategories"
	assignmentstore "github.com/givehubapp/givehub/internal/app/store/assignments"
	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/htmlsanitize"
	"github.com/givehubapp/givehub/internal/app/system/inputval"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Handler serves the /data/acceptedcategories JSON API.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Accepted *acceptedcategorystore.Store
	Cats     *categorystore.Store
	Assigns  *assignmentstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		Accepted: acceptedcategorystore.New(db),
		Cats:     categorystore.New(db),
		Assigns:  assignmentstore.New(db),
	}
}

// upsertInput is the payload for POST /data/acceptedcategories/organization/{id}.
type upsertInput struct {
	Category          string `json:"category" validate:"required,max=100" label:"Category"`
	QualityGuidelines string `json:"quality_guidelines" validate:"max=2000" label:"Quality guidelines"`
	Instructions      string `json:"instructions" validate:"max=2000" label:"Instructions"`
}

// updateInput is the payload for POST /data/acceptedcategories/{id}.
type updateInput struct {
	QualityGuidelines string `json:"quality_guidelines" validate:"max=2000" label:"Quality guidelines"`
	Instructions      string `json:"instructions" validate:"max=2000" label:"Instructions"`
}

// ServeData handles GET /data/acceptedcategories/{id}.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "accepted category not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ac, err := h.Accepted.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "accepted category not found")
			return
		}
		h.ErrLog.LogServerError(r, "load accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, ac)
}

// ServeByOrganization handles GET /data/acceptedcategories/organization/{id}.
func (h *Handler) ServeByOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Accepted.ListByOrganization(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(r, "list accepted categories by organization", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []models.AcceptedCategory{}
	}
	uierrors.WriteJSON(w, http.StatusOK, entries)
}

// ServeByCategory handles GET /data/acceptedcategories/category/{id}.
// {id} is the category slug.
func (h *Handler) ServeByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Accepted.ListByCategory(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogServerError(r, "list accepted categories by category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []models.AcceptedCategory{}
	}
	uierrors.WriteJSON(w, http.StatusOK, entries)
}

// HandleUpsert handles POST /data/acceptedcategories/organization/{id}:
// the organization accepts a category, keyed on the unique
// (organization, category) pair. 201 when the entry is new, 200 when an
// existing entry was updated.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	orgID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	var in upsertInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.ErrLog.LogBadRequest(r, "decode accepted category payload", err)
		uierrors.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	in.Category = htmlsanitize.Plain(in.Category)
	in.QualityGuidelines = htmlsanitize.Plain(in.QualityGuidelines)
	in.Instructions = htmlsanitize.Plain(in.Instructions)
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteJSONError(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireStaff(ctx, w, r, orgID) {
		return
	}

	// The category record is created lazily the first time any
	// organization accepts it.
	cat, err := h.Cats.Ensure(ctx, in.Category)
	if err != nil {
		h.ErrLog.LogServerError(r, "ensure category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	ac, created, err := h.Accepted.Upsert(ctx, orgID, cat.ID, in.QualityGuidelines, in.Instructions)
	if err != nil {
		h.ErrLog.LogServerError(r, "upsert accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.Log.Info("accepted category upserted",
		zap.String("org_id", orgID.Hex()),
		zap.String("category_id", cat.ID),
		zap.Bool("created", created))
	uierrors.WriteJSON(w, status, ac)
}

// HandleUpdate handles POST /data/acceptedcategories/{id}: edits the
// guidance text of an existing entry.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "accepted category not found")
		return
	}

	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.ErrLog.LogBadRequest(r, "decode accepted category payload", err)
		uierrors.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	in.QualityGuidelines = htmlsanitize.Plain(in.QualityGuidelines)
	in.Instructions = htmlsanitize.Plain(in.Instructions)
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteJSONError(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ac, err := h.Accepted.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "accepted category not found")
			return
		}
		h.ErrLog.LogServerError(r, "load accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !h.requireStaff(ctx, w, r, ac.OrganizationID) {
		return
	}

	updated, _, err := h.Accepted.Upsert(ctx, ac.OrganizationID, ac.CategoryID, in.QualityGuidelines, in.Instructions)
	if err != nil {
		h.ErrLog.LogServerError(r, "update accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /data/acceptedcategories/{id}. Deleting an
// absent entry is a 200 with deleted=0.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "accepted category not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ac, err := h.Accepted.GetByID(ctx, id)
	if err == nil {
		if !h.requireStaff(ctx, w, r, ac.OrganizationID) {
			return
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.LogServerError(r, "load accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	n, err := h.Accepted.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(r, "delete accepted category", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// requireStaff writes 401/403 and returns false unless the signed-in
// member administers orgID.
func (h *Handler) requireStaff(ctx context.Context, w http.ResponseWriter, r *http.Request, orgID primitive.ObjectID) bool {
	user, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	memberID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	staff, err := h.Assigns.IsStaff(ctx, memberID, orgID)
	if err != nil {
		h.ErrLog.LogServerError(r, "staff check", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	if !staff {
		uierrors.WriteJSONError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
