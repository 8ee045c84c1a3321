// internal/app/features/organizations/data.go
package organizations

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
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/htmlsanitize"
	"github.com/givehubapp/givehub/internal/app/system/inputval"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// orgInput is the JSON and form payload for creating or updating an
// organization.
type orgInput struct {
	Name        string `json:"name" validate:"required,max=200" label:"Organization name"`
	Address     string `json:"address" validate:"max=500" label:"Address"`
	Phone       string `json:"phone" validate:"max=30" label:"Phone"`
	Website     string `json:"website" validate:"omitempty,url" label:"Website"`
	Email       string `json:"email" validate:"omitempty,email" label:"Email"`
	Description string `json:"description" validate:"max=2000" label:"Description"`
	DropOff     bool   `json:"drop_off"`
	PickUp      bool   `json:"pick_up"`
	Shipping    bool   `json:"shipping"`
}

func (in *orgInput) sanitize() {
	in.Name = htmlsanitize.Plain(in.Name)
	in.Address = htmlsanitize.Plain(in.Address)
	in.Phone = htmlsanitize.Plain(in.Phone)
	in.Description = htmlsanitize.Plain(in.Description)
}

func (in orgInput) toModel() models.Organization {
	return models.Organization{
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Website:     in.Website,
		Email:       in.Email,
		Description: in.Description,
		DropOff:     in.DropOff,
		PickUp:      in.PickUp,
		Shipping:    in.Shipping,
	}
}

// resolveCoordinates geocodes the address. A miss or geocoder failure
// leaves coordinates nil; the write still goes through.
func (h *Handler) resolveCoordinates(ctx context.Context, address string) *models.Coordinates {
	if address == "" {
		return nil
	}
	res, err := h.Geo.ResolveAddress(ctx, address)
	if err != nil {
		h.Log.Warn("geocode failed; storing organization without coordinates",
			zap.String("address", address),
			zap.Error(err))
		return nil
	}
	if !res.OK {
		return nil
	}
	return &models.Coordinates{Lat: res.Lat, Lng: res.Lng}
}

// ServeData handles GET /data/organizations/{id}.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
			return
		}
		h.ErrLog.LogServerError(r, "load organization", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, org)
}

// ServeDataList handles GET /data/organizations.
func (h *Handler) ServeDataList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Orgs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(r, "list organizations", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	uierrors.WriteJSON(w, http.StatusOK, orgs)
}

// HandleCreate handles POST /data/organizations.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in orgInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.ErrLog.LogBadRequest(r, "decode organization payload", err)
		uierrors.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	in.sanitize()
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteJSONError(w, http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org := in.toModel()
	org.Coordinates = h.resolveCoordinates(ctx, org.Address)

	created, err := h.Orgs.Create(ctx, org)
	if err != nil {
		if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
			uierrors.WriteJSONError(w, http.StatusConflict, err.Error())
			return
		}
		h.ErrLog.LogServerError(r, "create organization", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Log.Info("organization created",
		zap.String("org_id", created.ID.Hex()),
		zap.String("name", created.Name))
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles POST /data/organizations/{id}: the dashboard's
// profile form. On success it redirects back to the dashboard.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}
	memberID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	staff, err := h.Assigns.IsStaff(ctx, memberID, id)
	if err != nil {
		h.ErrLog.LogServerError(r, "staff check", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !staff {
		uierrors.WriteJSONError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(r, "parse organization form", err)
		uierrors.WriteJSONError(w, http.StatusBadRequest, "invalid form")
		return
	}
	in := orgInput{
		Name:        r.FormValue("name"),
		Address:     r.FormValue("address"),
		Phone:       r.FormValue("phone"),
		Website:     r.FormValue("website"),
		Email:       r.FormValue("email"),
		Description: r.FormValue("description"),
		DropOff:     r.FormValue("drop_off") != "",
		PickUp:      r.FormValue("pick_up") != "",
		Shipping:    r.FormValue("shipping") != "",
	}
	in.sanitize()
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteJSONError(w, http.StatusBadRequest, res.First())
		return
	}

	org := in.toModel()
	org.Coordinates = h.resolveCoordinates(ctx, org.Address)

	if err := h.Orgs.Update(ctx, id, org); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		case errors.Is(err, organizationstore.ErrDuplicateOrganization):
			uierrors.WriteJSONError(w, http.StatusConflict, err.Error())
		default:
			h.ErrLog.LogServerError(r, "update organization", err)
			uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleDelete handles DELETE /data/organizations/{id}. Deleting an
// organization that does not exist is a 200 with deleted=0.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusNotFound, "organization not found")
		return
	}
	memberID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		uierrors.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	staff, err := h.Assigns.IsStaff(ctx, memberID, id)
	if err != nil {
		h.ErrLog.LogServerError(r, "staff check", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !staff {
		uierrors.WriteJSONError(w, http.StatusForbidden, "forbidden")
		return
	}

	n, err := h.Orgs.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(r, "delete organization", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Log.Info("organization deleted",
		zap.String("org_id", id.Hex()),
		zap.Int64("deleted", n))
	uierrors.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
