// internal/app/features/organizations/view.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/format"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// acceptedView is one accepted category row on the detail page.
type acceptedView struct {
	Name              string
	QualityGuidelines string
	Instructions      string
}

// viewData is the view model for the organization detail page.
type viewData struct {
	Title      string
	IsLoggedIn bool
	UserName   string

	Org      models.Organization
	Phone    string
	Accepted []acceptedView
	IsStaff  bool
}

// ServeView handles GET /organizations/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That organization doesn't exist.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.RenderNotFound(w, r, "That organization doesn't exist.")
			return
		}
		h.ErrLog.LogServerError(r, "load organization page", err)
		uierrors.RenderServerError(w, r)
		return
	}

	accepted, err := h.acceptedViews(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(r, "load accepted categories", err)
		uierrors.RenderServerError(w, r)
		return
	}

	data := viewData{
		Title:    org.Name,
		Org:      org,
		Phone:    format.Phone(org.Phone),
		Accepted: accepted,
	}
	if user, ok := auth.CurrentUser(r); ok {
		data.IsLoggedIn = true
		data.UserName = user.Name
		if memberID, err := primitive.ObjectIDFromHex(user.ID); err == nil {
			staff, err := h.Assigns.IsStaff(ctx, memberID, id)
			if err != nil {
				h.ErrLog.LogServerError(r, "staff check", err)
			}
			data.IsStaff = staff
		}
	}

	templates.Render(w, r, "org_view", data)
}

func (h *Handler) acceptedViews(ctx context.Context, orgID primitive.ObjectID) ([]acceptedView, error) {
	entries, err := h.Accepted.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		slugs = append(slugs, e.CategoryID)
	}
	cats, err := h.Cats.GetByIDs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	name := make(map[string]string, len(cats))
	for _, c := range cats {
		name[c.ID] = c.Name
	}

	views := make([]acceptedView, 0, len(entries))
	for _, e := range entries {
		n := name[e.CategoryID]
		if n == "" {
			n = format.CategoryName(e.CategoryID)
		}
		views = append(views, acceptedView{
			Name:              n,
			QualityGuidelines: e.QualityGuidelines,
			Instructions:      e.Instructions,
		})
	}
	return views, nil
}
