// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	acceptedcategorystore "github.com/givehubapp/givehub/internal/app/store/acceptedcategories"
	assignmentstore "github.com/givehubapp/givehub/internal/app/store/assignments"
	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/format"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Handler serves the staff dashboard: the profile and accepted-category
// management page for the organizations the member administers.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Orgs     *organizationstore.Store
	Assigns  *assignmentstore.Store
	Accepted *acceptedcategorystore.Store
	Cats     *categorystore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		Orgs:     organizationstore.New(db),
		Assigns:  assignmentstore.New(db),
		Accepted: acceptedcategorystore.New(db),
		Cats:     categorystore.New(db),
	}
}

// acceptedRow is one accepted-category entry in the management list.
type acceptedRow struct {
	ID                string
	Name              string
	QualityGuidelines string
	Instructions      string
}

// orgPanel is one administered organization with its edit form state.
type orgPanel struct {
	Org      models.Organization
	Phone    string
	Accepted []acceptedRow
}

type pageData struct {
	Title      string
	IsLoggedIn bool
	UserName   string

	Panels []orgPanel
}

// ServePage handles GET /dashboard. Members with no staff assignment are
// sent back to the directory.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login?return=%2Fdashboard", http.StatusSeeOther)
		return
	}
	memberID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		http.Redirect(w, r, "/login?return=%2Fdashboard", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigns, err := h.Assigns.OrganizationsForMember(ctx, memberID)
	if err != nil {
		h.ErrLog.LogServerError(r, "load assignments", err)
		uierrors.RenderServerError(w, r)
		return
	}
	if len(assigns) == 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	orgIDs := make([]primitive.ObjectID, 0, len(assigns))
	for _, a := range assigns {
		orgIDs = append(orgIDs, a.OrganizationID)
	}
	orgs, err := h.Orgs.GetByIDs(ctx, orgIDs)
	if err != nil {
		h.ErrLog.LogServerError(r, "load administered organizations", err)
		uierrors.RenderServerError(w, r)
		return
	}

	data := pageData{
		Title:      "Dashboard",
		IsLoggedIn: true,
		UserName:   user.Name,
	}
	for _, org := range orgs {
		rows, err := h.acceptedRows(ctx, org.ID)
		if err != nil {
			h.ErrLog.LogServerError(r, "load accepted categories", err)
			uierrors.RenderServerError(w, r)
			return
		}
		data.Panels = append(data.Panels, orgPanel{
			Org:      org,
			Phone:    format.Phone(org.Phone),
			Accepted: rows,
		})
	}

	templates.Render(w, r, "dashboard", data)
}

func (h *Handler) acceptedRows(ctx context.Context, orgID primitive.ObjectID) ([]acceptedRow, error) {
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

	rows := make([]acceptedRow, 0, len(entries))
	for _, e := range entries {
		n := name[e.CategoryID]
		if n == "" {
			n = format.CategoryName(e.CategoryID)
		}
		rows = append(rows, acceptedRow{
			ID:                e.ID.Hex(),
			Name:              n,
			QualityGuidelines: e.QualityGuidelines,
			Instructions:      e.Instructions,
		})
	}
	return rows, nil
}
