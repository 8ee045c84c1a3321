// internal/app/features/directory/handler.go
package directory

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	discoverstore "github.com/givehubapp/givehub/internal/app/store/discover"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/format"
	"github.com/givehubapp/givehub/internal/app/system/timeouts"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Handler serves the public directory page and the /discover JSON query.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	Discover *discoverstore.Store
	Cats     *categorystore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		Discover: discoverstore.New(db),
		Cats:     categorystore.New(db),
	}
}

// cardView is one organization card on the directory page.
type cardView struct {
	Org        models.Organization
	Phone      string
	Categories []discoverstore.CategoryDetail
	Favorite   bool
}

// pageData is the view model for the directory page.
type pageData struct {
	Title      string
	IsLoggedIn bool
	UserName   string

	Query      string
	Category   string
	Cards      []cardView
	Categories []models.Category
}

// ServePage handles GET /: organization cards with ?q= prefix search and
// ?category= filter.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	memberID := currentMemberID(r)
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	var entries []discoverstore.Entry
	var err error
	if category != "" {
		entries, err = h.Discover.CategoryFilter(ctx, format.CategorySlug(category), memberID)
	} else {
		entries, err = h.Discover.Search(ctx, q, memberID)
	}
	if err != nil {
		h.ErrLog.LogServerError(r, "directory query", err)
		uierrors.RenderServerError(w, r)
		return
	}

	cats, err := h.Cats.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(r, "list categories", err)
		uierrors.RenderServerError(w, r)
		return
	}

	data := pageData{
		Title:      "GiveHub",
		Query:      q,
		Category:   category,
		Categories: cats,
	}
	if user, ok := auth.CurrentUser(r); ok {
		data.IsLoggedIn = true
		data.UserName = user.Name
	}
	for _, e := range entries {
		data.Cards = append(data.Cards, cardView{
			Org:        e.Organization,
			Phone:      format.Phone(e.Organization.Phone),
			Categories: e.Accepted,
			Favorite:   e.Favorite,
		})
	}

	templates.Render(w, r, "directory", data)
}

// discoverInput is the POST /discover payload.
type discoverInput struct {
	Filter string `json:"filter"`
}

// HandleDiscover handles POST /discover. A non-empty filter names a
// category; the result is exactly the organizations holding an accepted
// category for it. An empty filter lists every organization. Anonymous
// callers get favorite=false on every entry.
func (h *Handler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	var in discoverInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.ErrLog.LogBadRequest(r, "decode discover payload", err)
		uierrors.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var entries []discoverstore.Entry
	var err error
	if slug := format.CategorySlug(in.Filter); slug != "" {
		entries, err = h.Discover.CategoryFilter(ctx, slug, currentMemberID(r))
	} else {
		entries, err = h.Discover.Search(ctx, "", currentMemberID(r))
	}
	if err != nil {
		h.ErrLog.LogServerError(r, "discover query", err)
		uierrors.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []discoverstore.Entry{}
	}
	uierrors.WriteJSON(w, http.StatusOK, entries)
}

// currentMemberID returns the signed-in member's ObjectID, or the zero ID
// for anonymous requests.
func currentMemberID(r *http.Request) primitive.ObjectID {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
