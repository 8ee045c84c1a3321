// internal/app/features/organizations/handler.go
package organizations

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/givehubapp/givehub/internal/app/features/errors"
	acceptedcategorystore "github.com/givehubapp/givehub/internal/app/store/acceptedcategories"
	assignmentstore "github.com/givehubapp/givehub/internal/app/store/assignments"
	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/app/system/geocode"
)

// Handler is the feature-level entry point for Organizations: the
// /data/organizations JSON API and the organization detail page.
type Handler struct {
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Geo    geocode.Geocoder

	Orgs     *organizationstore.Store
	Accepted *acceptedcategorystore.Store
	Cats     *categorystore.Store
	Assigns  *assignmentstore.Store
}

// NewHandler constructs an Organizations handler bound to the stores,
// geocoder, and logger.
func NewHandler(db *mongo.Database, geo geocode.Geocoder, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		Geo:      geo,
		Orgs:     organizationstore.New(db),
		Accepted: acceptedcategorystore.New(db),
		Cats:     categorystore.New(db),
		Assigns:  assignmentstore.New(db),
	}
}
