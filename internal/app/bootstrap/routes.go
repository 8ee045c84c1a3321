// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	acceptedcategoriesfeature "github.com/givehubapp/givehub/internal/app/features/acceptedcategories"
	authgooglefeature "github.com/givehubapp/givehub/internal/app/features/authgoogle"
	dashboardfeature "github.com/givehubapp/givehub/internal/app/features/dashboard"
	directoryfeature "github.com/givehubapp/givehub/internal/app/features/directory"
	errorsfeature "github.com/givehubapp/givehub/internal/app/features/errors"
	favoritesfeature "github.com/givehubapp/givehub/internal/app/features/favorites"
	healthfeature "github.com/givehubapp/givehub/internal/app/features/health"
	loginfeature "github.com/givehubapp/givehub/internal/app/features/login"
	logoutfeature "github.com/givehubapp/givehub/internal/app/features/logout"
	memberinfofeature "github.com/givehubapp/givehub/internal/app/features/memberinfo"
	organizationsfeature "github.com/givehubapp/givehub/internal/app/features/organizations"
	"github.com/givehubapp/givehub/internal/app/system/auth"
	"github.com/givehubapp/givehub/internal/app/system/geocode"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. It initializes the template engine, the
// session middleware, and the geocoder, then mounts the feature routers:
// the public directory and JSON data APIs, the member endpoints, the
// staff dashboard, and the Google OAuth flow.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Boot the template engine once at startup. Dev mode enables
	// template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Geocoding is optional; without a key organizations are stored
	// without coordinates.
	var geo geocode.Geocoder = geocode.Disabled{}
	if appCfg.MapsKey != "" {
		client, err := geocode.New(appCfg.MapsKey, logger)
		if err != nil {
			logger.Error("geocoder init failed", zap.Error(err))
			return nil, err
		}
		geo = client
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.GiveHubMongoDatabase

	r := chi.NewRouter()

	// Loads the signed-in member into context for every request.
	r.Use(sessionMgr.LoadSessionUser)

	healthHandler := healthfeature.NewHandler(deps.GiveHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public directory page and JSON discover query
	directoryHandler := directoryfeature.NewHandler(db, errLog, logger)
	r.Mount("/", directoryfeature.Routes(directoryHandler))

	// Organization detail pages and the /data/organizations JSON API
	orgHandler := organizationsfeature.NewHandler(db, geo, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler))
	r.Mount("/data/organizations", organizationsfeature.DataRoutes(orgHandler))

	acceptedHandler := acceptedcategoriesfeature.NewHandler(db, errLog, logger)
	r.Mount("/data/acceptedcategories", acceptedcategoriesfeature.Routes(acceptedHandler))

	favoritesHandler := favoritesfeature.NewHandler(db, errLog, logger)
	r.Mount("/favorites", favoritesfeature.Routes(favoritesHandler))

	// Member identity and staff-assignment lookups at the site root
	memberHandler := memberinfofeature.NewHandler(db, errLog, logger)
	memberinfofeature.Register(r, memberHandler)

	// Staff dashboard
	dashboardHandler := dashboardfeature.NewHandler(db, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(db, sessionMgr, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	loginHandler := loginfeature.NewHandler(googleHandler.IsConfigured(), logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	return r, nil
}
