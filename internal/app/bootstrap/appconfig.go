// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging); AppConfig is everything specific to GiveHub. Values come
// from config files, GIVEHUB_* environment variables, or command-line
// flags, loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// CollectionPrefix scopes collection names so environments can share
	// one deployment (e.g., "dev_" yields dev_organizations).
	CollectionPrefix string

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// BaseURL is the externally visible origin, used to build the OAuth
	// callback URL (e.g., "https://givehub.org" or "http://localhost:3000").
	BaseURL string

	// MapsKey is the Google Maps Geocoding API key. Blank disables
	// geocoding; organizations are stored without coordinates.
	MapsKey string
}
