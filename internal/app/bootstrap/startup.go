// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// The collection prefix is already in effect; EnsureSchema sets it before
// any index is created.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.CollectionPrefix != "" {
		logger.Info("collection prefix active",
			zap.String("prefix", appCfg.CollectionPrefix))
	}
	return nil
}
