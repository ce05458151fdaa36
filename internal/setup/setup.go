// Package setup bootstraps the application dependencies: configuration first,
// then logging, so that setup issues after config load are captured in the log.
package setup

import (
	"github.com/gatewarden/gatewarden/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles the dependencies every binary needs.
type App struct {
	Config *config.Config // Application configuration
	Logger *zap.Logger    // Main application logger
}

// InitializeApp loads the configuration and prepares the logging system.
// A missing or invalid config is fatal; the process must not start without a
// valid token and role/channel configuration.
func InitializeApp(logDir string, configDir string) (*App, error) {
	cfg, _, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}

	logger, err := GetLogger(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Logger: logger,
	}, nil
}

// CleanupApp flushes buffered log entries before shutdown.
func (a *App) CleanupApp() {
	_ = a.Logger.Sync()
}
