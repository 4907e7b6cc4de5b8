// Package app wires process-wide state for the converter.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"speech-transcript-export/internal/config"
	"speech-transcript-export/internal/logging"
)

// Application holds process-wide state for one converter run.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Configuration
}

// New constructs an Application from the provided configuration and
// initializes the global logger from it.
func New(cfg *config.Configuration) *Application {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logging.Init(logCfg)

	return &Application{
		Logger: logging.WithComponent("application"),
		Cfg:    cfg,
	}
}

// Start records the startup time and announces the run.
func (a *Application) Start() error {
	a.StartupTime = time.Now().UTC()
	a.Logger.Debug().
		Time("startupTime", a.StartupTime).
		Str("environment", a.Cfg.Environment).
		Str("logLevel", a.Cfg.Logging.Level).
		Msg("transcript export starting")
	return nil
}

// Shutdown performs a best-effort cleanup before process exit.
func (a *Application) Shutdown() {
	a.Logger.Debug().
		Dur("elapsed", time.Since(a.StartupTime)).
		Msg("transcript export finished")
}
