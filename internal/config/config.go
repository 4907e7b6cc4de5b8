// Package config carries the process configuration read from the environment
// and the per-call options of one conversion.
package config

import (
	"errors"
	"os"
)

// Configuration is the process-wide configuration, loaded once at startup.
type Configuration struct {
	Environment string
	Logging     LoggingConfig
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// Load reads the configuration from the environment. Unset variables fall
// back to defaults; ENV=dev switches the log format to console unless
// LOG_FORMAT overrides it.
func Load() *Configuration {
	env := os.Getenv("ENV")

	format := envOrDefault("LOG_FORMAT", "json")
	if env == "dev" && os.Getenv("LOG_FORMAT") == "" {
		format = "console"
	}

	return &Configuration{
		Environment: env,
		Logging: LoggingConfig{
			Level:  envOrDefault("LOG_LEVEL", "info"),
			Format: format,
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ErrTmpDirDeprecated rejects the retired temporary-directory option. The
// chart now renders next to the output file; there is no replacement knob.
var ErrTmpDirDeprecated = errors.New("config: the tmp-dir option is deprecated and no longer supported")

// ErrNoInput marks a conversion request without an input path.
var ErrNoInput = errors.New("config: input path is required")

// Options are the per-call parameters of one conversion.
type Options struct {
	// Input is the path of the transcription job result to convert.
	Input string
	// SaveAs optionally fixes the destination path. When its extension names
	// a known format and Format is unset, the extension selects the format.
	SaveAs string
	// Format optionally names the output format: docx, csv, sqlite or vtt.
	Format string
	// TmpDir is deprecated and rejected when set.
	TmpDir string
}

// Validate rejects unsupported or incomplete options. It runs before any
// processing, so a deprecated option never produces partial output.
func (o Options) Validate() error {
	if o.TmpDir != "" {
		return ErrTmpDirDeprecated
	}
	if o.Input == "" {
		return ErrNoInput
	}
	return nil
}
