package app

import (
	"errors"
	"io"
	"os"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// ScriptPath is the script file to evaluate.
	ScriptPath string
	// Format names the output format (see internal/export.Formats).
	Format string

	LogLevel  string
	LogFormat string
	// LogOutput receives log lines; defaults to stderr.
	LogOutput io.Writer
}

// NewConfig validates cfg and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}
	return &cfg, nil
}
