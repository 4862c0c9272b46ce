// Package app wires the runtime together: logger, domain registry, engine
// and output rendering.
package app

import (
	"io"
	"log/slog"

	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/suma-ulsa/codexgo/internal/registry"
)

// App is one configured runtime instance.
type App struct {
	out      io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	engine   *engine.Engine
}

// New builds an App with every built-in domain registered.
func New(out io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)

	reg := registry.New()
	for _, m := range Modules() {
		m.Register(reg)
	}

	return &App{
		out:      out,
		logger:   logger,
		registry: reg,
		engine:   engine.New(reg),
	}
}

// Registry exposes the app's domain registry, mainly for tests.
func (a *App) Registry() *registry.Registry { return a.registry }
