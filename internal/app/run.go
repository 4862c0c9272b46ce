package app

import (
	"context"
	"fmt"
	"os"

	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/suma-ulsa/codexgo/internal/export"
)

// Run evaluates the configured script and renders the result sequence.
// Structural errors (parse, unknown domain, duplicate entity, unresolved
// target) are returned; block-local errors render inline.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "script", cfg.ScriptPath, "format", cfg.Format)

	src, err := os.ReadFile(cfg.ScriptPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	results, err := a.engine.Evaluate(ctx, string(src))
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", cfg.ScriptPath, err)
	}
	a.logger.Info("Script evaluated.", "blocks", len(results))

	if err := export.Render(a.out, cfg.Format, results); err != nil {
		return fmt.Errorf("rendering results: %w", err)
	}

	a.logger.Debug("App.Run finished.")
	return nil
}

// EvaluateSource runs the engine over in-memory script text, bypassing file
// I/O. Tests and embedders use this entry point.
func (a *App) EvaluateSource(ctx context.Context, src string) ([]engine.BlockResult, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.engine.Evaluate(ctx, src)
}
