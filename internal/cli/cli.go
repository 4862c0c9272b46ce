// Package cli parses command-line arguments into an app configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/suma-ulsa/codexgo/internal/app"
	"github.com/suma-ulsa/codexgo/internal/config"
	"github.com/suma-ulsa/codexgo/internal/export"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("codex", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Codex - a declarative runtime for academic modeling scripts.

Usage:
  codex [options] SCRIPT_PATH

Arguments:
  SCRIPT_PATH
    Path to a script of Keyword "Name" { ... } blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "", "Output format: text, json, yaml, csv, markdown or html.")
	configFlag := flagSet.String("config", "codex.hcl", "Path to the workspace configuration file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "exactly one script path is expected"}
	}

	// The workspace file supplies defaults; flags win.
	fileCfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	format := firstNonEmpty(strings.ToLower(*formatFlag), fileCfg.Format, "text")
	if !export.ValidFormat(format) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q: must be one of %s", format, strings.Join(export.Formats, ", "))}
	}

	logFormat := firstNonEmpty(strings.ToLower(*logFormatFlag), fileCfg.LogFormat, "text")
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := firstNonEmpty(strings.ToLower(*logLevelFlag), fileCfg.LogLevel, "info")
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		ScriptPath: flagSet.Arg(0),
		Format:     format,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
