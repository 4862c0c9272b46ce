package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/suma-ulsa/codexgo/internal/app"
	"github.com/suma-ulsa/codexgo/internal/cli"
)

// main is the entrypoint for the codex runtime.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	codexApp := app.New(outW, cfg)
	return codexApp.Run(context.Background(), cfg)
}
