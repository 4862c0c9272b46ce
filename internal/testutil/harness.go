// Package testutil provides a standardized harness for driving the engine
// in tests.
package testutil

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/suma-ulsa/codexgo/internal/app"
	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of one script evaluation.
type HarnessResult struct {
	Results   []engine.BlockResult
	Err       error
	LogOutput string
}

// Evaluate runs src through a freshly built app with all built-in domains
// registered, capturing logs at debug level.
func Evaluate(t *testing.T, src string) *HarnessResult {
	t.Helper()

	logBuf := &SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		ScriptPath: "in-memory",
		LogLevel:   "debug",
		LogOutput:  logBuf,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a := app.New(&out, cfg)
	results, evalErr := a.EvaluateSource(context.Background(), src)

	return &HarnessResult{
		Results:   results,
		Err:       evalErr,
		LogOutput: logBuf.String(),
	}
}
