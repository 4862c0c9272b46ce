package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"worksheet.cdx"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "worksheet.cdx", cfg.ScriptPath)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-format", "json",
		"-log-level", "debug",
		"-log-format", "json",
		"worksheet.cdx",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseNoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
}

func TestParseTooManyArgs(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"a.cdx", "b.cdx"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "exactly one script path")
}

func TestParseInvalidFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-format", "xml", "worksheet.cdx"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, `invalid format "xml"`)
}

func TestParseInvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-level", "loud", "worksheet.cdx"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParseWorkspaceFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "codex.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
format    = "yaml"
log_level = "warn"
`), 0o644))

	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-config", cfgPath, "worksheet.cdx"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseFlagsOverrideWorkspaceFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "codex.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`format = "yaml"`), 0o644))

	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-config", cfgPath, "-format", "csv", "worksheet.cdx"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
}

func TestParseBrokenWorkspaceFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "codex.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`format = `), 0o644))

	var out bytes.Buffer
	_, _, err := Parse([]string{"-config", cfgPath, "worksheet.cdx"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
