package queries

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
)

func block(t *testing.T, src string) *codex.Block {
	t.Helper()
	blocks, err := codex.Parse(src)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	return &blocks[0]
}

func TestParseBodyTargetAndList(t *testing.T) {
	b := block(t, `Analysis "A1" {
		target: "S1"
		calculate: [determinant, solution]
	}`)

	spec, err := ParseBody(b, "calculate")
	require.NoError(t, err)

	assert.Equal(t, "S1", spec.Target)
	want := []model.Request{{Name: "determinant"}, {Name: "solution"}}
	if diff := cmp.Diff(want, spec.Requests); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBodyAliases(t *testing.T) {
	b := block(t, `Inspect "I1" {
		target: "Net"
		show: [netmask as mask, hosts]
	}`)

	spec, err := ParseBody(b, "show")
	require.NoError(t, err)

	require.Len(t, spec.Requests, 2)
	assert.Equal(t, "netmask", spec.Requests[0].Name)
	assert.Equal(t, "mask", spec.Requests[0].Alias)
	assert.Equal(t, "mask", spec.Requests[0].Label())
	assert.Equal(t, "hosts", spec.Requests[1].Label())
}

func TestParseBodyFieldOrderIsFree(t *testing.T) {
	b := block(t, `Audit "Q" {
		check: [objective_value]
		target: "Max"
	}`)

	spec, err := ParseBody(b, "check")
	require.NoError(t, err)
	assert.Equal(t, "Max", spec.Target)
}

func TestParseBodyUnknownField(t *testing.T) {
	b := block(t, `Analysis "A1" {
		target: "S1"
		compute: [determinant]
	}`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `unknown field "compute"`)
	assert.Contains(t, parseErr.Msg, `"A1"`)
}

func TestParseBodyRejectsDuplicateTarget(t *testing.T) {
	b := block(t, `Analysis "A1" {
		target: "S1"
		target: "S2"
		calculate: [determinant]
	}`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `duplicate field "target"`)
	assert.Contains(t, parseErr.Msg, `"A1"`)
}

func TestParseBodyRejectsDuplicateList(t *testing.T) {
	b := block(t, `Inspect "I1" {
		target: "Net"
		show: [netmask]
		show: [hosts]
	}`)

	_, err := ParseBody(b, "show")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `duplicate field "show"`)
}

func TestParseBodyMissingTarget(t *testing.T) {
	b := block(t, `Analysis "A1" { calculate: [determinant] }`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `missing required field "target"`)
}

func TestParseBodyMissingList(t *testing.T) {
	b := block(t, `Analysis "A1" { target: "S1" }`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `missing required field "calculate"`)
}

func TestParseBodyRejectsTrailingComma(t *testing.T) {
	b := block(t, `Analysis "A1" {
		target: "S1"
		calculate: [determinant,]
	}`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseBodyRejectsEmptyList(t *testing.T) {
	b := block(t, `Analysis "A1" {
		target: "S1"
		calculate: []
	}`)

	_, err := ParseBody(b, "calculate")
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
}
