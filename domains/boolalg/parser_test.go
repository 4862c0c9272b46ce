package boolalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suma-ulsa/codexgo/internal/codex"
)

func parseOne(t *testing.T, src string) *codex.Block {
	t.Helper()
	blocks, err := codex.Parse(src)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	return &blocks[0]
}

func parseExpr(t *testing.T, src string) *Expression {
	t.Helper()
	m, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { expression: "`+src+`" }`))
	require.NoError(t, err)
	return m.(*Expression)
}

func TestParseExpressionVariables(t *testing.T) {
	e := parseExpr(t, "A and (B or not C)")
	assert.Equal(t, "A and (B or not C)", e.Source)
	assert.Equal(t, []string{"A", "B", "C"}, e.Variables)
}

func TestParseExpressionDeduplicatesVariables(t *testing.T) {
	e := parseExpr(t, "A and B or A")
	assert.Equal(t, []string{"A", "B"}, e.Variables)
}

func TestEvalPrecedence(t *testing.T) {
	// and binds tighter than or: A or B and C == A or (B and C).
	e := parseExpr(t, "A or B and C")

	assert.True(t, e.Root.Eval(map[string]bool{"A": true, "B": false, "C": false}))
	assert.False(t, e.Root.Eval(map[string]bool{"A": false, "B": true, "C": false}))
	assert.True(t, e.Root.Eval(map[string]bool{"A": false, "B": true, "C": true}))
}

func TestEvalXor(t *testing.T) {
	e := parseExpr(t, "A xor B")
	assert.False(t, e.Root.Eval(map[string]bool{"A": true, "B": true}))
	assert.True(t, e.Root.Eval(map[string]bool{"A": true, "B": false}))
	assert.False(t, e.Root.Eval(map[string]bool{"A": false, "B": false}))
}

func TestEvalNotChain(t *testing.T) {
	e := parseExpr(t, "not not A")
	assert.True(t, e.Root.Eval(map[string]bool{"A": true}))
	assert.False(t, e.Root.Eval(map[string]bool{"A": false}))
}

func TestEvalParenthesesOverridePrecedence(t *testing.T) {
	e := parseExpr(t, "(A or B) and C")
	assert.False(t, e.Root.Eval(map[string]bool{"A": true, "B": false, "C": false}))
	assert.True(t, e.Root.Eval(map[string]bool{"A": true, "B": false, "C": true}))
}

func TestParseRejectsOperatorAsVariable(t *testing.T) {
	_, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { expression: "A and or" }`))
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `operator "or" used as a variable`)
}

func TestParseRejectsUnbalancedParentheses(t *testing.T) {
	_, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { expression: "(A or B" }`))
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "missing closing parenthesis")
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { expression: "A B" }`))
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "after expression")
}

func TestParseRejectsEmptyExpression(t *testing.T) {
	_, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { expression: "42" }`))
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseRejectsMissingExpressionField(t *testing.T) {
	_, err := ExpressionParser{}.ParseBody(parseOne(t, `Boolean "B" { }`))
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `missing required field "expression"`)
}

func TestParseEvaluate(t *testing.T) {
	m, err := EvaluateParser{}.ParseBody(parseOne(t, `Evaluate "E1" {
		target: "B"
		show: [variables, table]
	}`))
	require.NoError(t, err)

	q := m.(*Evaluate)
	assert.Equal(t, "B", q.Target())
	require.Len(t, q.Requests(), 2)
}
