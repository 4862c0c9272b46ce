package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(toks []Token) []Type {
	out := make([]Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexesBlockSkeleton(t *testing.T) {
	toks, err := All(`LinearSystem "S1" { coefficients: [4, 7; 2, 6] }`)
	require.NoError(t, err)

	want := []Type{IDENT, STRING, LBRACE, IDENT, COLON, LBRACKET, NUMBER, COMMA, NUMBER, SEMI, NUMBER, COMMA, NUMBER, RBRACKET, RBRACE, EOF}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "LinearSystem", toks[0].Lexeme)
	assert.Equal(t, "S1", toks[1].Lexeme)
}

func TestSingleSlashIsDivisionNotComment(t *testing.T) {
	toks, err := All("5x/3 // half")
	require.NoError(t, err)

	want := []Type{NUMBER, IDENT, SLASH, NUMBER, EOF}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "3", toks[3].Lexeme)
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	toks, err := All("// whole line { not a block\nx")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, IDENT, toks[0].Type)
	assert.Equal(t, 2, toks[0].Line)
}

func TestCommentMarkerInsideStringIsLiteral(t *testing.T) {
	toks, err := All(`"http://example" x`)
	require.NoError(t, err)
	require.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "http://example", toks[0].Lexeme)
	assert.Equal(t, IDENT, toks[1].Type)
}

func TestStringEscapes(t *testing.T) {
	toks, err := All(`"a\"b\\c\nd"`)
	require.NoError(t, err)
	assert.Equal(t, "a\"b\\c\nd", toks[0].Lexeme)
}

func TestUnterminatedString(t *testing.T) {
	_, err := All(`"open`)
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Line)
}

func TestRelationalOperators(t *testing.T) {
	toks, err := All("x <= 1 y >= 2 z = 3 a < b > c")
	require.NoError(t, err)
	want := []Type{IDENT, LE, NUMBER, IDENT, GE, NUMBER, IDENT, EQ, NUMBER, IDENT, LT, IDENT, GT, IDENT, EOF}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestDecimalNumbers(t *testing.T) {
	toks, err := All("1.5 0.25 10")
	require.NoError(t, err)
	assert.Equal(t, "1.5", toks[0].Lexeme)
	assert.Equal(t, "0.25", toks[1].Lexeme)
	assert.Equal(t, "10", toks[2].Lexeme)
}

func TestPositionsAreOneBased(t *testing.T) {
	toks, err := All("a\n  b")
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[1].Column)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := All("a € b")
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Msg, "unexpected character")
}
