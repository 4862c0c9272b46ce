package scan

import "fmt"

// Type identifies the kind of a lexical token.
type Type string

const (
	EOF     Type = "EOF"
	ILLEGAL Type = "ILLEGAL"

	// Identifiers and literals.
	IDENT  Type = "IDENT"
	NUMBER Type = "NUMBER"
	STRING Type = "STRING"

	// Delimiters.
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	LPAREN   Type = "("
	RPAREN   Type = ")"
	COLON    Type = ":"
	SEMI     Type = ";"
	COMMA    Type = ","

	// Operators.
	PLUS  Type = "+"
	MINUS Type = "-"
	STAR  Type = "*"
	SLASH Type = "/"
	EQ    Type = "="
	LE    Type = "<="
	GE    Type = ">="
	LT    Type = "<"
	GT    Type = ">"
)

// Token is one lexical unit of a script. Lexeme holds the exact source
// text; for STRING tokens it excludes the surrounding quotes.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// Pos renders the token position as "line:column".
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}
