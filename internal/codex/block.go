package codex

import "github.com/suma-ulsa/codexgo/internal/scan"

// Block is one top-level unit of a script: Keyword "Name" { body }. The
// body is kept as an uninterpreted token slice; the envelope parser only
// guarantees that braces inside it balance.
type Block struct {
	Keyword string
	Name    string
	Body    []scan.Token

	// Position of the block keyword in the source.
	Line   int
	Column int
}

// Cursor walks a block body token slice. Domain parsers consume bodies
// through it so position information survives into their errors.
type Cursor struct {
	toks []scan.Token
	i    int
}

// NewCursor returns a cursor over toks.
func NewCursor(toks []scan.Token) *Cursor {
	return &Cursor{toks: toks}
}

// AtEnd reports whether the cursor has consumed every token.
func (c *Cursor) AtEnd() bool {
	return c.i >= len(c.toks)
}

// Peek returns the current token without consuming it. At the end of the
// body it returns an EOF token positioned after the last real token.
func (c *Cursor) Peek() scan.Token {
	if c.AtEnd() {
		if len(c.toks) == 0 {
			return scan.Token{Type: scan.EOF, Line: 1, Column: 1}
		}
		last := c.toks[len(c.toks)-1]
		return scan.Token{Type: scan.EOF, Line: last.Line, Column: last.Column + len(last.Lexeme)}
	}
	return c.toks[c.i]
}

// Next consumes and returns the current token.
func (c *Cursor) Next() scan.Token {
	t := c.Peek()
	if !c.AtEnd() {
		c.i++
	}
	return t
}

// Accept consumes the current token if it has type tt.
func (c *Cursor) Accept(tt scan.Type) (scan.Token, bool) {
	if c.Peek().Type == tt {
		return c.Next(), true
	}
	return scan.Token{}, false
}

// Expect consumes a token of type tt or returns a *ParseError attributed to
// keyword.
func (c *Cursor) Expect(tt scan.Type, keyword string) (scan.Token, error) {
	t := c.Peek()
	if t.Type != tt {
		return scan.Token{}, &ParseError{
			Keyword: keyword,
			Line:    t.Line,
			Column:  t.Column,
			Msg:     "expected " + string(tt) + ", found " + string(t.Type),
		}
	}
	return c.Next(), nil
}
