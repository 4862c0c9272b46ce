// Package codex implements the domain-agnostic half of the script grammar:
// the lexical envelope that splits a script into ordered blocks of the form
//
//	Keyword "Name" { body }
//
// Body contents are captured verbatim (as tokens) and handed to the domain
// parser selected by the keyword; the envelope only balances braces. The
// package also defines the engine-wide error taxonomy.
package codex

import (
	"errors"
	"fmt"

	"github.com/suma-ulsa/codexgo/internal/scan"
)

// Parse splits script source text into its ordered block sequence. Any
// lexical or structural violation aborts the whole parse; there is no
// best-effort recovery.
func Parse(src string) ([]Block, error) {
	toks, err := scan.All(src)
	if err != nil {
		var lexErr *scan.Error
		if errors.As(err, &lexErr) {
			return nil, &ParseError{Line: lexErr.Line, Column: lexErr.Column, Msg: lexErr.Msg}
		}
		return nil, err
	}

	var blocks []Block
	i := 0
	for toks[i].Type != scan.EOF {
		kw := toks[i]
		if kw.Type != scan.IDENT {
			return nil, &ParseError{
				Line:   kw.Line,
				Column: kw.Column,
				Msg:    fmt.Sprintf("expected block keyword, found %s %q", kw.Type, kw.Lexeme),
			}
		}
		i++

		name := toks[i]
		if name.Type != scan.STRING {
			return nil, &ParseError{
				Keyword: kw.Lexeme,
				Line:    name.Line,
				Column:  name.Column,
				Msg:     "expected quoted block name",
			}
		}
		i++

		if toks[i].Type != scan.LBRACE {
			return nil, &ParseError{
				Keyword: kw.Lexeme,
				Line:    toks[i].Line,
				Column:  toks[i].Column,
				Msg:     "expected '{' to open block body",
			}
		}
		i++

		// Capture the body, balancing nested braces without interpreting
		// anything else.
		depth := 1
		start := i
		for depth > 0 {
			switch toks[i].Type {
			case scan.LBRACE:
				depth++
			case scan.RBRACE:
				depth--
			case scan.EOF:
				return nil, &ParseError{
					Keyword: kw.Lexeme,
					Line:    kw.Line,
					Column:  kw.Column,
					Msg:     fmt.Sprintf("unbalanced braces in block %q", name.Lexeme),
				}
			}
			i++
		}

		blocks = append(blocks, Block{
			Keyword: kw.Lexeme,
			Name:    name.Lexeme,
			Body:    toks[start : i-1],
			Line:    kw.Line,
			Column:  kw.Column,
		})
	}
	return blocks, nil
}
