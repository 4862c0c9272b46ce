// Package queries implements the body grammar shared by every query block
// (Analysis, Inspect, Audit, Evaluate):
//
//	target: "Entity"
//	<listField>: [name, name as alias, ...]
//
// Each query domain names its own list field (calculate/show/check) but the
// shape is common, so the grammar lives here once.
package queries

import (
	"fmt"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/scan"
)

// Spec is the parsed content of a query block body.
type Spec struct {
	Target   string
	Requests []model.Request
}

// ParseBody parses a query block body. keyword is the block's domain
// keyword, listField the field name holding the computation list.
func ParseBody(b *codex.Block, listField string) (*Spec, error) {
	cur := codex.NewCursor(b.Body)
	spec := &Spec{}
	sawTarget, sawList := false, false

	for !cur.AtEnd() {
		field, err := cur.Expect(scan.IDENT, b.Keyword)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(scan.COLON, b.Keyword); err != nil {
			return nil, err
		}

		switch field.Lexeme {
		case "target":
			if sawTarget {
				return nil, duplicateField(b, field)
			}
			tok, err := cur.Expect(scan.STRING, b.Keyword)
			if err != nil {
				return nil, err
			}
			spec.Target = tok.Lexeme
			sawTarget = true
		case listField:
			if sawList {
				return nil, duplicateField(b, field)
			}
			reqs, err := parseRequestList(cur, b.Keyword)
			if err != nil {
				return nil, err
			}
			spec.Requests = reqs
			sawList = true
		default:
			return nil, &codex.ParseError{
				Keyword: b.Keyword,
				Line:    field.Line,
				Column:  field.Column,
				Msg:     fmt.Sprintf("unknown field %q in block %q", field.Lexeme, b.Name),
			}
		}
	}

	if !sawTarget {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field \"target\"", b.Name),
		}
	}
	if !sawList {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field %q", b.Name, listField),
		}
	}
	return spec, nil
}

func duplicateField(b *codex.Block, field scan.Token) error {
	return &codex.ParseError{
		Keyword: b.Keyword,
		Line:    field.Line,
		Column:  field.Column,
		Msg:     fmt.Sprintf("duplicate field %q in block %q", field.Lexeme, b.Name),
	}
}

// parseRequestList parses [name, name as alias, ...]. Trailing commas are
// not allowed.
func parseRequestList(cur *codex.Cursor, keyword string) ([]model.Request, error) {
	if _, err := cur.Expect(scan.LBRACKET, keyword); err != nil {
		return nil, err
	}
	var reqs []model.Request
	for {
		nameTok, err := cur.Expect(scan.IDENT, keyword)
		if err != nil {
			return nil, err
		}
		req := model.Request{Name: nameTok.Lexeme}

		if next := cur.Peek(); next.Type == scan.IDENT && next.Lexeme == "as" {
			cur.Next()
			aliasTok, err := cur.Expect(scan.IDENT, keyword)
			if err != nil {
				return nil, err
			}
			req.Alias = aliasTok.Lexeme
		}
		reqs = append(reqs, req)

		if _, ok := cur.Accept(scan.COMMA); !ok {
			break
		}
	}
	if _, err := cur.Expect(scan.RBRACKET, keyword); err != nil {
		return nil, err
	}
	return reqs, nil
}
