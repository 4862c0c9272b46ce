package subnet

import (
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/queries"
	"github.com/suma-ulsa/codexgo/internal/scan"
)

// NetParser parses Subnet block bodies:
//
//	cidr: "192.168.1.0/24"
//	gateway: "192.168.1.1"
//	subnets: 4
//	hosts: [100, 50, 20]
type NetParser struct{}

func (NetParser) Keyword() string { return KeywordSubnet }

func (NetParser) ParseBody(b *codex.Block) (model.Model, error) {
	cur := codex.NewCursor(b.Body)
	n := &Net{name: b.Name}

	for !cur.AtEnd() {
		field, err := cur.Expect(scan.IDENT, b.Keyword)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(scan.COLON, b.Keyword); err != nil {
			return nil, err
		}

		switch field.Lexeme {
		case "cidr":
			tok, err := cur.Expect(scan.STRING, b.Keyword)
			if err != nil {
				return nil, err
			}
			n.CIDR = tok.Lexeme
		case "gateway":
			tok, err := cur.Expect(scan.STRING, b.Keyword)
			if err != nil {
				return nil, err
			}
			n.Gateway = tok.Lexeme
		case "subnets":
			tok, err := cur.Expect(scan.NUMBER, b.Keyword)
			if err != nil {
				return nil, err
			}
			v, err := strconv.Atoi(tok.Lexeme)
			if err != nil || v < 1 {
				return nil, &codex.ParseError{
					Keyword: b.Keyword,
					Line:    tok.Line,
					Column:  tok.Column,
					Msg:     "subnets must be a positive integer",
				}
			}
			n.Subnets = v
		case "hosts":
			list, err := parseIntList(cur, b.Keyword)
			if err != nil {
				return nil, err
			}
			n.Hosts = list
		default:
			return nil, &codex.ParseError{
				Keyword: b.Keyword,
				Line:    field.Line,
				Column:  field.Column,
				Msg:     fmt.Sprintf("unknown field %q in block %q", field.Lexeme, b.Name),
			}
		}
	}

	if n.CIDR == "" {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field \"cidr\"", b.Name),
		}
	}
	return n, nil
}

// parseIntList parses [a, b, c] of positive integers, no trailing comma.
func parseIntList(cur *codex.Cursor, keyword string) ([]int, error) {
	if _, err := cur.Expect(scan.LBRACKET, keyword); err != nil {
		return nil, err
	}
	var out []int
	for {
		tok, err := cur.Expect(scan.NUMBER, keyword)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(tok.Lexeme)
		if err != nil || v < 1 {
			return nil, &codex.ParseError{
				Keyword: keyword,
				Line:    tok.Line,
				Column:  tok.Column,
				Msg:     "host counts must be positive integers",
			}
		}
		out = append(out, v)
		if _, ok := cur.Accept(scan.COMMA); !ok {
			break
		}
	}
	if _, err := cur.Expect(scan.RBRACKET, keyword); err != nil {
		return nil, err
	}
	return out, nil
}

// InspectParser parses Inspect block bodies: a target and a show list.
type InspectParser struct{}

func (InspectParser) Keyword() string { return KeywordInspect }

func (InspectParser) ParseBody(b *codex.Block) (model.Model, error) {
	spec, err := queries.ParseBody(b, "show")
	if err != nil {
		return nil, err
	}
	return &Inspect{name: b.Name, target: spec.Target, requests: spec.Requests}, nil
}
