package optimize

import (
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/queries"
	"github.com/suma-ulsa/codexgo/internal/scan"
)

// ProblemParser parses Optimization block bodies:
//
//	maximize: 5x + 3y
//	subject_to {
//	    x + y <= 100
//	    x >= 0
//	}
//
// Linear expressions use implicit coefficient juxtaposition: "5x" is the
// product 5*x when the identifier immediately follows the number.
type ProblemParser struct{}

func (ProblemParser) Keyword() string { return KeywordOptimization }

func (ProblemParser) ParseBody(b *codex.Block) (model.Model, error) {
	cur := codex.NewCursor(b.Body)
	prob := &Problem{name: b.Name}
	sawObjective := false

	for !cur.AtEnd() {
		field, err := cur.Expect(scan.IDENT, b.Keyword)
		if err != nil {
			return nil, err
		}

		switch field.Lexeme {
		case "maximize", "minimize":
			if sawObjective {
				return nil, &codex.ParseError{
					Keyword: b.Keyword,
					Line:    field.Line,
					Column:  field.Column,
					Msg:     fmt.Sprintf("block %q declares more than one objective", b.Name),
				}
			}
			if _, err := cur.Expect(scan.COLON, b.Keyword); err != nil {
				return nil, err
			}
			obj, err := parseExpr(cur, b.Keyword)
			if err != nil {
				return nil, err
			}
			prob.Objective = obj
			if field.Lexeme == "minimize" {
				prob.Direction = Minimize
			}
			sawObjective = true
		case "subject_to":
			if _, err := cur.Expect(scan.LBRACE, b.Keyword); err != nil {
				return nil, err
			}
			for {
				if _, ok := cur.Accept(scan.RBRACE); ok {
					break
				}
				c, err := parseConstraint(cur, b.Keyword)
				if err != nil {
					return nil, err
				}
				prob.Constraints = append(prob.Constraints, c)
			}
		default:
			return nil, &codex.ParseError{
				Keyword: b.Keyword,
				Line:    field.Line,
				Column:  field.Column,
				Msg:     fmt.Sprintf("unknown field %q in block %q", field.Lexeme, b.Name),
			}
		}
	}

	if !sawObjective {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing an objective (maximize or minimize)", b.Name),
		}
	}
	return prob, nil
}

func parseConstraint(cur *codex.Cursor, keyword string) (Constraint, error) {
	left, err := parseExpr(cur, keyword)
	if err != nil {
		return Constraint{}, err
	}

	relTok := cur.Next()
	var rel Relation
	switch relTok.Type {
	case scan.LE:
		rel = LessEq
	case scan.GE:
		rel = GreaterEq
	case scan.EQ:
		rel = Equal
	default:
		return Constraint{}, &codex.ParseError{
			Keyword: keyword,
			Line:    relTok.Line,
			Column:  relTok.Column,
			Msg:     fmt.Sprintf("expected constraint relation (<=, >= or =), found %s", relTok.Type),
		}
	}

	right, err := parseExpr(cur, keyword)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{Left: left, Rel: rel, Right: right}, nil
}

// parseExpr parses sums: term (('+'|'-') term)*.
func parseExpr(cur *codex.Cursor, keyword string) (Expr, error) {
	lhs, err := parseTerm(cur, keyword)
	if err != nil {
		return nil, err
	}
	for {
		switch cur.Peek().Type {
		case scan.PLUS:
			cur.Next()
			rhs, err := parseTerm(cur, keyword)
			if err != nil {
				return nil, err
			}
			lhs = Binary{Op: "+", L: lhs, R: rhs}
		case scan.MINUS:
			cur.Next()
			rhs, err := parseTerm(cur, keyword)
			if err != nil {
				return nil, err
			}
			lhs = Binary{Op: "-", L: lhs, R: rhs}
		default:
			return lhs, nil
		}
	}
}

// parseTerm parses products: factor (('*'|'/') factor)*. A lone '/' is
// always division here; comments were already consumed by the lexer.
func parseTerm(cur *codex.Cursor, keyword string) (Expr, error) {
	lhs, err := parseFactor(cur, keyword)
	if err != nil {
		return nil, err
	}
	for {
		switch cur.Peek().Type {
		case scan.STAR:
			cur.Next()
			rhs, err := parseFactor(cur, keyword)
			if err != nil {
				return nil, err
			}
			lhs = Binary{Op: "*", L: lhs, R: rhs}
		case scan.SLASH:
			cur.Next()
			rhs, err := parseFactor(cur, keyword)
			if err != nil {
				return nil, err
			}
			lhs = Binary{Op: "/", L: lhs, R: rhs}
		default:
			return lhs, nil
		}
	}
}

func parseFactor(cur *codex.Cursor, keyword string) (Expr, error) {
	if _, ok := cur.Accept(scan.MINUS); ok {
		x, err := parseFactor(cur, keyword)
		if err != nil {
			return nil, err
		}
		return Neg{X: x}, nil
	}
	return parseAtom(cur, keyword)
}

func parseAtom(cur *codex.Cursor, keyword string) (Expr, error) {
	tok := cur.Next()
	switch tok.Type {
	case scan.NUMBER:
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &codex.ParseError{Keyword: keyword, Line: tok.Line, Column: tok.Column, Msg: "malformed number " + tok.Lexeme}
		}
		num := Num{V: v}
		// Implicit multiplication: "5x" only when the identifier abuts the
		// number. "100 x" is two tokens of two different constraints.
		if next := cur.Peek(); next.Type == scan.IDENT &&
			next.Line == tok.Line && next.Column == tok.Column+len(tok.Lexeme) {
			cur.Next()
			return Binary{Op: "*", L: num, R: Var{Name: next.Lexeme}}, nil
		}
		return num, nil
	case scan.IDENT:
		return Var{Name: tok.Lexeme}, nil
	case scan.LPAREN:
		inner, err := parseExpr(cur, keyword)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(scan.RPAREN, keyword); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, &codex.ParseError{
		Keyword: keyword,
		Line:    tok.Line,
		Column:  tok.Column,
		Msg:     fmt.Sprintf("expected factor, found %s %q", tok.Type, tok.Lexeme),
	}
}

// AuditParser parses Audit block bodies: a target and a check list.
type AuditParser struct{}

func (AuditParser) Keyword() string { return KeywordAudit }

func (AuditParser) ParseBody(b *codex.Block) (model.Model, error) {
	spec, err := queries.ParseBody(b, "check")
	if err != nil {
		return nil, err
	}
	return &Audit{name: b.Name, target: spec.Target, requests: spec.Requests}, nil
}
