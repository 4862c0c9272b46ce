package boolalg

import (
	"errors"
	"fmt"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/queries"
	"github.com/suma-ulsa/codexgo/internal/scan"
)

// Node is one node of a boolean expression tree.
type Node interface {
	Eval(values map[string]bool) bool
}

// VarNode references a named variable.
type VarNode struct {
	Name string
}

func (n VarNode) Eval(values map[string]bool) bool { return values[n.Name] }

// NotNode negates its operand.
type NotNode struct {
	X Node
}

func (n NotNode) Eval(values map[string]bool) bool { return !n.X.Eval(values) }

// OpNode combines two operands with "and", "or" or "xor".
type OpNode struct {
	Op   string
	L, R Node
}

func (n OpNode) Eval(values map[string]bool) bool {
	switch n.Op {
	case "and":
		return n.L.Eval(values) && n.R.Eval(values)
	case "or":
		return n.L.Eval(values) || n.R.Eval(values)
	default: // xor
		return n.L.Eval(values) != n.R.Eval(values)
	}
}

// ExpressionParser parses Boolean block bodies:
//
//	expression: "A and (B or not C)"
//
// Precedence, loosest first: or, xor, and, not.
type ExpressionParser struct{}

func (ExpressionParser) Keyword() string { return KeywordBoolean }

func (ExpressionParser) ParseBody(b *codex.Block) (model.Model, error) {
	cur := codex.NewCursor(b.Body)
	var source string
	sawExpr := false

	for !cur.AtEnd() {
		field, err := cur.Expect(scan.IDENT, b.Keyword)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(scan.COLON, b.Keyword); err != nil {
			return nil, err
		}
		switch field.Lexeme {
		case "expression":
			tok, err := cur.Expect(scan.STRING, b.Keyword)
			if err != nil {
				return nil, err
			}
			source = tok.Lexeme
			sawExpr = true
		default:
			return nil, &codex.ParseError{
				Keyword: b.Keyword,
				Line:    field.Line,
				Column:  field.Column,
				Msg:     fmt.Sprintf("unknown field %q in block %q", field.Lexeme, b.Name),
			}
		}
	}
	if !sawExpr {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field \"expression\"", b.Name),
		}
	}

	root, vars, err := parseExpression(source)
	if err != nil {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("invalid boolean expression in block %q: %v", b.Name, err),
		}
	}
	return &Expression{name: b.Name, Source: source, Root: root, Variables: vars}, nil
}

// exprParser is a recursive descent parser over the re-lexed expression
// string. The operators are ordinary identifiers at the lexical level.
type exprParser struct {
	cur  *codex.Cursor
	vars []string
	seen map[string]bool
}

func parseExpression(src string) (Node, []string, error) {
	toks, err := scan.All(src)
	if err != nil {
		return nil, nil, err
	}
	// Drop the EOF sentinel; the cursor supplies its own.
	p := &exprParser{cur: codex.NewCursor(toks[:len(toks)-1]), seen: make(map[string]bool)}
	root, err := p.parseOr()
	if err != nil {
		return nil, nil, err
	}
	if !p.cur.AtEnd() {
		t := p.cur.Peek()
		return nil, nil, fmt.Errorf("unexpected %s %q after expression", t.Type, t.Lexeme)
	}
	if len(p.vars) == 0 {
		return nil, nil, errors.New("expression references no variables")
	}
	return root, p.vars, nil
}

func (p *exprParser) parseOr() (Node, error) {
	lhs, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.peekWord("or") {
		p.cur.Next()
		rhs, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		lhs = OpNode{Op: "or", L: lhs, R: rhs}
	}
	return lhs, nil
}

func (p *exprParser) parseXor() (Node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peekWord("xor") {
		p.cur.Next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = OpNode{Op: "xor", L: lhs, R: rhs}
	}
	return lhs, nil
}

func (p *exprParser) parseAnd() (Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peekWord("and") {
		p.cur.Next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = OpNode{Op: "and", L: lhs, R: rhs}
	}
	return lhs, nil
}

func (p *exprParser) parseUnary() (Node, error) {
	if p.peekWord("not") {
		p.cur.Next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NotNode{X: x}, nil
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (Node, error) {
	tok := p.cur.Next()
	switch tok.Type {
	case scan.IDENT:
		switch tok.Lexeme {
		case "and", "or", "xor", "not":
			return nil, fmt.Errorf("operator %q used as a variable", tok.Lexeme)
		}
		if !p.seen[tok.Lexeme] {
			p.seen[tok.Lexeme] = true
			p.vars = append(p.vars, tok.Lexeme)
		}
		return VarNode{Name: tok.Lexeme}, nil
	case scan.LPAREN:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.cur.Expect(scan.RPAREN, KeywordBoolean); err != nil {
			return nil, errors.New("missing closing parenthesis")
		}
		return inner, nil
	}
	return nil, fmt.Errorf("expected variable or '(', found %s %q", tok.Type, tok.Lexeme)
}

func (p *exprParser) peekWord(w string) bool {
	t := p.cur.Peek()
	return t.Type == scan.IDENT && t.Lexeme == w
}

// EvaluateParser parses Evaluate block bodies: a target and a show list.
type EvaluateParser struct{}

func (EvaluateParser) Keyword() string { return KeywordEvaluate }

func (EvaluateParser) ParseBody(b *codex.Block) (model.Model, error) {
	spec, err := queries.ParseBody(b, "show")
	if err != nil {
		return nil, err
	}
	return &Evaluate{name: b.Name, target: spec.Target, requests: spec.Requests}, nil
}
