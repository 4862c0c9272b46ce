package linalg

import (
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/queries"
	"github.com/suma-ulsa/codexgo/internal/scan"
)

// SystemParser parses LinearSystem block bodies:
//
//	coefficients: [4, 7; 2, 6]
//	constants: [10; 20]
type SystemParser struct{}

func (SystemParser) Keyword() string { return KeywordSystem }

func (SystemParser) ParseBody(b *codex.Block) (model.Model, error) {
	cur := codex.NewCursor(b.Body)
	sys := &System{name: b.Name}

	for !cur.AtEnd() {
		field, err := cur.Expect(scan.IDENT, b.Keyword)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(scan.COLON, b.Keyword); err != nil {
			return nil, err
		}

		switch field.Lexeme {
		case "coefficients":
			m, err := parseMatrixLiteral(cur, b.Keyword)
			if err != nil {
				return nil, err
			}
			sys.Coefficients = m
		case "constants":
			m, err := parseMatrixLiteral(cur, b.Keyword)
			if err != nil {
				return nil, err
			}
			vec, err := asVector(m)
			if err != nil {
				return nil, &codex.ParseError{Keyword: b.Keyword, Line: field.Line, Column: field.Column, Msg: err.Error()}
			}
			sys.Constants = vec
		default:
			return nil, &codex.ParseError{
				Keyword: b.Keyword,
				Line:    field.Line,
				Column:  field.Column,
				Msg:     fmt.Sprintf("unknown field %q in block %q", field.Lexeme, b.Name),
			}
		}
	}

	if sys.Coefficients == nil {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field \"coefficients\"", b.Name),
		}
	}
	if sys.Constants == nil {
		return nil, &codex.ParseError{
			Keyword: b.Keyword,
			Line:    b.Line,
			Column:  b.Column,
			Msg:     fmt.Sprintf("block %q is missing required field \"constants\"", b.Name),
		}
	}
	return sys, nil
}

// parseMatrixLiteral parses [a, b; c, d]: rows separated by ';', entries by
// ','. Trailing separators are rejected and rows must be rectangular.
func parseMatrixLiteral(cur *codex.Cursor, keyword string) (*Matrix, error) {
	open, err := cur.Expect(scan.LBRACKET, keyword)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	row := []float64{}
	for {
		v, err := parseSignedNumber(cur, keyword)
		if err != nil {
			return nil, err
		}
		row = append(row, v)

		sep := cur.Next()
		switch sep.Type {
		case scan.COMMA:
			continue
		case scan.SEMI:
			rows = append(rows, row)
			row = []float64{}
		case scan.RBRACKET:
			rows = append(rows, row)
			return buildMatrix(rows, open, keyword)
		default:
			return nil, &codex.ParseError{
				Keyword: keyword,
				Line:    sep.Line,
				Column:  sep.Column,
				Msg:     fmt.Sprintf("expected ',', ';' or ']' in matrix literal, found %s", sep.Type),
			}
		}
	}
}

func parseSignedNumber(cur *codex.Cursor, keyword string) (float64, error) {
	neg := false
	if _, ok := cur.Accept(scan.MINUS); ok {
		neg = true
	}
	tok, err := cur.Expect(scan.NUMBER, keyword)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return 0, &codex.ParseError{Keyword: keyword, Line: tok.Line, Column: tok.Column, Msg: "malformed number " + tok.Lexeme}
	}
	if neg {
		v = -v
	}
	return v, nil
}

func buildMatrix(rows [][]float64, open scan.Token, keyword string) (*Matrix, error) {
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, &codex.ParseError{
				Keyword: keyword,
				Line:    open.Line,
				Column:  open.Column,
				Msg:     fmt.Sprintf("matrix row %d has %d entries, expected %d", i+1, len(r), cols),
			}
		}
		data = append(data, r...)
	}
	return NewMatrix(len(rows), cols, data)
}

// asVector flattens an Nx1 or 1xN matrix literal to a vector.
func asVector(m *Matrix) ([]float64, error) {
	if m.Cols == 1 {
		return m.Column(0), nil
	}
	if m.Rows == 1 {
		out := make([]float64, m.Cols)
		copy(out, m.Data)
		return out, nil
	}
	return nil, fmt.Errorf("constants must be a vector, have %dx%d", m.Rows, m.Cols)
}

// AnalysisParser parses Analysis block bodies: a target and a calculate
// list.
type AnalysisParser struct{}

func (AnalysisParser) Keyword() string { return KeywordAnalysis }

func (AnalysisParser) ParseBody(b *codex.Block) (model.Model, error) {
	spec, err := queries.ParseBody(b, "calculate")
	if err != nil {
		return nil, err
	}
	return &Analysis{name: b.Name, target: spec.Target, requests: spec.Requests}, nil
}
