package linalg

import (
	"context"
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// AnalysisExecutor computes the projections an Analysis block requests over
// its target LinearSystem.
type AnalysisExecutor struct{}

func (AnalysisExecutor) Keyword() string { return KeywordAnalysis }

func (AnalysisExecutor) Execute(ctx context.Context, m model.Model, target model.Model) (*model.Result, error) {
	a, ok := m.(*Analysis)
	if !ok {
		return nil, fmt.Errorf("linalg: unexpected model type %T", m)
	}
	sys, ok := target.(*System)
	if !ok {
		return nil, &codex.ExecutionError{
			Entity:  a.Entity(),
			Keyword: a.Keyword(),
			Err:     fmt.Errorf("target %q is a %s block, not a %s", a.Target(), target.Keyword(), KeywordSystem),
		}
	}

	logger := ctxlog.FromContext(ctx)
	res := &model.Result{Entity: a.Entity(), Keyword: a.Keyword()}

	for _, req := range a.Requests() {
		switch req.Name {
		case "determinant":
			det, err := sys.Coefficients.Determinant()
			if err != nil {
				return nil, &codex.ExecutionError{Entity: a.Entity(), Keyword: a.Keyword(), Err: err}
			}
			res.Values = append(res.Values, model.Scalar(req, det))
		case "solution":
			x, err := sys.Coefficients.Solve(sys.Constants)
			if err != nil {
				return nil, &codex.ExecutionError{Entity: a.Entity(), Keyword: a.Keyword(), Err: err}
			}
			res.Values = append(res.Values, model.Vector(req, x))
		case "inverse":
			inv, err := sys.Coefficients.Inverse()
			if err != nil {
				return nil, &codex.ExecutionError{Entity: a.Entity(), Keyword: a.Keyword(), Err: err}
			}
			res.Values = append(res.Values, model.Tabular(req, matrixTable(inv)))
		default:
			logger.Debug("Unsupported computation requested.", "domain", a.Keyword(), "computation", req.Name)
			res.Values = append(res.Values, model.Unsupported(req, &codex.UnsupportedComputationError{
				Keyword:     a.Keyword(),
				Computation: req.Name,
			}))
		}
	}
	return res, nil
}

func matrixTable(m *Matrix) *model.Table {
	cols := make([]string, m.Cols)
	for j := range cols {
		cols[j] = "c" + strconv.Itoa(j+1)
	}
	rows := make([][]string, m.Rows)
	for i := 0; i < m.Rows; i++ {
		row := make([]string, m.Cols)
		for j := 0; j < m.Cols; j++ {
			row[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		rows[i] = row
	}
	return &model.Table{Columns: cols, Rows: rows}
}
