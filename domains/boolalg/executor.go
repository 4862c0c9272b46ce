package boolalg

import (
	"context"
	"fmt"
	"strings"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// truthTableLimit caps the variable count so table generation stays
// tractable (2^n rows).
const truthTableLimit = 16

// EvaluateExecutor computes the projections an Evaluate block requests over
// its target Boolean expression.
type EvaluateExecutor struct{}

func (EvaluateExecutor) Keyword() string { return KeywordEvaluate }

func (EvaluateExecutor) Execute(ctx context.Context, m model.Model, target model.Model) (*model.Result, error) {
	q, ok := m.(*Evaluate)
	if !ok {
		return nil, fmt.Errorf("boolalg: unexpected model type %T", m)
	}
	expr, ok := target.(*Expression)
	if !ok {
		return nil, &codex.ExecutionError{
			Entity:  q.Entity(),
			Keyword: q.Keyword(),
			Err:     fmt.Errorf("target %q is a %s block, not a %s", q.Target(), target.Keyword(), KeywordBoolean),
		}
	}

	logger := ctxlog.FromContext(ctx)
	res := &model.Result{Entity: q.Entity(), Keyword: q.Keyword()}

	for _, req := range q.Requests() {
		switch req.Name {
		case "expression":
			res.Values = append(res.Values, model.Text(req, expr.Source))
		case "variables":
			res.Values = append(res.Values, model.Text(req, strings.Join(expr.Variables, ", ")))
		case "table":
			t, err := truthTable(expr)
			if err != nil {
				return nil, &codex.ExecutionError{Entity: q.Entity(), Keyword: q.Keyword(), Err: err}
			}
			res.Values = append(res.Values, model.Tabular(req, t))
		default:
			logger.Debug("Unsupported computation requested.", "domain", q.Keyword(), "computation", req.Name)
			res.Values = append(res.Values, model.Unsupported(req, &codex.UnsupportedComputationError{
				Keyword:     q.Keyword(),
				Computation: req.Name,
			}))
		}
	}
	return res, nil
}

// truthTable enumerates all assignments in binary counting order with the
// first variable as the most significant bit.
func truthTable(expr *Expression) (*model.Table, error) {
	n := len(expr.Variables)
	if n > truthTableLimit {
		return nil, fmt.Errorf("expression has %d variables, truth tables are limited to %d", n, truthTableLimit)
	}

	t := &model.Table{Columns: append(append([]string{}, expr.Variables...), "result")}
	values := make(map[string]bool, n)
	for i := 0; i < 1<<n; i++ {
		row := make([]string, 0, n+1)
		for j, name := range expr.Variables {
			bit := i>>(n-1-j)&1 == 1
			values[name] = bit
			row = append(row, formatBool(bit))
		}
		row = append(row, formatBool(expr.Root.Eval(values)))
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
