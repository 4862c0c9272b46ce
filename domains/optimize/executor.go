package optimize

import (
	"context"
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// AuditExecutor computes the projections an Audit block requests over its
// target Optimization problem.
type AuditExecutor struct{}

func (AuditExecutor) Keyword() string { return KeywordAudit }

func (AuditExecutor) Execute(ctx context.Context, m model.Model, target model.Model) (*model.Result, error) {
	a, ok := m.(*Audit)
	if !ok {
		return nil, fmt.Errorf("optimize: unexpected model type %T", m)
	}
	prob, ok := target.(*Problem)
	if !ok {
		return nil, &codex.ExecutionError{
			Entity:  a.Entity(),
			Keyword: a.Keyword(),
			Err:     fmt.Errorf("target %q is a %s block, not a %s", a.Target(), target.Keyword(), KeywordOptimization),
		}
	}

	// One solve serves every requested projection.
	sol, err := solve(prob)
	if err != nil {
		return nil, &codex.ExecutionError{Entity: a.Entity(), Keyword: a.Keyword(), Err: err}
	}

	logger := ctxlog.FromContext(ctx)
	res := &model.Result{Entity: a.Entity(), Keyword: a.Keyword()}

	for _, req := range a.Requests() {
		switch req.Name {
		case "solution":
			t := &model.Table{Columns: []string{"variable", "value"}}
			for _, v := range sol.vars {
				t.Rows = append(t.Rows, []string{v, formatFloat(sol.values[v])})
			}
			res.Values = append(res.Values, model.Tabular(req, t))
		case "objective_value":
			res.Values = append(res.Values, model.Scalar(req, sol.objective))
		case "shadow_prices":
			t := &model.Table{Columns: []string{"constraint", "shadow_price"}}
			for i, c := range prob.Constraints {
				label := c.Left.String() + " " + string(c.Rel) + " " + c.Right.String()
				t.Rows = append(t.Rows, []string{label, formatFloat(sol.shadow[i])})
			}
			res.Values = append(res.Values, model.Tabular(req, t))
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

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
