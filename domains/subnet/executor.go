package subnet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// InspectExecutor computes the projections an Inspect block requests over
// its target Subnet.
type InspectExecutor struct{}

func (InspectExecutor) Keyword() string { return KeywordInspect }

func (InspectExecutor) Execute(ctx context.Context, m model.Model, target model.Model) (*model.Result, error) {
	q, ok := m.(*Inspect)
	if !ok {
		return nil, fmt.Errorf("subnet: unexpected model type %T", m)
	}
	n, ok := target.(*Net)
	if !ok {
		return nil, &codex.ExecutionError{
			Entity:  q.Entity(),
			Keyword: q.Keyword(),
			Err:     fmt.Errorf("target %q is a %s block, not a %s", q.Target(), target.Keyword(), KeywordSubnet),
		}
	}

	p, err := parsePrefix(n.CIDR)
	if err != nil {
		return nil, &codex.ExecutionError{Entity: q.Entity(), Keyword: q.Keyword(), Err: err}
	}

	logger := ctxlog.FromContext(ctx)
	res := &model.Result{Entity: q.Entity(), Keyword: q.Keyword()}

	for _, req := range q.Requests() {
		switch req.Name {
		case "network":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.network)))
		case "range":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.network)+"-"+u32ToString(p.broadcast)))
		case "netmask":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.netmask())))
		case "wildcard":
			res.Values = append(res.Values, model.Text(req, u32ToString(^p.netmask())))
		case "broadcast":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.broadcast)))
		case "first_host":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.firstHost())))
		case "last_host":
			res.Values = append(res.Values, model.Text(req, u32ToString(p.lastHost())))
		case "hosts":
			res.Values = append(res.Values, model.Scalar(req, float64(p.usableHosts())))
		case "gateway":
			if n.Gateway == "" {
				res.Values = append(res.Values, model.Unsupported(req, &codex.ExecutionError{
					Entity:  q.Entity(),
					Keyword: q.Keyword(),
					Err:     fmt.Errorf("subnet %q declares no gateway", n.Entity()),
				}))
				continue
			}
			res.Values = append(res.Values, model.Text(req, n.Gateway))
		case "table":
			rows, err := splitRows(p, n)
			if err != nil {
				return nil, &codex.ExecutionError{Entity: q.Entity(), Keyword: q.Keyword(), Err: err}
			}
			res.Values = append(res.Values, model.Tabular(req, rowTable(rows)))
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

// splitRows picks the split the definition asked for: VLSM when host counts
// are given, FLSM otherwise.
func splitRows(p prefixInfo, n *Net) ([]Row, error) {
	if len(n.Hosts) > 0 {
		return vlsmRows(p, n.Hosts)
	}
	count := n.Subnets
	if count == 0 {
		return nil, fmt.Errorf("subnet %q declares neither \"subnets\" nor \"hosts\", nothing to tabulate", n.Entity())
	}
	return flsmRows(p, count)
}

func rowTable(rows []Row) *model.Table {
	t := &model.Table{
		Columns: []string{"subnet", "network", "first_host", "last_host", "broadcast", "hosts_per_net"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Index),
			r.Network,
			r.FirstHost,
			r.LastHost,
			r.Broadcast,
			strconv.FormatUint(uint64(r.HostsPerNet), 10),
		})
	}
	return t
}
