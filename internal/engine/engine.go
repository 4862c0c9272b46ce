// Package engine drives one script evaluation: it dispatches parsed blocks
// through the domain registries and the symbol table, then executes each
// block to produce an ordered result sequence.
//
// Structural errors (parse, unknown domain, duplicate entity, unresolved
// target) abort the whole evaluation. Computational errors are isolated per
// block and reported inline in the result sequence.
package engine

import (
	"context"
	"errors"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/ctxlog"
	"github.com/suma-ulsa/codexgo/internal/model"
	"github.com/suma-ulsa/codexgo/internal/registry"
	"github.com/suma-ulsa/codexgo/internal/symtab"
)

// BlockResult is the outcome of one block, in source order. Exactly one of
// Result and Err is set.
type BlockResult struct {
	Entity  string
	Keyword string
	Result  *model.Result
	Err     error
}

// Engine evaluates scripts against a fixed domain registry.
type Engine struct {
	reg *registry.Registry
}

// New returns an engine over reg.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// task is one dispatched block awaiting execution.
type task struct {
	block  codex.Block
	model  model.Model
	target model.Model // resolved query target, nil for definitions
}

// Evaluate parses, dispatches and executes src. The returned slice holds
// one entry per block in source order; it is nil when a structural error
// aborted the evaluation.
func (e *Engine) Evaluate(ctx context.Context, src string) ([]BlockResult, error) {
	logger := ctxlog.FromContext(ctx)

	blocks, err := codex.Parse(src)
	if err != nil {
		return nil, err
	}
	logger.Debug("Envelope parsed.", "blocks", len(blocks))

	tasks, err := e.dispatch(ctx, blocks)
	if err != nil {
		return nil, err
	}

	return e.execute(ctx, tasks), nil
}

// dispatch processes blocks strictly in source order, building the symbol
// table and resolving query targets. Ordering is load-bearing: it is what
// makes forward-reference rejection well-defined.
func (e *Engine) dispatch(ctx context.Context, blocks []codex.Block) ([]task, error) {
	logger := ctxlog.FromContext(ctx)
	table := symtab.New()
	tasks := make([]task, 0, len(blocks))

	for i := range blocks {
		b := &blocks[i]
		parser, ok := e.reg.Parser(b.Keyword)
		if !ok {
			return nil, &codex.UnknownDomainError{Keyword: b.Keyword, Line: b.Line, Column: b.Column}
		}

		m, err := parser.ParseBody(b)
		if err != nil {
			return nil, err
		}

		t := task{block: *b, model: m}
		switch m.Role() {
		case model.RoleDefinition:
			if err := table.Insert(m); err != nil {
				return nil, err
			}
			logger.Debug("Definition stored.", "entity", m.Entity(), "keyword", m.Keyword())
		case model.RoleQuery:
			q, ok := m.(model.QueryModel)
			if !ok {
				return nil, &codex.ParseError{
					Keyword: b.Keyword,
					Line:    b.Line,
					Column:  b.Column,
					Msg:     "query model does not expose a target",
				}
			}
			target, err := table.Resolve(q.Target(), q)
			if err != nil {
				return nil, err
			}
			t.target = target
			logger.Debug("Query resolved.", "entity", m.Entity(), "target", q.Target())
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// execute runs every dispatched task, isolating computational failures to
// their own block.
func (e *Engine) execute(ctx context.Context, tasks []task) []BlockResult {
	logger := ctxlog.FromContext(ctx)
	results := make([]BlockResult, 0, len(tasks))

	for _, t := range tasks {
		br := BlockResult{Entity: t.model.Entity(), Keyword: t.model.Keyword()}

		exec, ok := e.reg.Executor(t.block.Keyword)
		if !ok {
			// Most definitions have no independent execution; they only
			// materialize on being targeted. They still occupy one slot in
			// the result sequence so script order is fully accounted for.
			br.Result = &model.Result{
				Entity:  t.model.Entity(),
				Keyword: t.model.Keyword(),
				Stored:  true,
			}
			results = append(results, br)
			continue
		}

		res, err := exec.Execute(ctx, t.model, t.target)
		if err != nil {
			var execErr *codex.ExecutionError
			if !errors.As(err, &execErr) {
				err = &codex.ExecutionError{Entity: t.model.Entity(), Keyword: t.model.Keyword(), Err: err}
			}
			logger.Debug("Block execution failed.", "entity", t.model.Entity(), "error", err)
			br.Err = err
		} else {
			br.Result = res
		}
		results = append(results, br)
	}
	return results
}
