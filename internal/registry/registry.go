// Package registry holds the two parallel keyword registries that make the
// engine open for extension: keyword→parser and keyword→executor. Adding a
// domain means registering one entry in each, never touching dispatch logic.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// Parser is the grammar plug-in for one domain keyword. It turns a block
// body into that domain's typed model and performs no cross-entity
// validation.
type Parser interface {
	Keyword() string
	ParseBody(b *codex.Block) (model.Model, error)
}

// Executor is the adapter for one domain keyword. For query models, target
// is the resolved definition model; for definition models it is nil.
type Executor interface {
	Keyword() string
	Execute(ctx context.Context, m model.Model, target model.Model) (*model.Result, error)
}

// Module is the interface a domain package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered domain capabilities for a single engine
// instance.
type Registry struct {
	parsers   map[string]Parser
	executors map[string]Executor
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		parsers:   make(map[string]Parser),
		executors: make(map[string]Executor),
	}
}

// RegisterParser registers a domain grammar plug-in. Registering the same
// keyword twice is a startup configuration error.
func (r *Registry) RegisterParser(p Parser) {
	if _, exists := r.parsers[p.Keyword()]; exists {
		panic(fmt.Sprintf("parser for keyword %q already registered", p.Keyword()))
	}
	slog.Debug("Registering domain parser.", "keyword", p.Keyword())
	r.parsers[p.Keyword()] = p
}

// RegisterExecutor registers a domain executor. Registering the same
// keyword twice is a startup configuration error.
func (r *Registry) RegisterExecutor(e Executor) {
	if _, exists := r.executors[e.Keyword()]; exists {
		panic(fmt.Sprintf("executor for keyword %q already registered", e.Keyword()))
	}
	slog.Debug("Registering domain executor.", "keyword", e.Keyword())
	r.executors[e.Keyword()] = e
}

// Parser looks up the grammar plug-in for keyword.
func (r *Registry) Parser(keyword string) (Parser, bool) {
	p, ok := r.parsers[keyword]
	return p, ok
}

// Executor looks up the executor for keyword.
func (r *Registry) Executor(keyword string) (Executor, bool) {
	e, ok := r.executors[keyword]
	return e, ok
}
