package boolalg

import "github.com/suma-ulsa/codexgo/internal/registry"

// Module implements the registry.Module interface for this domain.
type Module struct{}

// Register wires the Boolean grammar and the Evaluate query into the engine
// registries.
func (Module) Register(r *registry.Registry) {
	r.RegisterParser(ExpressionParser{})
	r.RegisterParser(EvaluateParser{})
	r.RegisterExecutor(EvaluateExecutor{})
}
