package optimize

import "github.com/suma-ulsa/codexgo/internal/registry"

// Module implements the registry.Module interface for this domain.
type Module struct{}

// Register wires the Optimization grammar and the Audit query into the
// engine registries.
func (Module) Register(r *registry.Registry) {
	r.RegisterParser(ProblemParser{})
	r.RegisterParser(AuditParser{})
	r.RegisterExecutor(AuditExecutor{})
}
