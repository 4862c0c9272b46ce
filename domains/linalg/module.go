package linalg

import "github.com/suma-ulsa/codexgo/internal/registry"

// Module implements the registry.Module interface for this domain.
type Module struct{}

// Register wires the LinearSystem grammar and the Analysis query into the
// engine registries.
func (Module) Register(r *registry.Registry) {
	r.RegisterParser(SystemParser{})
	r.RegisterParser(AnalysisParser{})
	r.RegisterExecutor(AnalysisExecutor{})
}
