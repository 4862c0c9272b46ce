package subnet

import "github.com/suma-ulsa/codexgo/internal/registry"

// Module implements the registry.Module interface for this domain.
type Module struct{}

// Register wires the Subnet grammar and the Inspect query into the engine
// registries.
func (Module) Register(r *registry.Registry) {
	r.RegisterParser(NetParser{})
	r.RegisterParser(InspectParser{})
	r.RegisterExecutor(InspectExecutor{})
}
