package app

import (
	"github.com/suma-ulsa/codexgo/domains/boolalg"
	"github.com/suma-ulsa/codexgo/domains/linalg"
	"github.com/suma-ulsa/codexgo/domains/optimize"
	"github.com/suma-ulsa/codexgo/domains/subnet"
	"github.com/suma-ulsa/codexgo/internal/registry"
)

// Modules returns the closed list of built-in domain modules. Adding a
// domain means adding one entry here; dispatch logic never changes.
func Modules() []registry.Module {
	return []registry.Module{
		linalg.Module{},
		subnet.Module{},
		optimize.Module{},
		boolalg.Module{},
	}
}
