// Package model defines the contracts shared by every domain: the typed
// model a domain parser produces, the definition/query role split, and the
// structured result an executor returns.
package model

// Role classifies a domain model by how the dispatcher handles it.
type Role int

const (
	// RoleDefinition models are self-contained and are inserted into the
	// symbol table under their entity name.
	RoleDefinition Role = iota
	// RoleQuery models reference a previously defined entity and request
	// computations over it.
	RoleQuery
)

func (r Role) String() string {
	if r == RoleQuery {
		return "query"
	}
	return "definition"
}

// Model is the typed payload a domain parser produces from a block body.
// One concrete struct exists per registered domain; the set is closed at
// process start by the module list in internal/app.
type Model interface {
	// Entity returns the block's quoted name.
	Entity() string
	// Keyword returns the domain keyword that produced this model.
	Keyword() string
	// Role reports whether the model defines an entity or queries one.
	Role() Role
}

// Request is one computation a query asks for, with an optional alias
// ("determinant as det").
type Request struct {
	Name  string
	Alias string
}

// Label returns the alias when present, otherwise the computation name.
func (r Request) Label() string {
	if r.Alias != "" {
		return r.Alias
	}
	return r.Name
}

// QueryModel is implemented by every RoleQuery model.
type QueryModel interface {
	Model
	// Target names the definition entity this query projects over.
	Target() string
	// Requests lists the computations in the order the user wrote them.
	Requests() []Request
}
