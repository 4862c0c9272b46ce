// Package optimize provides the linear-optimization domain: Optimization
// definition blocks holding an objective and constraints, and Audit query
// blocks projecting solutions, objective values and shadow prices over a
// problem.
package optimize

import "github.com/suma-ulsa/codexgo/internal/model"

// Block keywords owned by this domain.
const (
	KeywordOptimization = "Optimization"
	KeywordAudit        = "Audit"
)

// Direction is the optimization sense.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}
	return "maximize"
}

// Relation is a constraint comparator.
type Relation string

const (
	LessEq    Relation = "<="
	GreaterEq Relation = ">="
	Equal     Relation = "="
)

// Constraint is one symbolic constraint row: Left Rel Right.
type Constraint struct {
	Left  Expr
	Rel   Relation
	Right Expr
}

// Problem is the typed model of an Optimization block. Expressions stay
// symbolic here; lowering to coefficient form happens in the executor.
type Problem struct {
	name        string
	Direction   Direction
	Objective   Expr
	Constraints []Constraint
}

func (p *Problem) Entity() string { return p.name }

func (p *Problem) Keyword() string { return KeywordOptimization }

func (p *Problem) Role() model.Role { return model.RoleDefinition }

// Audit is the typed model of an Audit block.
type Audit struct {
	name     string
	target   string
	requests []model.Request
}

func (a *Audit) Entity() string { return a.name }

func (a *Audit) Keyword() string { return KeywordAudit }

func (a *Audit) Role() model.Role { return model.RoleQuery }

func (a *Audit) Target() string { return a.target }

func (a *Audit) Requests() []model.Request { return a.requests }
