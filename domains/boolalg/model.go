// Package boolalg provides the boolean-algebra domain: Boolean definition
// blocks holding a propositional expression, and Evaluate query blocks
// projecting its variables and truth table.
package boolalg

import "github.com/suma-ulsa/codexgo/internal/model"

// Block keywords owned by this domain.
const (
	KeywordBoolean  = "Boolean"
	KeywordEvaluate = "Evaluate"
)

// Expression is the typed model of a Boolean block.
type Expression struct {
	name string
	// Source is the expression text as written.
	Source string
	// Root is the parsed expression tree.
	Root Node
	// Variables in first-appearance order.
	Variables []string
}

func (e *Expression) Entity() string { return e.name }

func (e *Expression) Keyword() string { return KeywordBoolean }

func (e *Expression) Role() model.Role { return model.RoleDefinition }

// Evaluate is the typed model of an Evaluate block.
type Evaluate struct {
	name     string
	target   string
	requests []model.Request
}

func (q *Evaluate) Entity() string { return q.name }

func (q *Evaluate) Keyword() string { return KeywordEvaluate }

func (q *Evaluate) Role() model.Role { return model.RoleQuery }

func (q *Evaluate) Target() string { return q.target }

func (q *Evaluate) Requests() []model.Request { return q.requests }
