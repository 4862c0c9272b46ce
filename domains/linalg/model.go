// Package linalg provides the linear-algebra domain: LinearSystem
// definition blocks holding a coefficient matrix and constants vector, and
// Analysis query blocks projecting determinant, solution and inverse over a
// system.
package linalg

import "github.com/suma-ulsa/codexgo/internal/model"

// Block keywords owned by this domain.
const (
	KeywordSystem   = "LinearSystem"
	KeywordAnalysis = "Analysis"
)

// System is the typed model of a LinearSystem block: A·x = b.
type System struct {
	name         string
	Coefficients *Matrix
	Constants    []float64
}

func (s *System) Entity() string { return s.name }

func (s *System) Keyword() string { return KeywordSystem }

func (s *System) Role() model.Role { return model.RoleDefinition }

// Analysis is the typed model of an Analysis block.
type Analysis struct {
	name     string
	target   string
	requests []model.Request
}

func (a *Analysis) Entity() string { return a.name }

func (a *Analysis) Keyword() string { return KeywordAnalysis }

func (a *Analysis) Role() model.Role { return model.RoleQuery }

func (a *Analysis) Target() string { return a.target }

func (a *Analysis) Requests() []model.Request { return a.requests }
