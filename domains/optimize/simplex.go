package optimize

import (
	"errors"
	"fmt"
	"math"
)

// Collaborator failures surfaced to the executor.
var (
	ErrUnbounded  = errors.New("objective is unbounded")
	ErrInfeasible = errors.New("constraints are infeasible")
)

const (
	simplexEps  = 1e-9
	bigM        = 1e7
	maxPivots   = 10000
	feasibleTol = 1e-6
)

// solution is the solved view of a Problem.
type solution struct {
	vars      []string
	values    map[string]float64
	objective float64
	// shadow holds one dual value per declared constraint, in declaration
	// order.
	shadow []float64
}

// coeffRow is one constraint lowered to coefficient form with a
// non-negative right-hand side.
type coeffRow struct {
	coeffs  map[string]float64
	rel     Relation
	rhs     float64
	flipped bool
}

// lower flattens the problem's symbolic expressions into an objective
// vector and coefficient rows. All variables are implicitly non-negative,
// matching the textbook standard form (omitting "y >= 0" is fine).
func lower(p *Problem) ([]string, map[string]float64, []coeffRow, error) {
	obj, err := linearize(p.Objective)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("objective: %w", err)
	}
	if len(obj.order) == 0 {
		return nil, nil, nil, errors.New("objective references no variables")
	}

	vars := append([]string(nil), obj.order...)
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v] = true
	}

	rows := make([]coeffRow, 0, len(p.Constraints))
	for i, c := range p.Constraints {
		l, err := linearize(c.Left)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("constraint %d: %w", i+1, err)
		}
		r, err := linearize(c.Right)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("constraint %d: %w", i+1, err)
		}

		// Move variables left, constants right: (l - r) rel (r.konst - l.konst).
		row := coeffRow{coeffs: make(map[string]float64), rel: c.Rel}
		merged := newLinear()
		merged.merge(l, 1)
		merged.merge(r, -1)
		for _, name := range merged.order {
			if v := merged.coeffs[name]; v != 0 {
				row.coeffs[name] = v
				if !seen[name] {
					seen[name] = true
					vars = append(vars, name)
				}
			}
		}
		row.rhs = -merged.konst

		// Normalize to a non-negative right-hand side.
		if row.rhs < 0 {
			for k := range row.coeffs {
				row.coeffs[k] = -row.coeffs[k]
			}
			row.rhs = -row.rhs
			switch row.rel {
			case LessEq:
				row.rel = GreaterEq
			case GreaterEq:
				row.rel = LessEq
			}
			row.flipped = true
		}
		rows = append(rows, row)
	}
	return vars, obj.coeffs, rows, nil
}

// solve runs a Big-M tableau simplex over the lowered problem.
func solve(p *Problem) (*solution, error) {
	vars, objCoeffs, rows, err := lower(p)
	if err != nil {
		return nil, err
	}

	// Minimization is solved as maximization of the negated objective.
	sign := 1.0
	if p.Direction == Minimize {
		sign = -1.0
	}

	n := len(vars)
	m := len(rows)

	// Column layout: structural | slack/surplus | artificial | rhs.
	slackCol := make([]int, m)
	artCol := make([]int, m)
	cols := n
	for i, r := range rows {
		slackCol[i], artCol[i] = -1, -1
		switch r.rel {
		case LessEq:
			slackCol[i] = cols
			cols++
		case GreaterEq:
			slackCol[i] = cols
			cols++
			artCol[i] = cols
			cols++
		case Equal:
			artCol[i] = cols
			cols++
		}
	}
	rhsCol := cols

	tab := make([][]float64, m)
	basis := make([]int, m)
	for i, r := range rows {
		tab[i] = make([]float64, cols+1)
		for j, name := range vars {
			tab[i][j] = r.coeffs[name]
		}
		switch r.rel {
		case LessEq:
			tab[i][slackCol[i]] = 1
			basis[i] = slackCol[i]
		case GreaterEq:
			tab[i][slackCol[i]] = -1
			tab[i][artCol[i]] = 1
			basis[i] = artCol[i]
		case Equal:
			tab[i][artCol[i]] = 1
			basis[i] = artCol[i]
		}
		tab[i][rhsCol] = r.rhs
	}

	// Objective row holds z_j - c_j; artificial columns carry the Big-M
	// penalty and are then eliminated to restore canonical form.
	obj := make([]float64, cols+1)
	for j, name := range vars {
		obj[j] = -sign * objCoeffs[name]
	}
	for i := range rows {
		if artCol[i] >= 0 {
			obj[artCol[i]] = bigM
		}
	}
	for i := range rows {
		if basis[i] == artCol[i] && artCol[i] >= 0 {
			for j := 0; j <= cols; j++ {
				obj[j] -= bigM * tab[i][j]
			}
		}
	}

	for pivots := 0; ; pivots++ {
		if pivots > maxPivots {
			return nil, errors.New("simplex did not converge")
		}

		// Dantzig rule: most negative reduced cost enters.
		enter := -1
		best := -simplexEps
		for j := 0; j < cols; j++ {
			if obj[j] < best {
				best = obj[j]
				enter = j
			}
		}
		if enter < 0 {
			break
		}

		// Minimum ratio leaves.
		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			if tab[i][enter] > simplexEps {
				ratio := tab[i][rhsCol] / tab[i][enter]
				if ratio < bestRatio-simplexEps {
					bestRatio = ratio
					leave = i
				}
			}
		}
		if leave < 0 {
			return nil, ErrUnbounded
		}

		pivot(tab, obj, basis, leave, enter, rhsCol)
	}

	// An artificial variable stuck in the basis at a positive level means
	// no feasible point exists.
	for i := 0; i < m; i++ {
		if artCol[i] >= 0 && basis[i] == artCol[i] && tab[i][rhsCol] > feasibleTol {
			return nil, ErrInfeasible
		}
	}

	sol := &solution{
		vars:      vars,
		values:    make(map[string]float64, n),
		objective: sign * obj[rhsCol],
		shadow:    make([]float64, m),
	}
	for _, name := range vars {
		sol.values[name] = 0
	}
	for i := 0; i < m; i++ {
		if basis[i] < n {
			sol.values[vars[basis[i]]] = tab[i][rhsCol]
		}
	}

	// Duals are read from the final objective row: the slack column of a
	// <= row carries y_i directly, a surplus column carries -y_i, and an
	// artificial column carries y_i + M.
	for i, r := range rows {
		var y float64
		switch r.rel {
		case LessEq:
			y = obj[slackCol[i]]
		case GreaterEq:
			y = -obj[slackCol[i]]
		case Equal:
			y = obj[artCol[i]] - bigM
		}
		if r.flipped {
			y = -y
		}
		y *= sign
		if math.Abs(y) < feasibleTol {
			y = 0
		}
		sol.shadow[i] = y
	}
	return sol, nil
}

func pivot(tab [][]float64, obj []float64, basis []int, row, col, rhsCol int) {
	p := tab[row][col]
	for j := 0; j <= rhsCol; j++ {
		tab[row][j] /= p
	}
	for i := range tab {
		if i == row {
			continue
		}
		if f := tab[i][col]; f != 0 {
			for j := 0; j <= rhsCol; j++ {
				tab[i][j] -= f * tab[row][j]
			}
		}
	}
	if f := obj[col]; f != 0 {
		for j := 0; j <= rhsCol; j++ {
			obj[j] -= f * tab[row][j]
		}
	}
	basis[row] = col
}
