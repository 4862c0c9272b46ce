package linalg

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when elimination cannot find a usable pivot.
var ErrSingular = errors.New("matrix is singular")

const pivotEps = 1e-12

// Matrix is a dense row-major matrix of float64.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix builds a Rows×Cols matrix over data (not copied).
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid matrix shape %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	return &Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

func (m *Matrix) set(i, j int, v float64) { m.Data[i*m.Cols+j] = v }

// clone returns a deep copy of m.
func (m *Matrix) clone() *Matrix {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// Column returns column j as a slice.
func (m *Matrix) Column(j int) []float64 {
	out := make([]float64, m.Rows)
	for i := 0; i < m.Rows; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

// Determinant computes det(m) by gaussian elimination with partial
// pivoting. The matrix must be square.
func (m *Matrix) Determinant() (float64, error) {
	if m.Rows != m.Cols {
		return 0, fmt.Errorf("determinant requires a square matrix, have %dx%d", m.Rows, m.Cols)
	}
	a := m.clone()
	n := a.Rows
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a.At(r, col)) > math.Abs(a.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(a.At(pivot, col)) < pivotEps {
			return 0, nil
		}
		if pivot != col {
			a.swapRows(pivot, col)
			det = -det
		}
		det *= a.At(col, col)
		for r := col + 1; r < n; r++ {
			f := a.At(r, col) / a.At(col, col)
			for c := col; c < n; c++ {
				a.set(r, c, a.At(r, c)-f*a.At(col, c))
			}
		}
	}
	return det, nil
}

// Solve solves m·x = b for a square m and a vector b of matching length.
func (m *Matrix) Solve(b []float64) ([]float64, error) {
	if m.Rows != m.Cols {
		return nil, fmt.Errorf("solve requires a square coefficient matrix, have %dx%d", m.Rows, m.Cols)
	}
	if len(b) != m.Rows {
		return nil, fmt.Errorf("constants length %d does not match system size %d", len(b), m.Rows)
	}
	n := m.Rows
	a := m.clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a.At(r, col)) > math.Abs(a.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(a.At(pivot, col)) < pivotEps {
			return nil, ErrSingular
		}
		if pivot != col {
			a.swapRows(pivot, col)
			rhs[pivot], rhs[col] = rhs[col], rhs[pivot]
		}
		for r := col + 1; r < n; r++ {
			f := a.At(r, col) / a.At(col, col)
			for c := col; c < n; c++ {
				a.set(r, c, a.At(r, c)-f*a.At(col, c))
			}
			rhs[r] -= f * rhs[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= a.At(i, j) * x[j]
		}
		x[i] = sum / a.At(i, i)
	}
	return x, nil
}

// Inverse computes the inverse by Gauss–Jordan elimination on [m | I].
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.Rows != m.Cols {
		return nil, fmt.Errorf("inverse requires a square matrix, have %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	a := m.clone()
	inv := identity(n)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a.At(r, col)) > math.Abs(a.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(a.At(pivot, col)) < pivotEps {
			return nil, ErrSingular
		}
		if pivot != col {
			a.swapRows(pivot, col)
			inv.swapRows(pivot, col)
		}
		p := a.At(col, col)
		for c := 0; c < n; c++ {
			a.set(col, c, a.At(col, c)/p)
			inv.set(col, c, inv.At(col, c)/p)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.At(r, col)
			if f == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				a.set(r, c, a.At(r, c)-f*a.At(col, c))
				inv.set(r, c, inv.At(r, c)-f*inv.At(col, c))
			}
		}
	}
	return inv, nil
}

func (m *Matrix) swapRows(i, j int) {
	for c := 0; c < m.Cols; c++ {
		m.Data[i*m.Cols+c], m.Data[j*m.Cols+c] = m.Data[j*m.Cols+c], m.Data[i*m.Cols+c]
	}
}

func identity(n int) *Matrix {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return &Matrix{Rows: n, Cols: n, Data: data}
}
