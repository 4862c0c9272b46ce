package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminant2x2(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	require.NoError(t, err)

	det, err := m.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, det, 1e-9)
}

func TestDeterminantSingularIsZero(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)

	det, err := m.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 0.0, det)
}

func TestDeterminantWithPivoting(t *testing.T) {
	// Leading zero forces a row swap.
	m, err := NewMatrix(3, 3, []float64{
		0, 2, 1,
		1, 0, 3,
		2, 1, 0,
	})
	require.NoError(t, err)

	det, err := m.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, 13.0, det, 1e-9)
}

func TestDeterminantRequiresSquare(t *testing.T) {
	m, err := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = m.Determinant()
	assert.ErrorContains(t, err, "square")
}

func TestSolve2x2(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	require.NoError(t, err)

	x, err := m.Solve([]float64{10, 20})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, -8.0, x[0], 1e-9)
	assert.InDelta(t, 6.0, x[1], 1e-9)
}

func TestSolveSingular(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)

	_, err = m.Solve([]float64{1, 2})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveDimensionMismatch(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	require.NoError(t, err)

	_, err = m.Solve([]float64{1, 2, 3})
	assert.ErrorContains(t, err, "does not match system size")
}

func TestInverse(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)

	// det = 10, so inverse = [0.6 -0.7; -0.2 0.4].
	assert.InDelta(t, 0.6, inv.At(0, 0), 1e-9)
	assert.InDelta(t, -0.7, inv.At(0, 1), 1e-9)
	assert.InDelta(t, -0.2, inv.At(1, 0), 1e-9)
	assert.InDelta(t, 0.4, inv.At(1, 1), 1e-9)
}

func TestInverseSingular(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)

	_, err = m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestNewMatrixValidatesShape(t *testing.T) {
	_, err := NewMatrix(2, 2, []float64{1, 2, 3})
	assert.ErrorContains(t, err, "does not match shape")

	_, err = NewMatrix(0, 2, nil)
	assert.ErrorContains(t, err, "invalid matrix shape")
}
