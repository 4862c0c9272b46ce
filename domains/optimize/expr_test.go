package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearizeSum(t *testing.T) {
	// 5x + 3y
	e := Binary{Op: "+",
		L: Binary{Op: "*", L: Num{V: 5}, R: Var{Name: "x"}},
		R: Binary{Op: "*", L: Num{V: 3}, R: Var{Name: "y"}},
	}

	l, err := linearize(e)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, l.order)
	assert.Equal(t, 5.0, l.coeffs["x"])
	assert.Equal(t, 3.0, l.coeffs["y"])
	assert.Equal(t, 0.0, l.konst)
}

func TestLinearizeDivisionByConstant(t *testing.T) {
	// 5x/3
	e := Binary{Op: "/",
		L: Binary{Op: "*", L: Num{V: 5}, R: Var{Name: "x"}},
		R: Num{V: 3},
	}

	l, err := linearize(e)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, l.coeffs["x"], 1e-12)
}

func TestLinearizeConstantFolding(t *testing.T) {
	// (2 + 3) * x - 4
	e := Binary{Op: "-",
		L: Binary{Op: "*", L: Binary{Op: "+", L: Num{V: 2}, R: Num{V: 3}}, R: Var{Name: "x"}},
		R: Num{V: 4},
	}

	l, err := linearize(e)
	require.NoError(t, err)
	assert.Equal(t, 5.0, l.coeffs["x"])
	assert.Equal(t, -4.0, l.konst)
}

func TestLinearizeNegation(t *testing.T) {
	// -(x - 2y)
	e := Neg{X: Binary{Op: "-",
		L: Var{Name: "x"},
		R: Binary{Op: "*", L: Num{V: 2}, R: Var{Name: "y"}},
	}}

	l, err := linearize(e)
	require.NoError(t, err)
	assert.Equal(t, -1.0, l.coeffs["x"])
	assert.Equal(t, 2.0, l.coeffs["y"])
}

func TestLinearizeMergesRepeatedVariables(t *testing.T) {
	// x + x + 2x
	e := Binary{Op: "+",
		L: Binary{Op: "+", L: Var{Name: "x"}, R: Var{Name: "x"}},
		R: Binary{Op: "*", L: Num{V: 2}, R: Var{Name: "x"}},
	}

	l, err := linearize(e)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, l.order)
	assert.Equal(t, 4.0, l.coeffs["x"])
}

func TestLinearizeRejectsVariableProduct(t *testing.T) {
	e := Binary{Op: "*", L: Var{Name: "x"}, R: Var{Name: "y"}}
	_, err := linearize(e)
	assert.ErrorContains(t, err, "product of two variable expressions")
}

func TestLinearizeRejectsVariableDivisor(t *testing.T) {
	e := Binary{Op: "/", L: Num{V: 1}, R: Var{Name: "x"}}
	_, err := linearize(e)
	assert.ErrorContains(t, err, "division by a variable expression")
}

func TestLinearizeRejectsDivisionByZero(t *testing.T) {
	e := Binary{Op: "/", L: Var{Name: "x"}, R: Num{V: 0}}
	_, err := linearize(e)
	assert.ErrorContains(t, err, "division by zero")
}

func TestExprString(t *testing.T) {
	e := Binary{Op: "+",
		L: Binary{Op: "*", L: Num{V: 5}, R: Var{Name: "x"}},
		R: Neg{X: Var{Name: "y"}},
	}
	assert.Equal(t, "((5 * x) + -y)", e.String())
}
