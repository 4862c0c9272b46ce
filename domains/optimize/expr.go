package optimize

import "fmt"

// Expr is a symbolic arithmetic expression over numbers and variables.
type Expr interface {
	String() string
}

// Num is a numeric literal.
type Num struct {
	V float64
}

func (n Num) String() string { return fmt.Sprintf("%g", n.V) }

// Var is a named variable.
type Var struct {
	Name string
}

func (v Var) String() string { return v.Name }

// Neg is unary negation.
type Neg struct {
	X Expr
}

func (n Neg) String() string { return "-" + n.X.String() }

// Binary is a binary operation; Op is one of "+", "-", "*", "/".
type Binary struct {
	Op   string
	L, R Expr
}

func (b Binary) String() string {
	return "(" + b.L.String() + " " + b.Op + " " + b.R.String() + ")"
}

// linear is an expression lowered to coefficient form: a constant plus a
// coefficient per variable.
type linear struct {
	coeffs map[string]float64
	konst  float64
	// order records first appearance so output is deterministic.
	order []string
}

func newLinear() *linear {
	return &linear{coeffs: make(map[string]float64)}
}

func (l *linear) add(name string, c float64) {
	if _, seen := l.coeffs[name]; !seen {
		l.order = append(l.order, name)
	}
	l.coeffs[name] += c
}

func (l *linear) merge(o *linear, scale float64) {
	l.konst += o.konst * scale
	for _, name := range o.order {
		l.add(name, o.coeffs[name]*scale)
	}
}

func (l *linear) isConstant() bool { return len(l.coeffs) == 0 }

// linearize flattens an expression tree to coefficient form. Products of
// two variable-bearing terms and division by a variable-bearing term are
// rejected; the solver is strictly linear.
func linearize(e Expr) (*linear, error) {
	switch v := e.(type) {
	case Num:
		out := newLinear()
		out.konst = v.V
		return out, nil
	case Var:
		out := newLinear()
		out.add(v.Name, 1)
		return out, nil
	case Neg:
		inner, err := linearize(v.X)
		if err != nil {
			return nil, err
		}
		out := newLinear()
		out.merge(inner, -1)
		return out, nil
	case Binary:
		return linearizeBinary(v)
	}
	return nil, fmt.Errorf("unknown expression node %T", e)
}

func linearizeBinary(b Binary) (*linear, error) {
	l, err := linearize(b.L)
	if err != nil {
		return nil, err
	}
	r, err := linearize(b.R)
	if err != nil {
		return nil, err
	}

	out := newLinear()
	switch b.Op {
	case "+":
		out.merge(l, 1)
		out.merge(r, 1)
	case "-":
		out.merge(l, 1)
		out.merge(r, -1)
	case "*":
		switch {
		case l.isConstant():
			out.merge(r, l.konst)
		case r.isConstant():
			out.merge(l, r.konst)
		default:
			return nil, fmt.Errorf("non-linear term %s: product of two variable expressions", b.String())
		}
	case "/":
		if !r.isConstant() {
			return nil, fmt.Errorf("non-linear term %s: division by a variable expression", b.String())
		}
		if r.konst == 0 {
			return nil, fmt.Errorf("division by zero in %s", b.String())
		}
		out.merge(l, 1/r.konst)
	default:
		return nil, fmt.Errorf("unknown operator %q", b.Op)
	}
	return out, nil
}
