package model

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindText
	KindVector
	KindTable
	KindError
)

// Value is one named computation inside a result. Values keep the order the
// user requested them in. A value whose computation is not supported by the
// domain carries Err instead of a payload; its siblings are unaffected.
type Value struct {
	Name   string
	Alias  string
	Kind   ValueKind
	Scalar float64
	Text   string
	Vector []float64
	Table  *Table
	Err    error
}

// Label returns the alias when present, otherwise the computation name.
func (v Value) Label() string {
	if v.Alias != "" {
		return v.Alias
	}
	return v.Name
}

// Table is a rectangular payload: truth tables, subnet rows, shadow prices.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Result is the structured output of executing one block.
type Result struct {
	Entity  string
	Keyword string
	// Stored marks the no-op result of a definition block that required no
	// independent execution.
	Stored bool
	Values []Value
}

// Scalar builds a scalar value.
func Scalar(req Request, v float64) Value {
	return Value{Name: req.Name, Alias: req.Alias, Kind: KindScalar, Scalar: v}
}

// Text builds a text value.
func Text(req Request, s string) Value {
	return Value{Name: req.Name, Alias: req.Alias, Kind: KindText, Text: s}
}

// Vector builds a vector value.
func Vector(req Request, v []float64) Value {
	return Value{Name: req.Name, Alias: req.Alias, Kind: KindVector, Vector: v}
}

// Tabular builds a table value.
func Tabular(req Request, t *Table) Value {
	return Value{Name: req.Name, Alias: req.Alias, Kind: KindTable, Table: t}
}

// Unsupported builds a value recording a block-local computation error.
func Unsupported(req Request, err error) Value {
	return Value{Name: req.Name, Alias: req.Alias, Kind: KindError, Err: err}
}
