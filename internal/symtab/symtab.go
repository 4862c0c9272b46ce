// Package symtab implements the script-scoped symbol table: an append-only,
// insertion-ordered mapping from entity name to its definition model. One
// table is owned by exactly one evaluation; there is no removal operation.
package symtab

import (
	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// Table maps entity names to definition models. Name comparison is
// exact-string and case-sensitive.
type Table struct {
	entries map[string]model.Model
	order   []string
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]model.Model)}
}

// Insert stores a definition under its entity name. A second definition of
// the same name fails with *codex.DuplicateEntityError, regardless of
// domain.
func (t *Table) Insert(m model.Model) error {
	name := m.Entity()
	if _, exists := t.entries[name]; exists {
		return &codex.DuplicateEntityError{Entity: name, Keyword: m.Keyword()}
	}
	t.entries[name] = m
	t.order = append(t.order, name)
	return nil
}

// Resolve returns the definition stored under name, or a
// *codex.UnresolvedTargetError attributed to the querying model q.
func (t *Table) Resolve(name string, q model.QueryModel) (model.Model, error) {
	m, ok := t.entries[name]
	if !ok {
		return nil, &codex.UnresolvedTargetError{
			Entity:  q.Entity(),
			Target:  name,
			Keyword: q.Keyword(),
		}
	}
	return m, nil
}

// Len reports the number of stored definitions.
func (t *Table) Len() int { return len(t.entries) }

// Names returns the entity names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
