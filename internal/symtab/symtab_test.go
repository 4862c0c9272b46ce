package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suma-ulsa/codexgo/internal/codex"
	"github.com/suma-ulsa/codexgo/internal/model"
)

type stubDef struct {
	name    string
	keyword string
}

func (d stubDef) Entity() string   { return d.name }
func (d stubDef) Keyword() string  { return d.keyword }
func (d stubDef) Role() model.Role { return model.RoleDefinition }

type stubQuery struct {
	name    string
	keyword string
	target  string
}

func (q stubQuery) Entity() string  { return q.name }
func (q stubQuery) Keyword() string { return q.keyword }

func (q stubQuery) Role() model.Role { return model.RoleQuery }

func (q stubQuery) Target() string { return q.target }

func (q stubQuery) Requests() []model.Request { return nil }

func TestInsertAndResolve(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Insert(stubDef{name: "S1", keyword: "LinearSystem"}))

	q := stubQuery{name: "A1", keyword: "Analysis", target: "S1"}
	m, err := tab.Resolve("S1", q)
	require.NoError(t, err)
	assert.Equal(t, "S1", m.Entity())
}

func TestDuplicateNamesAreRejectedAcrossDomains(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Insert(stubDef{name: "Shared", keyword: "LinearSystem"}))

	err := tab.Insert(stubDef{name: "Shared", keyword: "Subnet"})
	var dupErr *codex.DuplicateEntityError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Shared", dupErr.Entity)
	assert.Equal(t, "Subnet", dupErr.Keyword)

	// The first definition stays in place.
	assert.Equal(t, 1, tab.Len())
	m, err := tab.Resolve("Shared", stubQuery{name: "Q", keyword: "Inspect", target: "Shared"})
	require.NoError(t, err)
	assert.Equal(t, "LinearSystem", m.Keyword())
}

func TestResolveUnknownTarget(t *testing.T) {
	tab := New()
	q := stubQuery{name: "A1", keyword: "Analysis", target: "Nowhere"}

	_, err := tab.Resolve("Nowhere", q)
	var unresolved *codex.UnresolvedTargetError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "A1", unresolved.Entity)
	assert.Equal(t, "Nowhere", unresolved.Target)
	assert.Equal(t, "Analysis", unresolved.Keyword)
}

func TestNamesPreserveInsertionOrder(t *testing.T) {
	tab := New()
	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, tab.Insert(stubDef{name: name, keyword: "Subnet"}))
	}
	assert.Equal(t, []string{"C", "A", "B"}, tab.Names())
}

func TestResolutionIsCaseSensitive(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Insert(stubDef{name: "Net", keyword: "Subnet"}))

	_, err := tab.Resolve("net", stubQuery{name: "I1", keyword: "Inspect", target: "net"})
	var unresolved *codex.UnresolvedTargetError
	require.ErrorAs(t, err, &unresolved)
}
