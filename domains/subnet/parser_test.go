package subnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suma-ulsa/codexgo/internal/codex"
)

func parseOne(t *testing.T, src string) *codex.Block {
	t.Helper()
	blocks, err := codex.Parse(src)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	return &blocks[0]
}

func TestParseNet(t *testing.T) {
	b := parseOne(t, `Subnet "Office" {
		cidr: "192.168.1.0/24"
		gateway: "192.168.1.1"
		subnets: 4
	}`)

	m, err := NetParser{}.ParseBody(b)
	require.NoError(t, err)

	n := m.(*Net)
	assert.Equal(t, "Office", n.Entity())
	assert.Equal(t, "192.168.1.0/24", n.CIDR)
	assert.Equal(t, "192.168.1.1", n.Gateway)
	assert.Equal(t, 4, n.Subnets)
	assert.Empty(t, n.Hosts)
}

func TestParseNetHostsList(t *testing.T) {
	b := parseOne(t, `Subnet "Campus" {
		cidr: "10.0.0.0/16"
		hosts: [100, 50, 20]
	}`)

	m, err := NetParser{}.ParseBody(b)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 50, 20}, m.(*Net).Hosts)
}

func TestParseNetCIDRNotValidatedAtParseTime(t *testing.T) {
	b := parseOne(t, `Subnet "Odd" { cidr: "999.999.0.0/40" }`)

	m, err := NetParser{}.ParseBody(b)
	require.NoError(t, err)
	assert.Equal(t, "999.999.0.0/40", m.(*Net).CIDR)
}

func TestParseNetMissingCIDR(t *testing.T) {
	b := parseOne(t, `Subnet "Office" { gateway: "192.168.1.1" }`)

	_, err := NetParser{}.ParseBody(b)
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `missing required field "cidr"`)
}

func TestParseNetRejectsZeroSubnets(t *testing.T) {
	b := parseOne(t, `Subnet "Office" {
		cidr: "192.168.1.0/24"
		subnets: 0
	}`)

	_, err := NetParser{}.ParseBody(b)
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "positive integer")
}

func TestParseNetUnknownField(t *testing.T) {
	b := parseOne(t, `Subnet "Office" {
		cidr: "192.168.1.0/24"
		vlan: 10
	}`)

	_, err := NetParser{}.ParseBody(b)
	var parseErr *codex.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, `unknown field "vlan"`)
}

func TestParseInspect(t *testing.T) {
	b := parseOne(t, `Inspect "I1" {
		target: "Office"
		show: [range, netmask as mask, hosts]
	}`)

	m, err := InspectParser{}.ParseBody(b)
	require.NoError(t, err)

	q := m.(*Inspect)
	assert.Equal(t, "Office", q.Target())
	require.Len(t, q.Requests(), 3)
	assert.Equal(t, "mask", q.Requests()[1].Label())
}
