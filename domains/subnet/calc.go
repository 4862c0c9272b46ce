package subnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"sort"
	"strconv"
)

// prefixInfo is the computed view of one IPv4 prefix.
type prefixInfo struct {
	network   uint32
	bits      int
	broadcast uint32
}

// parsePrefix validates and masks an IPv4 CIDR string.
func parsePrefix(cidr string) (prefixInfo, error) {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return prefixInfo{}, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
	}
	if !p.Addr().Is4() {
		return prefixInfo{}, fmt.Errorf("only IPv4 prefixes are supported, have %q", cidr)
	}
	network := addrToU32(p.Masked().Addr())
	size := uint32(1) << (32 - p.Bits())
	return prefixInfo{
		network:   network,
		bits:      p.Bits(),
		broadcast: network + size - 1,
	}, nil
}

func addrToU32(a netip.Addr) uint32 {
	b := a.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func u32ToString(v uint32) string {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}).String()
}

func (p prefixInfo) netmask() uint32 {
	if p.bits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - p.bits)
}

// usableHosts is the addressable host count: 2^(32-bits)-2, with the /31
// and /32 degenerate cases pinned to zero.
func (p prefixInfo) usableHosts() uint32 {
	if p.bits >= 31 {
		return 0
	}
	return (uint32(1) << (32 - p.bits)) - 2
}

func (p prefixInfo) firstHost() uint32 {
	if p.bits >= 31 {
		return p.network
	}
	return p.network + 1
}

func (p prefixInfo) lastHost() uint32 {
	if p.bits >= 31 {
		return p.broadcast
	}
	return p.broadcast - 1
}

// Row is one line of an FLSM or VLSM subnetting table.
type Row struct {
	Index       int
	Network     string
	FirstHost   string
	LastHost    string
	Broadcast   string
	HostsPerNet uint32
}

// flsmRows splits p into count equal subnets, rounding the subnet count up
// to the next power of two.
func flsmRows(p prefixInfo, count int) ([]Row, error) {
	if count < 1 {
		return nil, fmt.Errorf("subnet count must be positive, have %d", count)
	}
	newBits := 0
	for (1 << newBits) < count {
		newBits++
	}
	if p.bits+newBits > 30 {
		return nil, fmt.Errorf("cannot split /%d into %d subnets with usable hosts", p.bits, count)
	}

	sub := prefixInfo{bits: p.bits + newBits}
	size := uint32(1) << (32 - sub.bits)
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		sub.network = p.network + uint32(i)*size
		sub.broadcast = sub.network + size - 1
		rows = append(rows, rowOf(i+1, sub))
	}
	return rows, nil
}

// vlsmRows allocates one subnet per requested host count, largest first,
// each sized to the smallest prefix that fits.
func vlsmRows(p prefixInfo, hosts []int) ([]Row, error) {
	sorted := make([]int, len(hosts))
	copy(sorted, hosts)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	next := p.network
	rows := make([]Row, 0, len(sorted))
	for i, h := range sorted {
		b, err := bitsForHosts(h)
		if err != nil {
			return nil, err
		}
		if b < p.bits {
			return nil, fmt.Errorf("host count %d does not fit in /%d", h, p.bits)
		}
		size := uint32(1) << (32 - b)
		sub := prefixInfo{network: next, bits: b, broadcast: next + size - 1}
		if sub.broadcast > p.broadcast {
			return nil, fmt.Errorf("address space of /%d exhausted at subnet %d", p.bits, i+1)
		}
		rows = append(rows, rowOf(i+1, sub))
		next += size
	}
	return rows, nil
}

// bitsForHosts returns the longest prefix whose usable host count covers h.
func bitsForHosts(h int) (int, error) {
	if h < 1 {
		return 0, fmt.Errorf("host count must be positive, have %d", h)
	}
	if h > int(^uint32(0))-2 {
		return 0, fmt.Errorf("host count %d exceeds IPv4 address space", h)
	}
	// Need 2^(32-b) >= h+2.
	need := uint32(h) + 2
	return 32 - bits.Len32(need-1), nil
}

func rowOf(idx int, p prefixInfo) Row {
	return Row{
		Index:       idx,
		Network:     u32ToString(p.network) + "/" + strconv.Itoa(p.bits),
		FirstHost:   u32ToString(p.firstHost()),
		LastHost:    u32ToString(p.lastHost()),
		Broadcast:   u32ToString(p.broadcast),
		HostsPerNet: p.usableHosts(),
	}
}
