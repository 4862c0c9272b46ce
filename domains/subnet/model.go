// Package subnet provides the networking domain: Subnet definition blocks
// holding a CIDR prefix plus optional gateway and split parameters, and
// Inspect query blocks projecting ranges, masks and FLSM/VLSM tables over a
// subnet.
package subnet

import "github.com/suma-ulsa/codexgo/internal/model"

// Block keywords owned by this domain.
const (
	KeywordSubnet  = "Subnet"
	KeywordInspect = "Inspect"
)

// Net is the typed model of a Subnet block. CIDR is kept as written; it is
// validated when a query executes (invalid values are a collaborator
// failure, not a grammar one).
type Net struct {
	name    string
	CIDR    string
	Gateway string
	// Subnets requests an FLSM split into that many equal subnets.
	Subnets int
	// Hosts requests a VLSM split sized for each host count.
	Hosts []int
}

func (n *Net) Entity() string { return n.name }

func (n *Net) Keyword() string { return KeywordSubnet }

func (n *Net) Role() model.Role { return model.RoleDefinition }

// Inspect is the typed model of an Inspect block.
type Inspect struct {
	name     string
	target   string
	requests []model.Request
}

func (q *Inspect) Entity() string { return q.name }

func (q *Inspect) Keyword() string { return KeywordInspect }

func (q *Inspect) Role() model.Role { return model.RoleQuery }

func (q *Inspect) Target() string { return q.target }

func (q *Inspect) Requests() []model.Request { return q.requests }
