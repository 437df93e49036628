package models

// InterfaceFacts describes one network interface as reported by the host
// fact collector.
type InterfaceFacts struct {
	Device string     `mapstructure:"device" json:"device" yaml:"device"`
	Active bool       `mapstructure:"active" json:"active" yaml:"active"`
	IPv4   *IPv4Facts `mapstructure:"ipv4" json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
}

// IPv4Facts is the primary IPv4 configuration of an interface.
type IPv4Facts struct {
	Address string `mapstructure:"address" json:"address" yaml:"address"`
	Network string `mapstructure:"network" json:"network" yaml:"network"`
	Prefix  string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
}

// CIDR joins network and prefix as "<network>/<prefix>".
func (c IPv4Facts) CIDR() string {
	return c.Network + "/" + c.Prefix
}

// InterfaceGroup names one classification bucket.
type InterfaceGroup string

const (
	GroupPrivate  InterfaceGroup = "private"
	GroupPublic   InterfaceGroup = "public"
	GroupLoopback InterfaceGroup = "loopback"
)

// InterfaceRecord is the summary emitted for one classified interface.
// Network is only set for private interfaces.
type InterfaceRecord struct {
	Name    string `json:"name" yaml:"name"`
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	IP      string `json:"ip" yaml:"ip"`
}

// InterfaceGroups holds the classified interfaces. All three groups are
// always present, in discovery order.
type InterfaceGroups struct {
	Private  []InterfaceRecord `json:"private" yaml:"private"`
	Public   []InterfaceRecord `json:"public" yaml:"public"`
	Loopback []InterfaceRecord `json:"loopback" yaml:"loopback"`
}

// NewInterfaceGroups returns groups with empty, non-nil buckets.
func NewInterfaceGroups() *InterfaceGroups {
	return &InterfaceGroups{
		Private:  []InterfaceRecord{},
		Public:   []InterfaceRecord{},
		Loopback: []InterfaceRecord{},
	}
}

// Add appends rec to the named group. Unknown groups are ignored.
func (g *InterfaceGroups) Add(group InterfaceGroup, rec InterfaceRecord) {
	switch group {
	case GroupPrivate:
		g.Private = append(g.Private, rec)
	case GroupPublic:
		g.Public = append(g.Public, rec)
	case GroupLoopback:
		g.Loopback = append(g.Loopback, rec)
	}
}

// Group returns the records of the named group.
func (g *InterfaceGroups) Group(group InterfaceGroup) []InterfaceRecord {
	switch group {
	case GroupPrivate:
		return g.Private
	case GroupPublic:
		return g.Public
	case GroupLoopback:
		return g.Loopback
	}
	return nil
}

// Len returns the total number of records across all groups.
func (g *InterfaceGroups) Len() int {
	return len(g.Private) + len(g.Public) + len(g.Loopback)
}

// Map returns the plain mapping form consumed by templates:
// group name to a list of string maps.
func (g *InterfaceGroups) Map() map[string]any {
	return map[string]any{
		string(GroupPrivate):  recordMaps(g.Private),
		string(GroupPublic):   recordMaps(g.Public),
		string(GroupLoopback): recordMaps(g.Loopback),
	}
}

func recordMaps(recs []InterfaceRecord) []map[string]string {
	out := make([]map[string]string, 0, len(recs))
	for _, r := range recs {
		m := map[string]string{"name": r.Name, "ip": r.IP}
		if r.Network != "" {
			m["network"] = r.Network
		}
		out = append(out, m)
	}
	return out
}
