// Package ipspace answers scope questions about IPv4 addresses (loopback,
// private-use, globally reachable) from a registry of special-purpose
// address blocks. The default registry is embedded; alternates can be
// loaded from YAML.
package ipspace

import (
	_ "embed"
	"fmt"
	"io"
	"net/netip"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryRawData []byte

// Kind categorizes a special-purpose block.
type Kind string

const (
	KindLoopback      Kind = "loopback"
	KindPrivateUse    Kind = "private-use"
	KindLinkLocal     Kind = "link-local"
	KindShared        Kind = "shared"
	KindDocumentation Kind = "documentation"
	KindMulticast     Kind = "multicast"
	KindReserved      Kind = "reserved"
	KindSpecial       Kind = "special"
)

func (k Kind) valid() bool {
	switch k {
	case KindLoopback, KindPrivateUse, KindLinkLocal, KindShared,
		KindDocumentation, KindMulticast, KindReserved, KindSpecial:
		return true
	}
	return false
}

// Scope is the classification of a single address, in priority order.
type Scope string

const (
	ScopeLoopback Scope = "loopback"
	ScopePrivate  Scope = "private"
	ScopeGlobal   Scope = "global"
	// ScopeOther covers everything that is neither loopback, private-use
	// nor globally reachable (link-local, multicast, documentation, ...).
	ScopeOther Scope = "other"
)

// Block is one special-purpose address block.
type Block struct {
	Prefix            netip.Prefix `json:"prefix" yaml:"prefix"`
	Name              string       `json:"name" yaml:"name"`
	RFC               string       `json:"rfc" yaml:"rfc"`
	Kind              Kind         `json:"kind" yaml:"kind"`
	GloballyReachable bool         `json:"globally_reachable" yaml:"globally_reachable"`
}

// blockEntry is the YAML form of a Block.
type blockEntry struct {
	Prefix            string `yaml:"prefix"`
	Name              string `yaml:"name"`
	RFC               string `yaml:"rfc"`
	Kind              Kind   `yaml:"kind"`
	GloballyReachable bool   `yaml:"globally_reachable"`
}

// registryFile is the top-level structure of a registry YAML document.
type registryFile struct {
	Blocks []blockEntry `yaml:"blocks"`
}

// Registry is an immutable set of blocks, ordered most specific first.
type Registry struct {
	blocks []Block
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := Parse(registryRawData)
	if err != nil {
		panic("ipspace: embedded registry: " + err.Error())
	}
	return r
})

// Default returns the embedded registry.
func Default() *Registry {
	return defaultRegistry()
}

// Parse decodes a registry YAML document.
func Parse(data []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ipspace: parse yaml: %w", err)
	}

	blocks := make([]Block, 0, len(f.Blocks))
	for i, e := range f.Blocks {
		p, err := netip.ParsePrefix(e.Prefix)
		if err != nil {
			return nil, fmt.Errorf("ipspace: block %d: %w", i, err)
		}
		if !p.Addr().Is4() {
			return nil, fmt.Errorf("ipspace: block %d: %s is not an IPv4 prefix", i, p)
		}
		if p != p.Masked() {
			return nil, fmt.Errorf("ipspace: block %d: %s has host bits set", i, p)
		}
		if !e.Kind.valid() {
			return nil, fmt.Errorf("ipspace: block %d (%s): unknown kind %q", i, p, e.Kind)
		}
		blocks = append(blocks, Block{
			Prefix:            p,
			Name:              e.Name,
			RFC:               e.RFC,
			Kind:              e.Kind,
			GloballyReachable: e.GloballyReachable,
		})
	}

	sort.SliceStable(blocks, func(a, b int) bool {
		return blocks[a].Prefix.Bits() > blocks[b].Prefix.Bits()
	})
	return &Registry{blocks: blocks}, nil
}

// Load reads a registry YAML document from r.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ipspace: read registry: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a registry YAML document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ipspace: open registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Blocks returns a copy of the registry's blocks, most specific first.
func (r *Registry) Blocks() []Block {
	cp := make([]Block, len(r.blocks))
	copy(cp, r.blocks)
	return cp
}

// Lookup returns the most specific block containing addr.
func (r *Registry) Lookup(addr netip.Addr) (Block, bool) {
	if !addr.Is4() {
		return Block{}, false
	}
	for i := range r.blocks {
		if r.blocks[i].Prefix.Contains(addr) {
			return r.blocks[i], true
		}
	}
	return Block{}, false
}

// IsLoopback reports whether addr is in a loopback block.
func (r *Registry) IsLoopback(addr netip.Addr) bool {
	return r.within(addr, KindLoopback)
}

// IsPrivateUse reports whether addr is in a private-use block.
func (r *Registry) IsPrivateUse(addr netip.Addr) bool {
	return r.within(addr, KindPrivateUse)
}

// IsGlobal reports whether addr is globally reachable: either outside
// every block, or inside a block marked globally reachable.
func (r *Registry) IsGlobal(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}
	b, ok := r.Lookup(addr)
	return !ok || b.GloballyReachable
}

// Scope classifies addr. Loopback is checked first, then private-use,
// then global reachability.
func (r *Registry) Scope(addr netip.Addr) Scope {
	switch {
	case r.IsLoopback(addr):
		return ScopeLoopback
	case r.IsPrivateUse(addr):
		return ScopePrivate
	case r.IsGlobal(addr):
		return ScopeGlobal
	default:
		return ScopeOther
	}
}

func (r *Registry) within(addr netip.Addr, kind Kind) bool {
	if !addr.Is4() {
		return false
	}
	for i := range r.blocks {
		if r.blocks[i].Kind == kind && r.blocks[i].Prefix.Contains(addr) {
			return true
		}
	}
	return false
}
