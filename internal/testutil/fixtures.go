package testutil

import (
	"github.com/HerbHall/netclass/pkg/models"
)

// NewInterface returns an interface fact entry shaped like collector output:
// an active ethernet interface with a private IPv4 address.
// Override individual fields with options.
func NewInterface(device string, opts ...func(map[string]any)) map[string]any {
	iface := map[string]any{
		"device":     device,
		"active":     true,
		"type":       "ether",
		"macaddress": "00:11:22:33:44:55",
		"mtu":        1500,
		"ipv4": map[string]any{
			"address": "192.168.1.100",
			"network": "192.168.1.0",
			"netmask": "255.255.255.0",
			"prefix":  "24",
		},
	}
	for _, opt := range opts {
		opt(iface)
	}
	return iface
}

// WithIPv4 sets the interface's IPv4 address, network and prefix.
func WithIPv4(address, network string, prefix any) func(map[string]any) {
	return func(m map[string]any) {
		m["ipv4"] = map[string]any{
			"address": address,
			"network": network,
			"prefix":  prefix,
		}
	}
}

// WithoutIPv4 removes the IPv4 configuration, like a bond member.
func WithoutIPv4() func(map[string]any) {
	return func(m map[string]any) { delete(m, "ipv4") }
}

// WithActive sets the interface's active flag.
func WithActive(active bool) func(map[string]any) {
	return func(m map[string]any) { m["active"] = active }
}

// WithField sets an arbitrary field.
func WithField(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

// NewFacts returns a fact document listing the given interfaces under
// "interfaces", followed by one entry per interface keyed by device name.
func NewFacts(ifaces ...map[string]any) *models.Facts {
	f := models.NewFacts()
	names := make([]any, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface["device"])
	}
	f.Set(models.FactInterfaces, names)
	for _, iface := range ifaces {
		f.Set(iface["device"].(string), iface)
	}
	return f
}
