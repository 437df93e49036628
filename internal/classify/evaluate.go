package classify

import (
	"errors"
	"fmt"
	"net/netip"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/HerbHall/netclass/pkg/ipspace"
	"github.com/HerbHall/netclass/pkg/models"
)

// evaluate decides the outcome for one descriptor. rec is only meaningful
// when the outcome maps to a group.
func (c *Classifier) evaluate(d descriptor) (Outcome, models.InterfaceRecord, error) {
	if !present(d.fields["ipv4"]) {
		return OutcomeNoIPv4, models.InterfaceRecord{}, nil
	}

	active, err := cast.ToBoolE(d.fields["active"])
	if err != nil {
		return "", models.InterfaceRecord{}, fmt.Errorf("active: %w", err)
	}
	if !active {
		return OutcomeInactive, models.InterfaceRecord{}, nil
	}

	iface, err := decodeInterface(d.fields)
	if err != nil {
		return "", models.InterfaceRecord{}, err
	}
	cfg := iface.IPv4
	if err := validateIPv4(cfg); err != nil {
		return "", models.InterfaceRecord{}, err
	}

	addr, err := netip.ParseAddr(cfg.Address)
	if err != nil {
		return "", models.InterfaceRecord{}, fmt.Errorf("ipv4.address: %w", err)
	}
	if !addr.Is4() {
		return "", models.InterfaceRecord{}, fmt.Errorf("ipv4.address %q is not an IPv4 address", cfg.Address)
	}

	switch c.registry.Scope(addr) {
	case ipspace.ScopeLoopback:
		return OutcomeLoopback, models.InterfaceRecord{Name: iface.Device, IP: cfg.Address}, nil
	case ipspace.ScopePrivate:
		return OutcomePrivate, models.InterfaceRecord{Name: iface.Device, Network: cfg.CIDR(), IP: cfg.Address}, nil
	case ipspace.ScopeGlobal:
		return OutcomePublic, models.InterfaceRecord{Name: iface.Device, IP: cfg.Address}, nil
	default:
		return OutcomeUnroutable, models.InterfaceRecord{}, nil
	}
}

// decodeInterface decodes descriptor fields into the typed form. Scalars
// are coerced so that a numeric prefix or a "true" string decode cleanly.
func decodeInterface(fields map[string]any) (models.InterfaceFacts, error) {
	var iface models.InterfaceFacts
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: coerceScalars,
		Result:     &iface,
		TagName:    "mapstructure",
	})
	if err != nil {
		return iface, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return iface, fmt.Errorf("decode descriptor: %w", err)
	}
	return iface, nil
}

func coerceScalars(from, to reflect.Type, data any) (any, error) {
	switch from.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return data, nil
	}
	switch to.Kind() {
	case reflect.Bool:
		return cast.ToBoolE(data)
	case reflect.String:
		return cast.ToStringE(data)
	}
	return data, nil
}

func validateIPv4(cfg *models.IPv4Facts) error {
	if cfg == nil {
		return errors.New("ipv4 is missing")
	}
	switch {
	case cfg.Address == "":
		return errors.New("ipv4.address is missing")
	case cfg.Network == "":
		return errors.New("ipv4.network is missing")
	case cfg.Prefix == "":
		return errors.New("ipv4.prefix is missing")
	}
	return nil
}

// present reports whether v holds a value. nil, false, zero numbers and
// empty strings, lists and mappings count as absent.
func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
