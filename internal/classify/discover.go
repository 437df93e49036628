package classify

import (
	"fmt"

	"github.com/HerbHall/netclass/pkg/models"
)

// descriptor is a fact entry recognised as describing a listed interface.
type descriptor struct {
	key    string
	device string
	fields map[string]any
}

// discover returns the fact entries whose "device" names one of the
// identifiers in the interfaces fact, in fact order. A device described by
// more than one entry is taken from the first.
func discover(facts *models.Facts) ([]descriptor, error) {
	raw, ok := facts.Get(models.FactInterfaces)
	if !ok {
		return nil, ErrNoInterfaces
	}
	names, err := identifiers(raw)
	if err != nil {
		return nil, err
	}

	listed := make(map[string]bool, len(names))
	for _, n := range names {
		listed[n] = true
	}

	var found []descriptor
	seen := make(map[string]bool)
	for _, key := range facts.Keys() {
		v, _ := facts.Get(key)
		fields, ok := asMap(v)
		if !ok {
			continue
		}
		device, ok := fields["device"].(string)
		if !ok || !listed[device] || seen[device] {
			continue
		}
		seen[device] = true
		found = append(found, descriptor{key: key, device: device, fields: fields})
	}

	if len(found) == 0 {
		return nil, ErrNoInterfaces
	}
	return found, nil
}

// identifiers reads the interfaces fact as a list of names.
func identifiers(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		names := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is %T, want string", models.FactInterfaces, i, item)
			}
			names = append(names, s)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%s fact is %T, want a list of names", models.FactInterfaces, raw)
	}
}

// asMap accepts the mapping shapes produced by the JSON and YAML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}
