package models

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// FactInterfaces is the fact key holding the host's interface identifiers.
const FactInterfaces = "interfaces"

// Facts is a host fact document: string keys mapped to arbitrary values.
// Keys keep the order in which they were set or decoded.
type Facts struct {
	keys   []string
	values map[string]any
}

// NewFacts returns an empty fact document.
func NewFacts() *Facts {
	return &Facts{values: make(map[string]any)}
}

// FactsFromMap builds a fact document from a plain map. Go maps carry no
// order, so keys are taken in sorted order.
func FactsFromMap(m map[string]any) *Facts {
	f := NewFacts()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.Set(k, m[k])
	}
	return f
}

// ParseFacts decodes a JSON or YAML fact document. A document starting
// with '{' is read as JSON; anything else goes through the YAML decoder.
func ParseFacts(data []byte) (*Facts, error) {
	f := NewFacts()
	if IsJSONObject(data) {
		if err := f.decodeJSON(data); err != nil {
			return nil, fmt.Errorf("parse facts: %w", err)
		}
		return f, nil
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse facts: %w", err)
	}
	return f, nil
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (f *Facts) Set(key string, value any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value stored under key.
func (f *Facts) Get(key string) (any, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[key]
	return v, ok
}

// Delete removes key from the document.
func (f *Facts) Delete(key string) {
	if _, ok := f.values[key]; !ok {
		return
	}
	delete(f.values, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in document order.
func (f *Facts) Keys() []string {
	if f == nil {
		return nil
	}
	cp := make([]string, len(f.keys))
	copy(cp, f.keys)
	return cp
}

// Len returns the number of top-level facts.
func (f *Facts) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// UnmarshalYAML decodes a mapping node, recording key order.
func (f *Facts) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: facts must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: fact key must be a scalar", keyNode.Line)
		}
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("fact %q: %w", keyNode.Value, err)
		}
		f.Set(keyNode.Value, value)
	}
	return nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. JSON null
// leaves f unchanged.
func (f *Facts) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	return f.decodeJSON(data)
}
