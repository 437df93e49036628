package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// JSONMember is one member of a JSON object, value still encoded.
type JSONMember struct {
	Key   string
	Value json.RawMessage
}

// IsJSONObject reports whether data starts with a JSON object, ignoring
// leading whitespace.
func IsJSONObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// JSONMembers returns the members of the JSON object in data in document
// order. Trailing data after the object is an error.
func JSONMembers(data []byte) ([]JSONMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("facts must be a JSON object, got %v", tok)
	}

	var members []JSONMember
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v, want object key", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("fact %q: %w", key, err)
		}
		members = append(members, JSONMember{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return members, nil
}

// decodeJSON appends the members of a JSON object to f in document order.
// A repeated key keeps its first position and takes the last value.
func (f *Facts) decodeJSON(data []byte) error {
	members, err := JSONMembers(data)
	if err != nil {
		return err
	}
	for _, m := range members {
		v, err := decodeJSONValue(m.Value)
		if err != nil {
			return fmt.Errorf("fact %q: %w", m.Key, err)
		}
		f.Set(m.Key, v)
	}
	return nil
}

func decodeJSONValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}

// normalizeNumbers turns json.Number into int or float64, the same
// scalar types the YAML decoder produces.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		if fl, err := x.Float64(); err == nil {
			return fl
		}
		return x.String()
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeNumbers(val)
		}
		return x
	case []any:
		for i, val := range x {
			x[i] = normalizeNumbers(val)
		}
		return x
	}
	return v
}
