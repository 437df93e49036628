package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParseFacts_JSONKeepsOrder(t *testing.T) {
	data := []byte(`{
		"zeta": {"device": "eth1"},
		"interfaces": ["lo", "eth0", "eth1"],
		"alpha": {"device": "eth0", "active": true},
		"hostname": "web-01"
	}`)

	f, err := ParseFacts(data)
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}

	want := []string{"zeta", "interfaces", "alpha", "hostname"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	ifaces, ok := f.Get(FactInterfaces)
	if !ok {
		t.Fatal("interfaces fact missing")
	}
	list, ok := ifaces.([]any)
	if !ok || len(list) != 3 {
		t.Fatalf("interfaces = %#v, want 3-element list", ifaces)
	}

	alpha, _ := f.Get("alpha")
	m, ok := alpha.(map[string]any)
	if !ok {
		t.Fatalf("alpha = %T, want map[string]any", alpha)
	}
	if m["active"] != true {
		t.Errorf("alpha.active = %v, want true", m["active"])
	}
}

func TestParseFacts_YAMLKeepsOrder(t *testing.T) {
	data := []byte(`
interfaces: [lo, eth0]
lo:
  device: lo
  active: true
  ipv4: {address: 127.0.0.1, network: 127.0.0.0, prefix: "8"}
eth0:
  device: eth0
  active: false
`)

	f, err := ParseFacts(data)
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}
	want := []string{"interfaces", "lo", "eth0"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParseFacts_Empty(t *testing.T) {
	f, err := ParseFacts(nil)
	if err != nil {
		t.Fatalf("ParseFacts(nil): %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestParseFacts_NotMapping(t *testing.T) {
	if _, err := ParseFacts([]byte(`["lo", "eth0"]`)); err == nil {
		t.Fatal("expected error for a list document")
	}
}

func TestFacts_UnmarshalJSON(t *testing.T) {
	var f Facts
	if err := json.Unmarshal([]byte(`{"b": 1, "a": 2}`), &f); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	want := []string{"b", "a"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestFactsFromMap_SortedKeys(t *testing.T) {
	f := FactsFromMap(map[string]any{"eth1": 1, "eth0": 2, "bond0": 3})
	want := []string{"bond0", "eth0", "eth1"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestFacts_SetKeepsPosition(t *testing.T) {
	f := NewFacts()
	f.Set("a", 1)
	f.Set("b", 2)
	f.Set("a", 3)

	want := []string{"a", "b"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := f.Get("a"); v != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
}

func TestFacts_Delete(t *testing.T) {
	f := NewFacts()
	f.Set("a", 1)
	f.Set("b", 2)
	f.Set("c", 3)
	f.Delete("b")
	f.Delete("missing")

	want := []string{"a", "c"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if _, ok := f.Get("b"); ok {
		t.Error("Get(b) found a deleted key")
	}
}

func TestFacts_NilSafe(t *testing.T) {
	var f *Facts
	if f.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", f.Len())
	}
	if _, ok := f.Get("x"); ok {
		t.Error("nil Get() reported a value")
	}
	if f.Keys() != nil {
		t.Error("nil Keys() should be nil")
	}
}

func TestParseFacts_JSONEscapedSlash(t *testing.T) {
	f, err := ParseFacts([]byte(`{"interfaces": ["eth0"], "path": "a\/b", "eth0": {"device": "eth0", "module": "e1000e\/pci"}}`))
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}
	if v, _ := f.Get("path"); v != "a/b" {
		t.Errorf("path = %v, want %q", v, "a/b")
	}
	eth0, _ := f.Get("eth0")
	if m, _ := eth0.(map[string]any); m["module"] != "e1000e/pci" {
		t.Errorf("eth0.module = %v, want %q", m["module"], "e1000e/pci")
	}
}

func TestParseFacts_JSONLongKey(t *testing.T) {
	long := strings.Repeat("k", 1100)
	f, err := ParseFacts([]byte(`{"interfaces": [], "` + long + `": 1}`))
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}
	want := []string{"interfaces", long}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %d keys, want %d", len(got), len(want))
	}
}

func TestParseFacts_JSONScalars(t *testing.T) {
	f, err := ParseFacts([]byte(`{"eth0": {"mtu": 1500, "speed": 2.5, "active": true, "ipv4": null}}`))
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}
	eth0, _ := f.Get("eth0")
	m := eth0.(map[string]any)
	if m["mtu"] != 1500 {
		t.Errorf("mtu = %#v, want int 1500", m["mtu"])
	}
	if m["speed"] != 2.5 {
		t.Errorf("speed = %#v, want 2.5", m["speed"])
	}
	if m["ipv4"] != nil {
		t.Errorf("ipv4 = %#v, want nil", m["ipv4"])
	}
}

func TestParseFacts_JSONDuplicateKey(t *testing.T) {
	f, err := ParseFacts([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("ParseFacts: %v", err)
	}
	if got := f.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", got)
	}
	if v, _ := f.Get("a"); v != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
}

func TestParseFacts_JSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"interfaces": [`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"bad escape", `{"a": "\q"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFacts([]byte(tt.data)); err == nil {
				t.Errorf("ParseFacts(%s) expected error, got nil", tt.data)
			}
		})
	}
}

func TestFacts_UnmarshalJSONEscapes(t *testing.T) {
	var f Facts
	if err := json.Unmarshal([]byte(`{"url": "http:\/\/example.com\/", "name": "\ud83d\ude00"}`), &f); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if v, _ := f.Get("url"); v != "http://example.com/" {
		t.Errorf("url = %v, want %q", v, "http://example.com/")
	}
	if v, _ := f.Get("name"); v != "\U0001F600" {
		t.Errorf("name = %q, want %q", v, "\U0001F600")
	}
}
