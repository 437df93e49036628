package testutil

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/HerbHall/netclass/pkg/models"
)

func TestObservedLogger(t *testing.T) {
	l, logs := ObservedLogger(zapcore.InfoLevel)
	l.Debug("hidden")
	l.Info("shown")

	if got := logs.Len(); got != 1 {
		t.Fatalf("logs.Len() = %d, want 1", got)
	}
	if got := logs.All()[0].Message; got != "shown" {
		t.Errorf("Message = %q, want %q", got, "shown")
	}
	Logger(t).Debug("written through t.Log")
}

func TestNewInterface_Defaults(t *testing.T) {
	iface := NewInterface("eth0")
	if iface["device"] != "eth0" {
		t.Errorf("device = %v, want eth0", iface["device"])
	}
	if iface["active"] != true {
		t.Errorf("active = %v, want true", iface["active"])
	}
	if _, ok := iface["ipv4"]; !ok {
		t.Error("expected default ipv4 configuration")
	}
}

func TestNewInterface_Options(t *testing.T) {
	iface := NewInterface("bond0-member",
		WithoutIPv4(),
		WithActive(false),
		WithField("mtu", 9000),
	)
	if _, ok := iface["ipv4"]; ok {
		t.Error("WithoutIPv4: ipv4 still present")
	}
	if iface["active"] != false {
		t.Errorf("active = %v, want false", iface["active"])
	}
	if iface["mtu"] != 9000 {
		t.Errorf("mtu = %v, want 9000", iface["mtu"])
	}
}

func TestNewFacts_Layout(t *testing.T) {
	f := NewFacts(NewInterface("lo"), NewInterface("eth0"))

	keys := f.Keys()
	if len(keys) != 3 || keys[0] != models.FactInterfaces || keys[1] != "lo" || keys[2] != "eth0" {
		t.Fatalf("Keys() = %v", keys)
	}
	names, _ := f.Get(models.FactInterfaces)
	if list := names.([]any); len(list) != 2 || list[1] != "eth0" {
		t.Errorf("interfaces = %v", names)
	}
}
