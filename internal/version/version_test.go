package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "netclass dev ") {
		t.Errorf("Info() = %q, want prefix %q", info, "netclass dev ")
	}
	if !strings.Contains(info, runtime.Version()) {
		t.Errorf("Info() should contain Go version, got: %s", info)
	}
}

func TestShort(t *testing.T) {
	if got := Short(); got != "dev" {
		t.Errorf("Short() = %q, want %q (default)", got, "dev")
	}
}

func TestCurrent(t *testing.T) {
	b := Current()
	if b.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", b.GoVersion, runtime.Version())
	}
	if b.OS != runtime.GOOS || b.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", b.OS, b.Arch, runtime.GOOS, runtime.GOARCH)
	}
}

func TestFromSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "4f2a9c1"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name       string
		in         Build
		wantCommit string
		wantDate   string
	}{
		{"fills unknowns", Build{GitCommit: "unknown", BuildDate: "unknown"}, "4f2a9c1", "2026-10-01T12:00:00Z"},
		{"ldflags win", Build{GitCommit: "abc1234", BuildDate: "2026-09-30"}, "abc1234", "2026-09-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			b.fromSettings(settings)
			if b.GitCommit != tt.wantCommit {
				t.Errorf("GitCommit = %q, want %q", b.GitCommit, tt.wantCommit)
			}
			if b.BuildDate != tt.wantDate {
				t.Errorf("BuildDate = %q, want %q", b.BuildDate, tt.wantDate)
			}
			if !b.Modified {
				t.Error("Modified = false, want true")
			}
		})
	}
}
