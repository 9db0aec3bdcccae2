package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want it to contain %q", got, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want prefix %q", got, "{{.Name}} version "+Version)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Template() = %q, want trailing newline", got)
	}
}

func TestIsRelease(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version string
		want    bool
	}{
		{"dev", false},
		{"v1.2.3", true},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := IsRelease(); got != tt.want {
			t.Errorf("IsRelease() with Version %q = %v, want %v", tt.version, got, tt.want)
		}
	}
}
