package version

import (
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "vesuvius 0.1.0-dev"},
		{"1.2.3", "abc123", "", "vesuvius 1.2.3 (abc123)"},
		{"1.2.3", "abc123", "2026-01-15", "vesuvius 1.2.3 (abc123) built 2026-01-15"},
		{"2", "", "", "vesuvius 2"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, tt.commit, tt.date)
		if got := String(false); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestColoredPaintsSegments(t *testing.T) {
	withVersion(t, "1.2.3-rc1", "", "")
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", got)
	}
	if !strings.HasSuffix(got, "-rc1") {
		t.Fatalf("suffix must stay plain, got %q", got)
	}
	if Colored(false) != "1.2.3-rc1" {
		t.Fatalf("Colored(false) = %q", Colored(false))
	}
}
