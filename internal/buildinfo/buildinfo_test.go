package buildinfo

import "testing"

func stamp(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = v, c, d
}

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "unknown", "dev"},
		{"dev", "abc123", "abc123"},
		{"v1.2.0", "abc123", "v1.2.0"},
		{"", "", "dev"},
	}
	for _, tt := range tests {
		stamp(t, tt.version, tt.commit, "unknown")
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	stamp(t, "v1.2.0", "abc123", "2026-10-01")
	if got, want := Describe(), "watch v1.2.0 abc123 built 2026-10-01"; got != want {
		t.Fatalf("Describe() = %q, want %q", got, want)
	}

	stamp(t, "dev", "abc123", "unknown")
	if got, want := Describe(), "watch abc123"; got != want {
		t.Fatalf("Describe() = %q, want %q", got, want)
	}
}
