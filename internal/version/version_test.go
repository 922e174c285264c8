package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}

func TestInfo(t *testing.T) {
	result := Info()

	for _, want := range []string{"skillseed", Version, "commit:", "built:", runtime.Version()} {
		if !strings.Contains(result, want) {
			t.Errorf("Info() should contain %q, got %q", want, result)
		}
	}
}

func TestShortCommit(t *testing.T) {
	original := Commit
	defer func() { Commit = original }()

	tests := []struct {
		commit string
		want   string
	}{
		{"abc123456789abcdef", "abc1234"},
		{"abc", "abc"},
		{"abcdefg", "abcdefg"},
	}

	for _, tt := range tests {
		Commit = tt.commit
		if got := ShortCommit(); got != tt.want {
			t.Errorf("ShortCommit() with %q = %q, want %q", tt.commit, got, tt.want)
		}
		if strings.Contains(Info(), tt.commit) != (tt.commit == tt.want) {
			t.Errorf("Info() commit truncation wrong for %q: %q", tt.commit, Info())
		}
	}
}

func TestFull(t *testing.T) {
	result := Full()

	for _, want := range []string{"skillseed", Version, "Commit:", "Built:", "Go version:", "OS/Arch:", runtime.GOOS, runtime.GOARCH} {
		if !strings.Contains(result, want) {
			t.Errorf("Full() should contain %q, got %q", want, result)
		}
	}

	if lines := strings.Split(result, "\n"); len(lines) < 5 {
		t.Errorf("Full() should have at least 5 lines, got %d", len(lines))
	}
}
