package compat_test

import (
	"testing"

	"go.trai.ch/hoist/internal/engine/compat"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		declared []string
		actual   string
		want     bool
	}{
		{"whitelist match", []string{"linux", "darwin"}, "darwin", true},
		{"whitelist miss", []string{"linux", "darwin"}, "win32", false},
		{"single whitelist match", []string{"win32"}, "win32", true},
		{"blacklist denied", []string{"!win32"}, "win32", false},
		{"blacklist not denied", []string{"!win32"}, "linux", true},
		{"multiple blacklist not denied", []string{"!win32", "!darwin"}, "linux", true},
		{"multiple blacklist denied", []string{"!win32", "!darwin"}, "darwin", false},
		{"mixed plain match wins", []string{"!linux", "win32"}, "win32", true},
		{"mixed blacklist denies", []string{"!linux", "win32"}, "linux", false},
		{"mixed unlisted allowed by blacklist", []string{"!linux", "win32"}, "darwin", true},
		{"empty declarations", []string{}, "linux", false},
		{"nil declarations", nil, "linux", false},
		{"no partial matching", []string{"linux"}, "linux-gnu", false},
		{"bang entry order irrelevant", []string{"win32", "!linux"}, "darwin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compat.Matches(tt.declared, tt.actual); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", tt.declared, tt.actual, got, tt.want)
			}
		})
	}
}
