package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	s := String()
	if !strings.HasPrefix(s, "floorplan 1.2.3 ") {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(s, GitSHA) || !strings.Contains(s, BuildTime) {
		t.Errorf("String() = %q missing git sha or build time", s)
	}
}
