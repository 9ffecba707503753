package rootpath_test

import (
	"testing"

	"github.com/birkland/assetpath/internal/rootpath"
)

func TestJoin(t *testing.T) {
	cases := []struct {
		name     string
		root     string
		rel      string
		expected string
	}{
		{"noRoot", "", "chair/versions.json", ""},
		{"noSeparator", "/assets", "chair/versions.json", "/assets/chair/versions.json"},
		{"solidus", "/assets/", "chair/versions.json", "/assets/chair/versions.json"},
		{"backslash", `C:\assets\`, "chair/versions.json", `C:\assets\chair/versions.json`},
		{"doubled", "/assets//", "chair", "/assets//chair"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if got := rootpath.Join(c.root, c.rel); got != c.expected {
				t.Errorf("expected %q, got %q", c.expected, got)
			}
		})
	}
}
