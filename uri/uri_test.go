package uri_test

import (
	"fmt"
	"testing"

	"github.com/birkland/assetpath/uri"
	"github.com/go-test/deep"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		uri      string
		expected []string
	}{
		{"empty", "", []string{"", ""}},
		{"prefixOnly", "asset:", []string{"", ""}},
		{"shorterThanPrefix", "asse", []string{"", ""}},
		{"otherScheme", "file:/assets/chair.usd", []string{"", ""}},
		{"plainPath", "/assets/chair/v10/chair.usd", []string{"", ""}},
		{"upperCaseScheme", "ASSET:chair", []string{"", ""}},
		{"latest", "asset:foo", []string{"foo", "latest"}},
		{"version", "asset:foo?v=10", []string{"foo", "v10"}},
		{"nonNumericVersion", "asset:foo?v=beta", []string{"foo", "vbeta"}},
		{"unknownQuery", "asset:foo?x=bar", []string{"foo", "latest"}},
		{"emptyQuery", "asset:foo?", []string{"foo", "latest"}},
		{"emptyVersion", "asset:foo?v=", []string{"foo", "latest"}},
		{"secondQuestionMark", "asset:foo?v=1?v=2", []string{"foo", "v1?v=2"}},
		{"emptyName", "asset:?v=3", []string{"", "v3"}},
		{"nameWithSlash", "asset:props/chair_0", []string{"props/chair_0", "latest"}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			name, version := uri.Parse(c.uri)
			if diff := deep.Equal(c.expected, []string{name, version}); diff != nil {
				t.Errorf("parse of %q: %s", c.uri, diff)
			}
		})
	}
}

func TestNotThisScheme(t *testing.T) {
	for _, s := range []string{"a", "asset", "assets:foo", " asset:foo", "usd:asset:foo", "http://x"} {
		if name, version := uri.Parse(s); name != "" || version != "" {
			t.Errorf("%q should not parse as an asset URI, got (%q, %q)", s, name, version)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"asset:chair", "asset:chair?v=10", "asset:props/lamp?v=3"} {
		name, version := uri.Parse(s)
		if got := uri.Format(name, version); got != s {
			t.Errorf("expected %q, got %q", s, got)
		}
	}
}

func ExampleParse() {
	fmt.Println(uri.Parse("asset:chair_0?v=10"))
	fmt.Println(uri.Parse("asset:chair_0"))
	// Output:
	// chair_0 v10
	// chair_0 latest
}
