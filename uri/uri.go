package uri

import "strings"

// Scheme is the only URI scheme understood by this package
const Scheme = "asset"

// Prefix begins every asset URI
const Prefix = Scheme + ":"

// Latest is the symbolic version token resolved through an asset's manifest
const Latest = "latest"

const versionKey = "v="

// Parse splits an asset URI into its asset name and version token.
//
// Strings that lack the asset: prefix, or consist of nothing but the prefix,
// are not asset URIs and yield ("", "").  A URI without a recognized version
// query yields the Latest token.  A query of v=<suffix> yields "v"+suffix,
// with no validation of the suffix.
func Parse(s string) (name, version string) {
	if !IsAsset(s) {
		return "", ""
	}

	rest := strings.TrimPrefix(s, Prefix)
	version = Latest

	i := strings.IndexByte(rest, '?')
	if i < 0 {
		return rest, version
	}

	name, query := rest[:i], rest[i+1:]
	if len(query) > len(versionKey) && strings.HasPrefix(query, versionKey) {
		version = "v" + query[len(versionKey):]
	}

	return name, version
}

// IsAsset reports whether s carries the asset: prefix followed by at least
// one character.
func IsAsset(s string) bool {
	return len(s) > len(Prefix) && strings.HasPrefix(s, Prefix)
}

// Format builds an asset URI from a name and version token.  It is the
// inverse of Parse for tokens produced by Parse.
func Format(name, version string) string {
	if version == "" || version == Latest || !strings.HasPrefix(version, "v") {
		return Prefix + name
	}
	return Prefix + name + "?" + versionKey + strings.TrimPrefix(version, "v")
}
