package catalog

import "strings"

// Type names a kind of catalog entry
type Type int

// Entry types, ordered by specificity, e.g. Root > Asset
const (
	Any Type = iota
	File
	Version
	Asset
	Root
)

var typeNames = []string{"any", "file", "version", "asset", "root"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType parses a type name, case insensitively.  Unrecognized names,
// including the empty string, are Any.
func ParseType(s string) Type {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i)
		}
	}
	return Any
}
