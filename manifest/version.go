package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const vfmt = "v%d"

// VersionID is a concrete version token, as found in version directory names
// and in the latest key of a manifest.  Well-formed IDs start with v followed
// by a positive integer, which may be zero padded.
type VersionID string

// Valid reports whether v is a well-formed version ID
func (v VersionID) Valid() bool {
	if len(v) < 2 || v[0] != 'v' {
		return false
	}

	i, err := v.Int()
	return err == nil && i > 0
}

// Int is the numeric part of the version ID
func (v VersionID) Int() (int, error) {
	i, err := strconv.ParseInt(strings.TrimPrefix(string(v), "v"), 10, 64)
	if err != nil {
		return 0, err
	}

	return int(i), nil
}

// Increment returns the following version ID, preserving any zero padding
func (v VersionID) Increment() (VersionID, error) {
	var fmts = vfmt

	if !v.Valid() {
		return "", errors.Errorf("version %s is not a valid version ID", v)
	}

	if v[1] == '0' { // Padded!
		fmts = fmt.Sprintf("v%%0%dd", len(v)-1)
	}

	i, _ := v.Int()

	return VersionID(fmt.Sprintf(fmts, i+1)), nil
}

// Less orders version IDs numerically where both are well-formed, and
// lexically otherwise.  Well-formed IDs sort before malformed ones.
func (v VersionID) Less(other VersionID) bool {
	vValid, oValid := v.Valid(), other.Valid()
	switch {
	case vValid && oValid:
		a, _ := v.Int()
		b, _ := other.Int()
		if a != b {
			return a < b
		}
		return v < other
	case vValid != oValid:
		return vValid
	default:
		return v < other
	}
}
