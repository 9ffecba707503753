// Package manifest contains facilities for working with asset version
// manifests.  At the moment, it is a 1:1 reflection of versions.json files,
// which live in each asset's directory and name the version that "latest"
// refers to, e.g.
//
//	{"name": "chair_0", "latest": "v10"}
//
// Only the latest key is meaningful for resolution.  Manifests are read, never
// written, by this module.
package manifest
