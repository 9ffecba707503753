// Package uri parses asset URIs of the form
//
//	asset:<name>            latest version, per the asset's versions.json
//	asset:<name>?v=<n>      concrete version v<n>
//
// Parsing is permissive.  The query suffix is not validated, and anything
// other than a leading "v=" in the query is ignored.
package uri
