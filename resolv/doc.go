// Package resolv resolves asset: URIs into filesystem paths.
//
// A URI names an asset and, optionally, a concrete version.  Without one, the
// version is taken from the latest key of the asset's versions.json manifest.
// Either way, the candidate path is
//
//	{assetRoot}/{name}/{version}/{name}.usd
//
// Resolve accepts a candidate only if something exists at that path.
// ResolveForNewAsset accepts it regardless, since the caller intends to
// create it.  Failures never surface as errors from either; they produce
// assetpath.Unresolved, and a debug log record.  Explain and
// ExplainForNewAsset report the reason for a failure.
//
// Importing this package registers the resolver under the asset scheme.
package resolv
