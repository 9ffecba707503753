// Package catalog enumerates the assets and versions present under an asset
// root.
//
// An asset is a directory, at any depth beneath the root, that has a
// versions.json manifest or at least one version.  A version is a child
// directory of an asset holding the asset's file, e.g. chair/v10/chair.usd
// for asset chair.  Asset names are the solidus delimited path of the asset
// directory relative to the root, so that every entry corresponds to an
// asset: URI that resolves.
package catalog
