// Package assetpath defines an API for resolving symbolic asset URIs, such as
// asset:chair_0?v=10, into concrete filesystem paths.
//
// Resolution is provided by one or more Resolver implementations, registered
// by URI scheme.  The resolver for the asset: scheme lives in resolv/, and
// registers itself when imported.  Resolvers are configured once, at
// construction, with an asset root directory and a filesystem capability
// (see fsys/), and are stateless thereafter.
package assetpath
