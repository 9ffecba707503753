package resolv

import (
	"log/slog"
	"time"

	"github.com/birkland/assetpath"
	"github.com/birkland/assetpath/fsys"
	"github.com/birkland/assetpath/uri"
)

func init() {
	assetpath.Register(uri.Scheme, func(cfg assetpath.Config) (assetpath.Resolver, error) {
		return New(cfg), nil
	})
}

// Resolver resolves asset: URIs beneath a single asset root.  It holds no
// mutable state, so it may be shared between goroutines whenever its
// FileSystem can be.
type Resolver struct {
	root string
	fs   fsys.FileSystem
	log  *slog.Logger
}

var _ assetpath.Resolver = (*Resolver)(nil)

// New creates a resolver from the given configuration.  The asset root is
// captured as-is; an empty root is allowed, but nothing will resolve.
func New(cfg assetpath.Config) *Resolver {
	cfg = cfg.WithDefaults()

	r := &Resolver{
		root: cfg.AssetRoot,
		fs:   cfg.FS,
		log:  cfg.Logger.With("scheme", uri.Scheme),
	}

	r.log.Debug("created resolver", "assetRoot", r.root)
	return r
}

// AssetRoot is the asset root captured at construction
func (r *Resolver) AssetRoot() string {
	return r.root
}

// CreateIdentifier returns the asset path unchanged.  Asset URIs are already
// absolute, so there is no anchoring to do.
func (r *Resolver) CreateIdentifier(assetPath string, anchor assetpath.ResolvedPath) string {
	r.log.Debug("create identifier", "assetPath", assetPath, "anchor", anchor.Path())
	return assetPath
}

// CreateIdentifierForNewAsset returns the asset path unchanged
func (r *Resolver) CreateIdentifierForNewAsset(assetPath string, anchor assetpath.ResolvedPath) string {
	r.log.Debug("create identifier for new asset", "assetPath", assetPath, "anchor", anchor.Path())
	return assetPath
}

// CreateDefaultContext returns the empty context
func (r *Resolver) CreateDefaultContext() assetpath.Context {
	r.log.Debug("create default context")
	return assetpath.Context{}
}

// CreateDefaultContextForAsset returns the empty context
func (r *Resolver) CreateDefaultContextForAsset(assetPath string) assetpath.Context {
	r.log.Debug("create default context for asset", "assetPath", assetPath)
	return assetpath.Context{}
}

// IsContextDependentPath is always false
func (r *Resolver) IsContextDependentPath(assetPath string) bool {
	return false
}

// RefreshContext does nothing
func (r *Resolver) RefreshContext(ctx assetpath.Context) {
	r.log.Debug("refresh context")
}

// ModificationTime returns the modification time of the file at the
// resolved path, if there is one.
func (r *Resolver) ModificationTime(assetPath string, resolved assetpath.ResolvedPath) (time.Time, bool) {
	r.log.Debug("modification time", "assetPath", assetPath, "resolved", resolved.Path())

	if !resolved.IsResolved() {
		return time.Time{}, false
	}
	return r.fs.ModTime(resolved.Path())
}

// OpenAsset opens the content at the resolved path for reading
func (r *Resolver) OpenAsset(resolved assetpath.ResolvedPath) (fsys.Asset, error) {
	r.log.Debug("open asset", "resolved", resolved.Path())

	if !resolved.IsResolved() {
		return nil, assetpath.ErrUnresolved
	}
	return r.fs.Open(resolved.Path())
}

// OpenAssetForWrite opens the content at the resolved path for writing.
// Missing directories along the path are created.
func (r *Resolver) OpenAssetForWrite(resolved assetpath.ResolvedPath, mode fsys.WriteMode) (fsys.WritableAsset, error) {
	r.log.Debug("open asset for write", "resolved", resolved.Path(), "mode", mode.String())

	if !resolved.IsResolved() {
		return nil, assetpath.ErrUnresolved
	}
	return r.fs.OpenForWrite(resolved.Path(), mode)
}
