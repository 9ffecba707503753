package assetpath

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/birkland/assetpath/fsys"
	"github.com/pkg/errors"
)

// EnvAssetRoot names the environment variable holding the asset root
const EnvAssetRoot = "USD_ASSET_ROOT"

// ErrUnresolved is returned when asset content is requested for a path that
// did not resolve.
var ErrUnresolved = errors.New("asset path is unresolved")

// ResolvedPath is the outcome of resolving an asset URI.  The zero value is
// Unresolved.
type ResolvedPath struct {
	path string
}

// Unresolved signals that resolution could not produce a usable path
var Unresolved = ResolvedPath{}

// NewResolvedPath wraps a filesystem path as a resolution result.  An empty
// path is Unresolved.
func NewResolvedPath(path string) ResolvedPath {
	return ResolvedPath{path: path}
}

// IsResolved reports whether r names a filesystem path
func (r ResolvedPath) IsResolved() bool {
	return r.path != ""
}

// Path is the resolved filesystem path, or empty if unresolved
func (r ResolvedPath) Path() string {
	return r.path
}

func (r ResolvedPath) String() string {
	if !r.IsResolved() {
		return "<unresolved>"
	}
	return r.path
}

// Context carries context-sensitive resolution state.  No resolver in this
// module resolves differently by context, so every context is the empty,
// default context.
type Context struct{}

// Config captures everything a resolver needs, read once at construction.
type Config struct {
	AssetRoot string          // base directory of all assets; empty fails every resolution
	FS        fsys.FileSystem // defaults to fsys.Local
	Logger    *slog.Logger    // diagnostics; nil discards them
}

// ConfigFromEnv returns a Config whose asset root is taken from the
// USD_ASSET_ROOT environment variable.  An unset variable yields an empty root.
func ConfigFromEnv() Config {
	root, _ := os.LookupEnv(EnvAssetRoot)
	return Config{AssetRoot: root}
}

// WithDefaults fills in any unset filesystem or logger
func (c Config) WithDefaults() Config {
	if c.FS == nil {
		c.FS = fsys.Local
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Resolver translates asset URIs into filesystem paths, and provides access
// to the content at those paths.
type Resolver interface {
	CreateIdentifier(assetPath string, anchor ResolvedPath) string
	CreateIdentifierForNewAsset(assetPath string, anchor ResolvedPath) string

	Resolve(assetPath string) ResolvedPath
	ResolveForNewAsset(assetPath string) ResolvedPath

	CreateDefaultContext() Context
	CreateDefaultContextForAsset(assetPath string) Context
	IsContextDependentPath(assetPath string) bool
	RefreshContext(ctx Context)

	ModificationTime(assetPath string, resolved ResolvedPath) (time.Time, bool)
	OpenAsset(resolved ResolvedPath) (fsys.Asset, error)
	OpenAssetForWrite(resolved ResolvedPath, mode fsys.WriteMode) (fsys.WritableAsset, error)
}
