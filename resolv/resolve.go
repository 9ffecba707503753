package resolv

import (
	"path/filepath"

	"github.com/birkland/assetpath"
	"github.com/birkland/assetpath/internal/rootpath"
	"github.com/birkland/assetpath/uri"
	"github.com/pkg/errors"
)

// Extension of every asset file
const Extension = ".usd"

// Reasons for a failed resolution.  Use errors.Cause to compare.
var (
	ErrNotThisScheme       = errors.New("not an asset URI")
	ErrEmptyName           = errors.New("asset URI has an empty name")
	ErrNoAssetRoot         = errors.New("no asset root configured")
	ErrManifestUnavailable = errors.New("no latest version available")
	ErrCandidateMissing    = errors.New("candidate path does not exist")
)

// Resolve resolves an asset URI to the path of an existing file
func (r *Resolver) Resolve(assetPath string) assetpath.ResolvedPath {
	r.log.Debug("resolve", "assetPath", assetPath)
	return r.quietly(r.Explain(assetPath))
}

// ResolveForNewAsset resolves an asset URI to the path at which the asset
// would be created.  Nothing need exist at that path.
func (r *Resolver) ResolveForNewAsset(assetPath string) assetpath.ResolvedPath {
	r.log.Debug("resolve for new asset", "assetPath", assetPath)
	return r.quietly(r.ExplainForNewAsset(assetPath))
}

// Explain resolves like Resolve, but says why resolution failed
func (r *Resolver) Explain(assetPath string) (assetpath.ResolvedPath, error) {
	candidate, err := r.candidate(assetPath)
	if err != nil {
		return assetpath.Unresolved, err
	}

	if !r.fs.Exists(candidate) {
		return assetpath.Unresolved, errors.Wrapf(ErrCandidateMissing, "nothing at %s", candidate)
	}

	return assetpath.NewResolvedPath(candidate), nil
}

// ExplainForNewAsset resolves like ResolveForNewAsset, but says why
// resolution failed
func (r *Resolver) ExplainForNewAsset(assetPath string) (assetpath.ResolvedPath, error) {
	candidate, err := r.candidate(assetPath)
	if err != nil {
		return assetpath.Unresolved, err
	}

	return assetpath.NewResolvedPath(candidate), nil
}

func (r *Resolver) quietly(resolved assetpath.ResolvedPath, err error) assetpath.ResolvedPath {
	if err != nil {
		r.log.Debug("unresolved", "reason", err.Error())
	}
	return resolved
}

// Parse the URI, settle on a concrete version, and build the path where the
// asset ought to be.
func (r *Resolver) candidate(assetPath string) (string, error) {
	if assetPath == "" {
		return "", ErrNotThisScheme
	}

	name, version := uri.Parse(assetPath)
	if name == "" {
		if version == "" {
			return "", errors.Wrapf(ErrNotThisScheme, "%q", assetPath)
		}
		return "", errors.Wrapf(ErrEmptyName, "%q", assetPath)
	}

	if r.root == "" {
		return "", ErrNoAssetRoot
	}

	if version == uri.Latest {
		latest, err := r.latest(name)
		if err != nil {
			return "", errors.Wrapf(ErrManifestUnavailable, "asset %s: %s", name, err)
		}
		version = latest
	}

	candidate := BuildCandidatePath(r.root, name, version)
	if candidate == "" {
		return "", errors.Errorf("could not build a path for %s version %s", name, version)
	}

	r.log.Debug("candidate", "assetPath", assetPath, "candidate", candidate)
	return candidate, nil
}

// BuildCandidatePath builds the absolute path {root}/{name}/{version}/{name}.usd.
// A solidus is added after root unless it already ends in '/' or '\'.  The
// result is empty if root or name is empty.
func BuildCandidatePath(root, name, version string) string {
	if root == "" || name == "" {
		return ""
	}

	path, err := filepath.Abs(rootpath.Join(root, name+"/"+version+"/"+name+Extension))
	if err != nil {
		return ""
	}
	return path
}
