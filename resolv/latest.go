package resolv

import (
	"github.com/birkland/assetpath/manifest"
	"github.com/pkg/errors"
)

// ResolveLatest returns the version named by the latest key of the asset's
// manifest.  The result is empty if the manifest is missing, unreadable,
// malformed, or has no string latest value.
func (r *Resolver) ResolveLatest(name string) string {
	version, _ := r.latest(name)
	return version
}

func (r *Resolver) latest(name string) (string, error) {
	if r.root == "" {
		return "", ErrNoAssetRoot
	}
	if name == "" {
		return "", ErrEmptyName
	}

	m, err := manifest.Read(r.fs, r.root, name)
	if err != nil {
		r.log.Debug("manifest lookup failed", "asset", name, "error", err.Error())
		return "", err
	}

	if m.Latest == "" {
		err = errors.Wrapf(manifest.ErrNoLatest, "empty latest version in %s", manifest.Path(r.root, name))
		r.log.Debug("manifest lookup failed", "asset", name, "error", err.Error())
		return "", err
	}

	r.log.Debug("manifest lookup", "asset", name, "latest", m.Latest)
	return m.Latest, nil
}
