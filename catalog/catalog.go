package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/birkland/assetpath/fsys"
	"github.com/birkland/assetpath/manifest"
	"github.com/birkland/assetpath/resolv"
	"github.com/birkland/assetpath/uri"
	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

const (
	dontGoDeeper = true
	goDeeper     = false
)

// Entry is a single catalog entry.  Version and File entries have their
// asset as Parent, along with their version in the case of files.
type Entry struct {
	Type    Type
	Name    string // asset name
	Version string // version token, for versions and files
	Latest  string // manifest's latest version, for assets; empty if unknown
	Addr    string // absolute filesystem path
	Parent  *Entry
}

// URI is the asset: URI that resolves to the entry.  Roots have none.
func (e Entry) URI() string {
	switch e.Type {
	case Asset:
		return uri.Format(e.Name, uri.Latest)
	case Version, File:
		return uri.Format(e.Name, e.Version)
	default:
		return ""
	}
}

// IsLatest reports whether a version or file entry belongs to the version
// the asset's manifest names as latest.
func (e Entry) IsLatest() bool {
	return e.Parent != nil && e.Version != "" && e.Version == e.latest()
}

func (e Entry) latest() string {
	for p := e.Parent; p != nil; p = p.Parent {
		if p.Type == Asset {
			return p.Latest
		}
	}
	return ""
}

// Select chooses which entries a walk visits
type Select struct {
	Type   Type // only entries of this type, or Any
	Latest bool // only the latest version of each asset
}

// ErrNoAsset is returned when a name given to Walk is not present under the
// asset root.
var ErrNoAsset = errors.New("no such asset")

// Walk visits catalog entries under the asset root.  If asset names are
// given, only those assets (or the assets beneath them) are visited.
// Returning an error from f terminates the walk.
//
// Walk always reads the local disk, as directory listing is not part of
// fsys.FileSystem.
func Walk(root string, desired Select, f func(Entry) error, names ...string) error {
	if root == "" {
		return resolv.ErrNoAssetRoot
	}

	addr, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, "could not calculate absolute path of %s", root)
	}

	s := scope{
		root:    &Entry{Type: Root, Addr: addr},
		desired: desired,
	}

	if len(names) == 0 {
		if s.contains(Root) {
			if err := f(*s.root); err != nil {
				return err
			}
		}
		return s.walk(addr, f)
	}

	for _, name := range names {
		start := filepath.Join(addr, filepath.FromSlash(name))
		if !fsys.Local.Exists(start) {
			return errors.Wrapf(ErrNoAsset, "%s under %s", name, addr)
		}
		if err := s.walk(start, f); err != nil {
			return err
		}
	}

	return nil
}

type scope struct {
	root    *Entry
	desired Select
}

func (s scope) contains(t Type) bool {
	return s.desired.Type == Any || s.desired.Type == t
}

func (s scope) walk(start string, f func(Entry) error) error {
	err := fsWalk(start, func(ospath string, e *godirwalk.Dirent) (bool, error) {

		// Loose files never make an asset on their own
		if !e.IsDir() && !e.IsSymlink() {
			return dontGoDeeper, nil
		}

		if ospath == s.root.Addr {
			return goDeeper, nil
		}

		name := strings.TrimPrefix(filepath.ToSlash(strings.TrimPrefix(ospath, s.root.Addr)), "/")

		versions, err := findVersions(ospath, name)
		if err != nil {
			return dontGoDeeper, err
		}

		hasManifest := fsys.Local.Exists(filepath.Join(ospath, manifest.File))
		if len(versions) == 0 && !hasManifest {
			return goDeeper, nil
		}

		return dontGoDeeper, s.walkAsset(ospath, name, versions, f)
	})
	if err != nil {
		return errors.Wrapf(err, "error performing walk")
	}
	return nil
}

func (s scope) walkAsset(path, name string, versions []manifest.VersionID, f func(Entry) error) error {
	asset := Entry{
		Type:   Asset,
		Name:   name,
		Addr:   path,
		Parent: s.root,
	}

	if m, err := manifest.Read(fsys.Local, s.root.Addr, name); err == nil {
		asset.Latest = m.Latest
	}

	if s.contains(Asset) {
		if err := f(asset); err != nil {
			return err
		}
	}

	if s.desired.Type != Any && s.desired.Type > Version {
		return nil
	}

	for _, v := range versions {
		if s.desired.Latest && string(v) != asset.Latest {
			continue
		}

		version := Entry{
			Type:    Version,
			Name:    name,
			Version: string(v),
			Addr:    filepath.Join(path, string(v)),
			Parent:  &asset,
		}

		if s.contains(Version) {
			if err := f(version); err != nil {
				return err
			}
		}

		if s.contains(File) {
			err := f(Entry{
				Type:    File,
				Name:    name,
				Version: string(v),
				Addr:    resolv.BuildCandidatePath(s.root.Addr, name, string(v)),
				Parent:  &version,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Finds the child directories of an asset directory that hold the asset
// file, ordered by version.
func findVersions(dir, name string) ([]manifest.VersionID, error) {
	children, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read directory %s", dir)
	}

	var versions []manifest.VersionID
	for _, child := range children {
		if !child.IsDir() && !child.IsSymlink() {
			continue
		}

		assetFile := filepath.Join(dir, child.Name(), filepath.FromSlash(name)+resolv.Extension)
		if info, err := os.Stat(assetFile); err == nil && info.Mode().IsRegular() {
			versions = append(versions, manifest.VersionID(child.Name()))
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})

	return versions, nil
}

type skip struct {
	action godirwalk.ErrorAction
}

func (skip) Error() string {
	return "node is skipped"
}

// Callback to be invoked each time a fs entry is encountered.
// Returns a Boolean indicating whether the current fs entry is terminal
// (a leaf).  If true, its children will not be walked.  Any error will
// terminate a walk entirely.
type fsCallback func(ospath string, e *godirwalk.Dirent) (terminal bool, err error)

func fsWalk(dir string, f fsCallback) error {

	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "error walking directory %s", dir)
	}

	return godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			terminal, err := f(ospath, dirent)
			if err != nil {
				return errors.Wrap(err, "terminating walk due to error")
			}
			if terminal {
				return skip{godirwalk.SkipNode}
			}
			return nil
		},
		ErrorCallback: func(ospath string, err error) godirwalk.ErrorAction {
			if s, ok := errors.Cause(err).(skip); ok {
				return s.action
			}
			return godirwalk.Halt
		},
		Unsorted:            true,
		FollowSymbolicLinks: true,
	})
}
