package main

import (
	"fmt"
	"io"
	"os"

	"github.com/birkland/assetpath"
	"github.com/birkland/assetpath/catalog"
	"github.com/birkland/assetpath/fsys"
	"github.com/birkland/assetpath/manifest"
	"github.com/birkland/assetpath/uri"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var putOpts = struct {
	update bool
	next   bool
}{}

var put = cli.Command{
	Name:  "put",
	Usage: "Write stdin to an asset",
	Description: `Writes the content of stdin to the path the URI resolves to as a
	new asset.  Missing directories are created.  By default the file is
	replaced atomically once all of stdin has been read; with -update, it is
	written in place.

	With -next, the version in the URI is ignored, and the content is
	written as the version after the asset's latest.  For example, if
	versions.json names v10 as latest

	  echo '#usda 1.0' | assetpath put -next asset:chair

	writes chair/v11/chair.usd.  versions.json is never modified.`,
	ArgsUsage: "uri",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "update, u",
			Usage:       "Write in place rather than atomically replacing",
			Destination: &putOpts.update,
		},
		cli.BoolFlag{
			Name:        "next",
			Usage:       "Write the version after the latest",
			Destination: &putOpts.next,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.Errorf("expected exactly one URI, got %d", c.NArg())
		}
		return putAction(c.App.Writer, os.Stdin, c.Args().First())
	},
}

func putAction(w io.Writer, in io.Reader, u string) error {
	cfg := config()

	r, err := newResolver(cfg)
	if err != nil {
		return err
	}

	if putOpts.next {
		name, _ := uri.Parse(u)
		next, err := nextVersion(cfg, name)
		if err != nil {
			return err
		}
		u = uri.Format(name, string(next))
	}

	mode := fsys.Replace
	if putOpts.update {
		mode = fsys.Update
	}

	resolved := r.ResolveForNewAsset(u)
	out, err := r.OpenAssetForWrite(resolved, mode)
	if err != nil {
		return errors.Wrapf(err, "could not open %s for writing", u)
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Rollback()
		return errors.Wrapf(err, "could not write %s", resolved)
	}

	if err = out.Close(); err != nil {
		return errors.Wrapf(err, "could not commit %s", resolved)
	}

	fmt.Fprintf(w, "%s\t%s\n", u, resolved)
	return nil
}

// nextVersion finds the version after the latest one.  The manifest decides
// which is latest if it can; otherwise it is the highest version on the
// local disk.  An asset with no versions at all starts at v1.
func nextVersion(cfg assetpath.Config, name string) (manifest.VersionID, error) {
	if name == "" {
		return "", errors.New("no asset name given")
	}

	m, err := manifest.Read(cfg.FS, cfg.AssetRoot, name)
	if err == nil && m.Latest != "" {
		return manifest.VersionID(m.Latest).Increment()
	}

	var highest manifest.VersionID
	err = catalog.Walk(cfg.AssetRoot, catalog.Select{Type: catalog.Version}, func(e catalog.Entry) error {
		v := manifest.VersionID(e.Version)
		if e.Name == name && v.Valid() && (highest == "" || highest.Less(v)) {
			highest = v
		}
		return nil
	}, name)
	if err != nil && errors.Cause(err) != catalog.ErrNoAsset {
		return "", errors.Wrapf(err, "could not list versions of %s", name)
	}

	if highest == "" {
		return "v1", nil
	}
	return highest.Increment()
}
