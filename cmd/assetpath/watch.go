package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/birkland/assetpath"
	"github.com/birkland/assetpath/uri"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var watch = cli.Command{
	Name:  "watch",
	Usage: "Follow the latest version of assets",
	Description: `Prints the path each asset's latest version resolves to, then
	prints it again whenever it changes, until interrupted.  A change is
	noticed whenever something is created, removed, or renamed inside an
	asset's directory or one of its version directories, such as
	versions.json being rewritten, a new version directory appearing, or
	an asset file landing in a version directory.`,
	ArgsUsage: "name...",
	Action: func(c *cli.Context) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watchAction(ctx, c.App.Writer, c.Args())
	},
}

// follower tracks the watched directories of each asset, and what each
// asset's latest version last resolved to.
type follower struct {
	w       io.Writer
	r       assetpath.Resolver
	watcher *fsnotify.Watcher
	assets  map[string]string // asset directory -> name
	dirs    map[string]string // any watched directory -> name
	last    map[string]string
}

func watchAction(ctx context.Context, w io.Writer, names []string) error {
	if len(names) == 0 {
		return errors.New("no asset names given")
	}

	cfg := config()
	r, err := newResolver(cfg)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start watching")
	}
	defer watcher.Close()

	fl := &follower{
		w:       w,
		r:       r,
		watcher: watcher,
		assets:  make(map[string]string, len(names)),
		dirs:    make(map[string]string),
		last:    make(map[string]string, len(names)),
	}

	for _, name := range names {
		dir := filepath.Clean(filepath.Join(cfg.AssetRoot, filepath.FromSlash(name)))
		if err := fl.add(dir, name); err != nil {
			return err
		}
		fl.assets[dir] = name

		children, err := os.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", dir)
		}
		for _, child := range children {
			if child.IsDir() {
				if err := fl.add(filepath.Join(dir, child.Name()), name); err != nil {
					return err
				}
			}
		}

		fl.report(name)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := fl.handle(event); err != nil {
				return err
			}
			cfg.Logger.Debug("asset changed", "event", event.String())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "error watching assets")
		}
	}
}

func (fl *follower) add(dir, name string) error {
	if err := fl.watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "could not watch %s", dir)
	}
	fl.dirs[dir] = name
	return nil
}

func (fl *follower) handle(event fsnotify.Event) error {
	parent := filepath.Dir(event.Name)
	name, ok := fl.dirs[parent]
	if !ok {
		return nil
	}

	// New version directories are watched before re-resolving, so an asset
	// file written into one is either seen now or produces its own event.
	if _, isAsset := fl.assets[parent]; isAsset && event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fl.add(event.Name, name); err != nil {
				return err
			}
		}
	}

	fl.report(name)
	return nil
}

// report prints what the asset's latest version resolves to, if that differs
// from what it resolved to previously.
func (fl *follower) report(name string) {
	u := uri.Format(name, uri.Latest)
	current := fl.r.Resolve(u).String()
	if current != fl.last[name] {
		fmt.Fprintf(fl.w, "%s\t%s\t%s\n", time.Now().Format(time.RFC3339), u, current)
	}
	fl.last[name] = current
}
