package main

import (
	"fmt"
	"io"

	"github.com/birkland/assetpath"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var resolveOpts = struct {
	newAsset bool
	explain  bool
	jobs     int
}{}

var resolve = cli.Command{
	Name:  "resolve",
	Usage: "Resolve asset URIs to file paths",
	Description: `Resolves each URI and prints its path, or "-" if it did not
	resolve.  Without a version, the asset's versions.json names the version.

	By default a URI resolves only if its file exists.  With -new, the path
	a new asset would be written to is printed instead.  With -explain,
	the reason is printed for every URI that did not resolve.

	Exits non-zero if any URI did not resolve.`,
	ArgsUsage: "uri...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "new, n",
			Usage:       "Resolve for a new asset; the file need not exist",
			Destination: &resolveOpts.newAsset,
		},
		cli.BoolFlag{
			Name:        "explain, e",
			Usage:       "Print why a URI did not resolve",
			Destination: &resolveOpts.explain,
		},
		cli.IntFlag{
			Name:        "jobs, j",
			Usage:       "Number of URIs to resolve at once",
			Value:       8,
			Destination: &resolveOpts.jobs,
		},
	},
	Action: func(c *cli.Context) error {
		return resolveAction(c.App.Writer, c.Args())
	},
}

// Resolvers may say why resolution failed
type explainer interface {
	Explain(assetPath string) (assetpath.ResolvedPath, error)
	ExplainForNewAsset(assetPath string) (assetpath.ResolvedPath, error)
}

type result struct {
	resolved assetpath.ResolvedPath
	reason   error
}

func resolveAction(w io.Writer, uris []string) error {
	if len(uris) == 0 {
		return errors.New("no URIs given")
	}

	r, err := newResolver(config())
	if err != nil {
		return err
	}

	results, err := resolveAll(r, uris, resolveOpts.newAsset, resolveOpts.jobs)
	if err != nil {
		return err
	}

	var unresolved int
	for i, res := range results {
		path := dash(res.resolved.Path())
		if !res.resolved.IsResolved() {
			unresolved++
		}

		if resolveOpts.explain && res.reason != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\n", uris[i], path, res.reason)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", uris[i], path)
	}

	if unresolved > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d URIs did not resolve", unresolved, len(uris)), 1)
	}
	return nil
}

// Resolves the URIs concurrently, at most jobs at a time.  Results are in
// the same order as the URIs.
func resolveAll(r assetpath.Resolver, uris []string, newAsset bool, jobs int) ([]result, error) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]result, len(uris))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, u := range uris {
		i, u := i, u
		g.Go(func() error {
			results[i] = resolveOne(r, u, newAsset)
			return nil
		})
	}

	return results, g.Wait()
}

func resolveOne(r assetpath.Resolver, u string, newAsset bool) result {
	if x, ok := r.(explainer); ok {
		explain := x.Explain
		if newAsset {
			explain = x.ExplainForNewAsset
		}
		resolved, err := explain(u)
		return result{resolved: resolved, reason: err}
	}

	if newAsset {
		return result{resolved: r.ResolveForNewAsset(u)}
	}
	return result{resolved: r.Resolve(u)}
}
