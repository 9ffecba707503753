package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/birkland/assetpath/catalog"
	"github.com/urfave/cli"
)

var lsOpts = struct {
	physical bool
	typ      string
	latest   bool
}{}

var ls = cli.Command{
	Name:  "ls",
	Usage: "List assets, versions, and files under the asset root",
	Description: `Lists the contents of the asset root, or of the named assets.

	Assets are listed by the URI of their latest version, along with the
	version versions.json names.  Versions and files are listed by their
	versioned URI, marked with * if they are the latest.  For example,
	the following lists every file of asset chair

	  assetpath ls -t file chair

	Names may also be directories containing assets (e.g. props), in
	which case every asset beneath them is listed.`,
	ArgsUsage: "[ name ] ...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "latest, l",
			Usage:       "Show only the latest version of each asset",
			Destination: &lsOpts.latest,
		},
		cli.BoolFlag{
			Name:        "physical, p",
			Usage:       "Show filesystem paths as well as URIs",
			Destination: &lsOpts.physical,
		},
		cli.StringFlag{
			Name:        "type, t",
			Usage:       "Show only {asset, version, file} entries",
			Destination: &lsOpts.typ,
		},
	},
	Action: func(c *cli.Context) error {
		return lsAction(c.App.Writer, c.Args())
	},
}

func lsAction(w io.Writer, names []string) error {
	desired := catalog.Select{
		Type:   catalog.ParseType(lsOpts.typ),
		Latest: lsOpts.latest,
	}

	return catalog.Walk(config().AssetRoot, desired, func(e catalog.Entry) error {
		if e.Type == catalog.Root {
			return nil
		}

		fields := []string{e.URI()}
		switch {
		case e.Type == catalog.Asset:
			fields = append(fields, dash(e.Latest))
		case e.IsLatest():
			fields = append(fields, "*")
		default:
			fields = append(fields, "")
		}

		if lsOpts.physical {
			fields = append(fields, e.Addr)
		}

		fmt.Fprintln(w, strings.Join(fields, "    "))
		return nil
	}, names...)
}
