package main

import (
	"fmt"
	"io"

	"github.com/birkland/assetpath/uri"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var parse = cli.Command{
	Name:  "parse",
	Usage: "Split asset URIs into name and version",
	Description: `Prints the asset name and version token of each URI, without
	touching the filesystem.  Strings that are not asset URIs print as "-".

	  assetpath parse asset:chair asset:chair?v=10

	prints

	  asset:chair         chair    latest
	  asset:chair?v=10    chair    v10`,
	ArgsUsage: "uri...",
	Action: func(c *cli.Context) error {
		return parseAction(c.App.Writer, c.Args())
	},
}

func parseAction(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("no URIs given")
	}

	for _, arg := range args {
		name, version := uri.Parse(arg)
		fmt.Fprintf(w, "%s\t%s\t%s\n", arg, dash(name), dash(version))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
