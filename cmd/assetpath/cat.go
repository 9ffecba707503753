package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var cat = cli.Command{
	Name:      "cat",
	Usage:     "Print the content of resolved assets",
	ArgsUsage: "uri...",
	Action: func(c *cli.Context) error {
		return catAction(c.App.Writer, c.Args())
	},
}

func catAction(w io.Writer, uris []string) error {
	if len(uris) == 0 {
		return errors.New("no URIs given")
	}

	r, err := newResolver(config())
	if err != nil {
		return err
	}

	for _, u := range uris {
		asset, err := r.OpenAsset(r.Resolve(u))
		if err != nil {
			return errors.Wrapf(err, "could not open %s", u)
		}

		_, err = io.Copy(w, asset)
		asset.Close()
		if err != nil {
			return errors.Wrapf(err, "could not read %s", u)
		}
	}
	return nil
}
