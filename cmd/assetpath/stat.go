package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var stat = cli.Command{
	Name:      "stat",
	Usage:     "Show resolved paths and modification times",
	ArgsUsage: "uri...",
	Action: func(c *cli.Context) error {
		return statAction(c.App.Writer, c.Args())
	},
}

func statAction(w io.Writer, uris []string) error {
	if len(uris) == 0 {
		return errors.New("no URIs given")
	}

	r, err := newResolver(config())
	if err != nil {
		return err
	}

	for _, u := range uris {
		resolved := r.Resolve(u)
		if !resolved.IsResolved() {
			return errors.Errorf("%s did not resolve", u)
		}

		mtime, ok := r.ModificationTime(u, resolved)
		if !ok {
			return errors.Errorf("no modification time for %s", resolved)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", u, resolved, mtime.Format(time.RFC3339))
	}
	return nil
}
