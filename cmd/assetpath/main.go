package main

import (
	"log/slog"
	"os"

	"github.com/birkland/assetpath"
	_ "github.com/birkland/assetpath/resolv"
	"github.com/birkland/assetpath/uri"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	root  string
	debug bool
}{}

func main() {
	app := cli.NewApp()
	app.Name = "assetpath"
	app.Usage = "Resolve asset: URIs to files under an asset root"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		parse,
		resolve,
		stat,
		cat,
		put,
		ls,
		watch,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "root, r",
			Usage:       "Asset root directory (default $" + assetpath.EnvAssetRoot + ")",
			Destination: &mainOpts.root,
		},
		cli.BoolFlag{
			Name:        "debug, d",
			Usage:       "Log resolver diagnostics to stderr",
			EnvVar:      "ASSETPATH_DEBUG",
			Destination: &mainOpts.debug,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logger().Error("assetpath failed", "error", err)
		os.Exit(1)
	}
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if mainOpts.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// The environment supplies the asset root, unless overridden by -root
func config() assetpath.Config {
	cfg := assetpath.ConfigFromEnv()
	if mainOpts.root != "" {
		cfg.AssetRoot = mainOpts.root
	}
	cfg.Logger = logger()
	return cfg.WithDefaults()
}

func newResolver(cfg assetpath.Config) (assetpath.Resolver, error) {
	return assetpath.New(uri.Scheme, cfg)
}
