package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/loopcontext/locsync"
)

// factory builds the Synchronizer a command runs against.
type factory func(locsync.Config) (locsync.Synchronizer, error)

func main() {
	// A .env file in the working directory may carry LOCSYNC_* settings.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "locsync: %v\n", err)
		os.Exit(1)
	}
	if err := newApp(locsync.New).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "locsync: %v\n", err)
		os.Exit(1)
	}
}

func newApp(newSync factory) *cli.App {
	log := logrus.New()
	return &cli.App{
		Name:  "locsync",
		Usage: "keep translation files in step with the keys used in source code",
		Description: `locsync scans a source tree for translate('key') calls and adds a placeholder
entry to every translation file (JSON, YAML or TOML) that lacks one of the keys.
Existing entries are never changed. Options come from flags, LOCSYNC_* environment
variables (a .env file is loaded when present) or a --config file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or TOML config file",
				EnvVars: []string{"LOCSYNC_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Format log output as JSON",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log debug details",
				EnvVars: []string{"LOCSYNC_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("json") {
				log.SetFormatter(&logrus.JSONFormatter{})
			} else {
				log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			}
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			log.SetOutput(c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			extractCommand(newSync, log),
			mergeCommand(newSync, log),
			syncCommand(newSync, log),
			statusCommand(newSync, log),
		},
	}
}
