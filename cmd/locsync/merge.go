package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/loopcontext/locsync"
)

func mergeCommand(newSync factory, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "Add the keys listed in a key file to translation files",
		ArgsUsage: "[target...]",
		Description: `The key file holds one key per line, as written by 'locsync extract'.
Use '-' to read it from stdin.`,
		Flags: flagSets([]cli.Flag{
			&cli.StringFlag{
				Name:     "keys",
				Aliases:  []string{"k"},
				Usage:    "Key file, or - for stdin",
				Required: true,
			},
		}, targetFlags(), writeFlags()),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, log)
			if err != nil {
				return err
			}
			cfg.Targets = append(cfg.Targets, c.Args().Slice()...)
			keys, err := readKeyFile(c.String("keys"), c.App.Reader)
			if err != nil {
				return err
			}
			s, err := newSync(cfg)
			if err != nil {
				return err
			}
			summary, err := s.Merge(keys)
			printSummary(c.App.Writer, summary, cfg.DryRun)
			return err
		},
	}
}

func syncCommand(newSync factory, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Extract keys and add the missing ones to translation files",
		ArgsUsage: "[target...]",
		Flags: flagSets(sourceFlags(), targetFlags(), writeFlags(), []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Do not write; fail when any target is missing keys",
			},
		}),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, log)
			if err != nil {
				return err
			}
			cfg.Targets = append(cfg.Targets, c.Args().Slice()...)
			check := c.Bool("check")
			if check {
				cfg.DryRun = true
			}
			s, err := newSync(cfg)
			if err != nil {
				return err
			}
			summary, err := s.Sync()
			printSummary(c.App.Writer, summary, cfg.DryRun)
			if err != nil {
				return err
			}
			if changed := summary.Changed(); check && len(changed) > 0 {
				return fmt.Errorf("%d of %d target files are missing keys", len(changed), len(summary.Files))
			}
			return nil
		},
	}
}

func readKeyFile(path string, stdin io.Reader) (locsync.KeySet, error) {
	if path == "-" {
		return locsync.ReadKeys(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	defer f.Close()
	keys, err := locsync.ReadKeys(f)
	if err != nil {
		return nil, fmt.Errorf("read keys %s: %w", path, err)
	}
	return keys, nil
}
