package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/loopcontext/locsync"
)

func extractCommand(newSync factory, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Print the keys referenced under the root directory, one per line",
		ArgsUsage: "[root]",
		Flags: flagSets(sourceFlags(), []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the keys to this file instead of stdout",
			},
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return fmt.Errorf("extract: expected at most one root directory, got %d", c.NArg())
			}
			cfg, err := loadConfig(c, log)
			if err != nil {
				return err
			}
			if c.NArg() == 1 {
				cfg.RootDir = c.Args().First()
			}
			s, err := newSync(cfg)
			if err != nil {
				return err
			}
			keys, err := s.Extract()
			if err != nil {
				return err
			}
			out := c.String("out")
			if out == "" {
				return locsync.WriteKeys(c.App.Writer, keys)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			if err := locsync.WriteKeys(f, keys); err != nil {
				_ = f.Close()
				return fmt.Errorf("extract: write %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("extract: close %s: %w", out, err)
			}
			log.WithFields(logrus.Fields{"path": out, "keys": keys.Len()}).Info("wrote keys")
			return nil
		},
	}
}
