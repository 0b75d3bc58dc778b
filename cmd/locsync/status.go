package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func statusCommand(newSync factory, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Report missing, untranslated, invalid and stale keys per translation file",
		ArgsUsage: "[target...]",
		Flags: flagSets(sourceFlags(), targetFlags(), []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail unless every target is complete",
			},
		}),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, log)
			if err != nil {
				return err
			}
			cfg.Targets = append(cfg.Targets, c.Args().Slice()...)
			s, err := newSync(cfg)
			if err != nil {
				return err
			}
			keys, err := s.Extract()
			if err != nil {
				return err
			}
			statuses, err := s.Status(keys)
			printStatus(c.App.Writer, keys.Len(), statuses)
			if err != nil {
				return err
			}
			if !c.Bool("strict") {
				return nil
			}
			incomplete := 0
			for _, st := range statuses {
				if !st.Complete() {
					incomplete++
				}
			}
			if incomplete > 0 {
				return fmt.Errorf("%d of %d target files are incomplete", incomplete, len(statuses))
			}
			return nil
		},
	}
}
