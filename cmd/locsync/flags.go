package main

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/loopcontext/locsync"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Source directory to scan (default: current directory)",
			EnvVars: []string{"LOCSYNC_ROOT"},
		},
		&cli.StringSliceFlag{
			Name:    "ext",
			Usage:   "File name suffix of source files to scan",
			EnvVars: []string{"LOCSYNC_EXTENSIONS"},
		},
		&cli.StringFlag{
			Name:    "pattern",
			Usage:   "Regular expression whose first capture group is the key",
			EnvVars: []string{"LOCSYNC_PATTERN"},
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Usage:   "Directory name to skip while scanning",
			EnvVars: []string{"LOCSYNC_EXCLUDE"},
		},
		&cli.BoolFlag{
			Name:    "skip-unreadable",
			Usage:   "Warn about and skip source files that cannot be read or decoded",
			EnvVars: []string{"LOCSYNC_SKIP_UNREADABLE"},
		},
	}
}

func targetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   "Translation file to update (repeatable)",
			EnvVars: []string{"LOCSYNC_TARGETS"},
		},
		&cli.StringFlag{
			Name:    "target-dir",
			Usage:   "Use every .json, .yaml, .yml and .toml file in this directory as a target",
			EnvVars: []string{"LOCSYNC_TARGET_DIR"},
		},
		&cli.StringFlag{
			Name:    "placeholder",
			Usage:   "Value written for missing keys (default: " + locsync.DefaultPlaceholder + ")",
			EnvVars: []string{"LOCSYNC_PLACEHOLDER"},
		},
		&cli.BoolFlag{
			Name:    "continue-on-error",
			Usage:   "Keep going when a target fails and report all failures at the end",
			EnvVars: []string{"LOCSYNC_CONTINUE_ON_ERROR"},
		},
	}
}

func writeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "atomic",
			Usage:   "Write through a temporary file and rename instead of rewriting in place",
			EnvVars: []string{"LOCSYNC_ATOMIC"},
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Report missing keys without writing",
			EnvVars: []string{"LOCSYNC_DRY_RUN"},
		},
	}
}

// loadConfig starts from the --config file, if any, and overrides it with the
// flags set on the command line or through the environment.
func loadConfig(c *cli.Context, log logrus.FieldLogger) (locsync.Config, error) {
	var cfg locsync.Config
	if path := c.String("config"); path != "" {
		loaded, err := locsync.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		log.WithField("path", path).Debug("loaded config file")
	}

	if c.IsSet("root") {
		cfg.RootDir = c.String("root")
	}
	if c.IsSet("ext") {
		cfg.Extensions = c.StringSlice("ext")
	}
	if c.IsSet("pattern") {
		cfg.Pattern = c.String("pattern")
	}
	if c.IsSet("exclude") {
		cfg.Exclude = c.StringSlice("exclude")
	}
	if c.IsSet("skip-unreadable") {
		cfg.SkipUnreadable = c.Bool("skip-unreadable")
	}
	if c.IsSet("target") {
		cfg.Targets = c.StringSlice("target")
	}
	if c.IsSet("target-dir") {
		found, err := locsync.DiscoverTargets(c.String("target-dir"))
		if err != nil {
			return cfg, err
		}
		cfg.Targets = append(cfg.Targets, found...)
	}
	if c.IsSet("placeholder") {
		cfg.Placeholder = c.String("placeholder")
	}
	if c.IsSet("continue-on-error") {
		cfg.ContinueOnError = c.Bool("continue-on-error")
	}
	if c.IsSet("atomic") {
		cfg.Atomic = c.Bool("atomic")
	}
	if c.IsSet("dry-run") {
		cfg.DryRun = c.Bool("dry-run")
	}

	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	if err := cfg.Resolve(""); err != nil {
		return cfg, err
	}
	cfg.Logger = log
	return cfg, nil
}

func flagSets(sets ...[]cli.Flag) []cli.Flag {
	return lo.Flatten(sets)
}
