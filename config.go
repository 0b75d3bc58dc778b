package locsync

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) config file. Unknown
// options are rejected. Relative root_dir and targets are resolved against the
// directory holding the file, and a leading ~ is expanded.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, newError(KindConfig, path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, newError(KindConfig, expanded, err)
	}
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, &cfg)
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		err = fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(expanded))
	}
	if err != nil {
		return cfg, newError(KindConfig, expanded, err)
	}
	if err := cfg.Resolve(filepath.Dir(expanded)); err != nil {
		return cfg, newError(KindConfig, expanded, err)
	}
	return cfg, nil
}

// Resolve expands ~ in RootDir and Targets and makes relative paths relative to base.
func (c *Config) Resolve(base string) error {
	resolve := func(p string) (string, error) {
		if p == "" {
			return p, nil
		}
		p, err := homedir.Expand(p)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(p) && base != "" {
			p = filepath.Join(base, p)
		}
		return filepath.Clean(p), nil
	}
	var err error
	if c.RootDir, err = resolve(c.RootDir); err != nil {
		return err
	}
	for i, t := range c.Targets {
		if c.Targets[i], err = resolve(t); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the options needed for a full sync run: a root directory, at
// least one target and a usable pattern.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RootDir) == "" {
		return newError(KindConfig, "", ErrNoRoot)
	}
	if len(c.Targets) == 0 {
		return newError(KindConfig, "", ErrNoTargets)
	}
	for i, t := range c.Targets {
		if strings.TrimSpace(t) == "" {
			return newError(KindConfig, "", fmt.Errorf("target %d is empty", i))
		}
	}
	return c.applyDefaults()
}

// applyDefaults fills empty options and compiles the pattern.
func (c *Config) applyDefaults() error {
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
	if len(c.Extensions) == 0 {
		c.Extensions = StringList{DefaultExtension}
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			return newError(KindConfig, "", fmt.Errorf("empty extension"))
		}
	}
	if c.Matcher == nil {
		pattern := c.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		m, err := NewRegexpMatcher(pattern)
		if err != nil {
			return newError(KindConfig, "", fmt.Errorf("pattern %q: %w", pattern, err))
		}
		c.Matcher = m
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	return nil
}
