// Package locsync finds localization keys used in source code and adds placeholder
// entries for the ones missing from translation files.
package locsync

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/loopcontext/locsync/internal/format"
)

//go:generate mockgen -source=$GOFILE -package mock_locsync -destination=test/mock/$GOFILE

type Synchronizer interface {
	// Extract collects the keys referenced under the configured root directory.
	Extract() (KeySet, error)
	// Merge adds the placeholder for every key missing from the configured targets.
	Merge(keys KeySet) (*Summary, error)
	// Sync runs Extract followed by Merge.
	Sync() (*Summary, error)
	// Status reports coverage of keys for every configured target.
	Status(keys KeySet) ([]FileStatus, error)
}

type DefaultSynchronizer struct {
	cfg       Config
	extractor *Extractor
	merger    *Merger
}

// New validates the pattern and fills defaults. RootDir and Targets are checked
// by the operations that need them, so a config without targets can still Extract.
func New(cfg Config) (Synchronizer, error) {
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	extractor, err := NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	merger, err := NewMerger(cfg)
	if err != nil {
		return nil, err
	}
	return &DefaultSynchronizer{cfg: cfg, extractor: extractor, merger: merger}, nil
}

func (s *DefaultSynchronizer) Extract() (KeySet, error) {
	return s.extractor.Extract(s.cfg.RootDir)
}

func (s *DefaultSynchronizer) Merge(keys KeySet) (*Summary, error) {
	if len(s.cfg.Targets) == 0 {
		return nil, newError(KindConfig, "", ErrNoTargets)
	}
	return s.merger.Merge(keys, s.cfg.Targets)
}

func (s *DefaultSynchronizer) Sync() (*Summary, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := s.Extract()
	if err != nil {
		return nil, err
	}
	return s.Merge(keys)
}

// Status checks every target; with ContinueOnError a failing target is skipped
// and reported in the aggregated error.
func (s *DefaultSynchronizer) Status(keys KeySet) ([]FileStatus, error) {
	if len(s.cfg.Targets) == 0 {
		return nil, newError(KindConfig, "", ErrNoTargets)
	}
	var out []FileStatus
	var errs *multierror.Error
	for _, path := range s.cfg.Targets {
		st, err := CheckCoverage(keys, path, s.cfg.Placeholder)
		if err != nil {
			if !s.cfg.ContinueOnError {
				return out, err
			}
			errs = multierror.Append(errs, err)
			continue
		}
		out = append(out, st)
	}
	return out, errs.ErrorOrNil()
}

// DiscoverTargets lists the translation files directly inside dir, in a format
// locsync can read, sorted by name. Hidden files are ignored.
func DiscoverTargets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(KindConfig, dir, err)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !format.Supported(name) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out, nil
}
