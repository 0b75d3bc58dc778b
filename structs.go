package locsync

import (
	"github.com/sirupsen/logrus"
)

const (
	DefaultPlaceholder = "missing_translation"
	DefaultPattern     = `translate\('([^']+)'\)`
	DefaultExtension   = ".dart"
)

type Config struct {
	RootDir         string     `yaml:"root_dir" toml:"root_dir"`
	Targets         StringList `yaml:"targets" toml:"targets"`
	Placeholder     string     `yaml:"placeholder" toml:"placeholder"`
	Extensions      StringList `yaml:"extensions" toml:"extensions"`
	Pattern         string     `yaml:"pattern" toml:"pattern"`
	Exclude         StringList `yaml:"exclude" toml:"exclude"`
	SkipUnreadable  bool       `yaml:"skip_unreadable" toml:"skip_unreadable"`
	ContinueOnError bool       `yaml:"continue_on_error" toml:"continue_on_error"`
	Atomic          bool       `yaml:"atomic" toml:"atomic"`
	DryRun          bool       `yaml:"dry_run" toml:"dry_run"`

	// Matcher replaces Pattern when set.
	Matcher Matcher `yaml:"-" toml:"-"`
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger `yaml:"-" toml:"-"`
}

// FileResult describes what a merge did to one target file.
type FileResult struct {
	Path     string
	Format   string
	Existing int
	Added    []string
	Written  bool
	Err      error
}

// Changed reports whether the target lacked at least one key.
func (r FileResult) Changed() bool {
	return len(r.Added) > 0
}

type Summary struct {
	Keys  int
	Files []FileResult
}

// Added is the number of entries inserted across all targets.
func (s *Summary) Added() int {
	n := 0
	for _, f := range s.Files {
		n += len(f.Added)
	}
	return n
}

// Changed lists the targets that lacked keys, whether or not they were written.
func (s *Summary) Changed() []FileResult {
	var out []FileResult
	for _, f := range s.Files {
		if f.Changed() {
			out = append(out, f)
		}
	}
	return out
}

func (s *Summary) Failed() []FileResult {
	var out []FileResult
	for _, f := range s.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// FileStatus is the coverage of one target file against a key set.
type FileStatus struct {
	Path     string
	Language string
	Entries  int
	// Missing keys are referenced in code but absent from the file.
	Missing []string
	// Untranslated keys hold the placeholder or an empty value.
	Untranslated []string
	// Stale keys are present in the file but no longer referenced in code.
	Stale []string
	// Invalid keys have a value that cannot be rendered as a message template.
	Invalid []string
}

// Complete reports whether every key has a usable translation.
func (s FileStatus) Complete() bool {
	return len(s.Missing) == 0 && len(s.Untranslated) == 0 && len(s.Invalid) == 0
}
