package locsync

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/loopcontext/locsync/internal/format"
)

// Merger inserts a placeholder entry into target files for every key they lack.
// Existing entries are never modified or removed.
type Merger struct {
	placeholder     string
	atomic          bool
	dryRun          bool
	continueOnError bool
	log             logrus.FieldLogger
}

func NewMerger(cfg Config) (*Merger, error) {
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &Merger{
		placeholder:     cfg.Placeholder,
		atomic:          cfg.Atomic,
		dryRun:          cfg.DryRun,
		continueOnError: cfg.ContinueOnError,
		log:             cfg.Logger,
	}, nil
}

// Merge runs MergeFile for each target in order. By default the first failure
// stops the run; targets rewritten before it keep their changes. With
// continueOnError every target is attempted and failures are aggregated.
func (m *Merger) Merge(keys KeySet, targets []string) (*Summary, error) {
	summary := &Summary{Keys: keys.Len()}
	var errs *multierror.Error
	for _, path := range targets {
		res, err := m.MergeFile(keys, path)
		if err != nil {
			res.Err = err
			summary.Files = append(summary.Files, res)
			if !m.continueOnError {
				return summary, err
			}
			m.log.WithError(err).WithField("path", path).Error("target failed")
			errs = multierror.Append(errs, err)
			continue
		}
		summary.Files = append(summary.Files, res)
	}
	return summary, errs.ErrorOrNil()
}

// MergeFile brings one target up to date with keys. The file is rewritten only
// when at least one key was missing; an empty key set never opens the file.
func (m *Merger) MergeFile(keys KeySet, path string) (FileResult, error) {
	res := FileResult{Path: path}
	codec, err := format.ForPath(path)
	if err != nil {
		return res, newError(KindParse, path, err)
	}
	res.Format = codec.Name()
	if keys.Len() == 0 {
		return res, nil
	}
	if m.atomic && !m.dryRun {
		return m.mergeAtomic(keys, path, codec, res)
	}

	flag := os.O_RDWR
	if m.dryRun {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	mapping, err := m.apply(codec, data, keys, &res)
	if err != nil {
		return res, err
	}
	if !res.Changed() || m.dryRun {
		m.logResult(res)
		return res, nil
	}
	out, err := codec.Encode(mapping)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	if err := rewrite(f, out); err != nil {
		return res, newError(KindWrite, path, err)
	}
	res.Written = true
	m.logResult(res)
	return res, nil
}

func (m *Merger) mergeAtomic(keys KeySet, path string, codec format.Codec, res FileResult) (FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	mapping, err := m.apply(codec, data, keys, &res)
	if err != nil {
		return res, err
	}
	if !res.Changed() {
		m.logResult(res)
		return res, nil
	}
	out, err := codec.Encode(mapping)
	if err != nil {
		return res, newError(KindWrite, path, err)
	}
	if err := replaceFile(path, out, info.Mode().Perm()); err != nil {
		return res, newError(KindWrite, path, err)
	}
	res.Written = true
	m.logResult(res)
	return res, nil
}

// apply decodes data and appends the placeholder for each missing key, in sorted
// key order.
func (m *Merger) apply(codec format.Codec, data []byte, keys KeySet, res *FileResult) (*format.Mapping, error) {
	mapping, err := codec.Decode(data)
	if err != nil {
		return nil, newError(KindParse, res.Path, err)
	}
	res.Existing = mapping.Len()
	res.Added = keys.Missing(func(key string) bool {
		_, ok := mapping.Get(key)
		return ok
	})
	for _, key := range res.Added {
		mapping.Set(key, m.placeholder)
	}
	return mapping, nil
}

func (m *Merger) logResult(res FileResult) {
	entry := m.log.WithFields(logrus.Fields{
		"path":     res.Path,
		"existing": res.Existing,
		"added":    len(res.Added),
	})
	switch {
	case res.Written:
		entry.Info("added missing keys")
	case res.Changed():
		entry.Info("missing keys (dry run, not written)")
	default:
		entry.Debug("target up to date")
	}
}

// rewrite replaces the content of f through the same handle: seek to the start,
// write, then truncate to the new length.
func rewrite(f *os.File, data []byte) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Truncate(int64(len(data)))
}

// replaceFile writes data to a temporary file next to path and renames it over
// path, so readers see either the old or the new content.
func replaceFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
