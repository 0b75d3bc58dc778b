package locsync

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Extractor walks a source tree and collects the keys its Matcher finds in files
// with one of the configured extensions.
type Extractor struct {
	extensions     []string
	exclude        map[string]struct{}
	matcher        Matcher
	skipUnreadable bool
	log            logrus.FieldLogger
}

// NewExtractor builds an Extractor from cfg. Empty fields take their defaults.
func NewExtractor(cfg Config) (*Extractor, error) {
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	exclude := make(map[string]struct{}, len(cfg.Exclude))
	for _, d := range cfg.Exclude {
		d = strings.TrimSpace(d)
		if d != "" {
			exclude[d] = struct{}{}
		}
	}
	return &Extractor{
		extensions:     cfg.Extensions,
		exclude:        exclude,
		matcher:        cfg.Matcher,
		skipUnreadable: cfg.SkipUnreadable,
		log:            cfg.Logger,
	}, nil
}

// Extract scans every selected file under root. Any unreadable directory or file,
// or a file that is not valid UTF-8, aborts the scan unless skipUnreadable is set.
func (e *Extractor) Extract(root string) (KeySet, error) {
	if strings.TrimSpace(root) == "" {
		return nil, newError(KindConfig, "", ErrNoRoot)
	}
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, newError(KindScan, root, err)
	}
	if !info.IsDir() {
		return nil, newError(KindScan, root, ErrNotDirectory)
	}

	keys := make(KeySet)
	scanned, skipped := 0, 0
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if e.skipUnreadable && p != root {
				e.log.WithError(err).WithField("path", p).Warn("skipping unreadable path")
				skipped++
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return newError(KindScan, p, err)
		}
		if d.IsDir() {
			if _, skip := e.exclude[d.Name()]; skip && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !e.selected(d.Name()) {
			return nil
		}
		if err := e.scanFile(p, keys); err != nil {
			if e.skipUnreadable {
				e.log.WithError(err).WithField("path", p).Warn("skipping unreadable file")
				skipped++
				return nil
			}
			return newError(KindScan, p, err)
		}
		scanned++
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"root":    root,
		"files":   scanned,
		"skipped": skipped,
		"keys":    keys.Len(),
	}).Debug("extraction finished")
	return keys, nil
}

func (e *Extractor) selected(name string) bool {
	for _, ext := range e.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (e *Extractor) scanFile(path string, keys KeySet) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.scan(f, keys)
}

// scan applies the matcher line by line, so a match never spans lines.
func (e *Extractor) scan(r io.Reader, keys KeySet) error {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return fmt.Errorf("line %d: %w", lineNo, ErrDecode)
			}
			for _, key := range e.matcher.FindKeys(line) {
				keys.add(key)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
