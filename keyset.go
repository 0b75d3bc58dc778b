package locsync

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// KeySet is a deduplicated set of localization keys. It has no order; use Sorted
// for a stable view.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys, dropping empty strings and duplicates.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.add(k)
	}
	return s
}

func (s KeySet) add(key string) {
	if key == "" {
		return
	}
	s[key] = struct{}{}
}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

func (s KeySet) Sorted() []string {
	keys := lo.Keys(map[string]struct{}(s))
	sort.Strings(keys)
	return keys
}

// Missing returns the keys of s not present in have, sorted.
func (s KeySet) Missing(have func(key string) bool) []string {
	return lo.Filter(s.Sorted(), func(key string, _ int) bool {
		return !have(key)
	})
}

// ReadKeys reads a key list with one key per line, the format written by
// WriteKeys. Lines are taken verbatim; only empty lines are skipped.
func ReadKeys(r io.Reader) (KeySet, error) {
	keys := make(KeySet)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		keys.add(strings.TrimSuffix(line, "\n"))
		if err == io.EOF {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteKeys writes keys sorted, one per line.
func WriteKeys(w io.Writer, keys KeySet) error {
	bw := bufio.NewWriter(w)
	for _, key := range keys.Sorted() {
		if _, err := bw.WriteString(key + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Matcher finds localization keys in one line of source text.
type Matcher interface {
	FindKeys(line string) []string
}

// RegexpMatcher captures the first submatch of every pattern match.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// NewRegexpMatcher compiles pattern, which must contain at least one capture group.
func NewRegexpMatcher(pattern string) (*RegexpMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, errNoCaptureGroup
	}
	return &RegexpMatcher{re: re}, nil
}

func (m *RegexpMatcher) FindKeys(line string) []string {
	matches := m.re.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		if match[1] != "" {
			out = append(out, match[1])
		}
	}
	return out
}

func (m *RegexpMatcher) String() string {
	return m.re.String()
}
