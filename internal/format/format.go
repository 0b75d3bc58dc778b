// Package format reads and writes flat translation files (key -> translated string)
// while keeping the order in which keys appear in the document.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrUnsupported is returned when no codec is registered for a file extension.
	ErrUnsupported = errors.New("unsupported translation file format")
	// ErrNotFlat is returned when a document is not a flat mapping of string keys to string values.
	ErrNotFlat = errors.New("not a flat key/value mapping")
)

// Mapping is an insertion-ordered translation mapping. Keys loaded from a file keep
// their document order; keys added with Set are appended.
type Mapping = orderedmap.OrderedMap[string, string]

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return orderedmap.New[string, string]()
}

// Codec decodes and encodes one translation file format.
type Codec interface {
	Name() string
	Decode(data []byte) (*Mapping, error)
	Encode(m *Mapping) ([]byte, error)
}

var codecs = map[string]Codec{
	".json": jsonCodec{},
	".yaml": yamlCodec{},
	".yml":  yamlCodec{},
	".toml": tomlCodec{},
}

// ForPath picks the codec for path based on its extension.
func ForPath(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	codec, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return codec, nil
}

// Supported reports whether path has an extension with a registered codec.
func Supported(path string) bool {
	_, ok := codecs[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions lists the registered extensions, sorted.
func Extensions() []string {
	out := make([]string, 0, len(codecs))
	for ext := range codecs {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Keys returns the mapping keys in order.
func Keys(m *Mapping) []string {
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
