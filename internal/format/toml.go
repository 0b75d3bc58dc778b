package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

// Decode takes values from the regular decoder and key order from the
// expression parser, which also rejects tables and dotted keys.
func (tomlCodec) Decode(data []byte) (*Mapping, error) {
	var values map[string]interface{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	order, err := tomlKeyOrder(data)
	if err != nil {
		return nil, err
	}
	m := NewMapping()
	for _, key := range order {
		raw, ok := values[key]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value of %q is %T", ErrNotFlat, key, raw)
		}
		m.Set(key, value)
	}
	if m.Len() != len(values) {
		return nil, fmt.Errorf("%w: %d top-level keys, %d plain entries", ErrNotFlat, len(values), m.Len())
	}
	return m, nil
}

func tomlKeyOrder(data []byte) ([]string, error) {
	p := unstable.Parser{}
	p.Reset(data)
	var keys []string
	for p.NextExpression() {
		expr := p.Expression()
		if expr.Kind != unstable.KeyValue {
			return nil, fmt.Errorf("%w: unexpected %v expression", ErrNotFlat, expr.Kind)
		}
		var parts []string
		it := expr.Key()
		for it.Next() {
			parts = append(parts, string(it.Node().Data))
		}
		if len(parts) != 1 {
			return nil, fmt.Errorf("%w: dotted key %q", ErrNotFlat, strings.Join(parts, "."))
		}
		keys = append(keys, parts[0])
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return keys, nil
}

func (tomlCodec) Encode(m *Mapping) ([]byte, error) {
	var buf bytes.Buffer
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		line, err := toml.Marshal(map[string]string{pair.Key: pair.Value})
		if err != nil {
			return nil, fmt.Errorf("encode toml %q: %w", pair.Key, err)
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
