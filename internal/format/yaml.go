package format

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

// Decode keeps document order through yaml.MapSlice. Non-string keys (e.g. `1:` or
// `yes:`) are stored in their printed form; values must be strings.
func (yamlCodec) Decode(data []byte) (*Mapping, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	m := NewMapping()
	for _, item := range doc {
		key := fmt.Sprint(item.Key)
		value, ok := item.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value of %q is %T", ErrNotFlat, key, item.Value)
		}
		m.Set(key, value)
	}
	return m, nil
}

func (yamlCodec) Encode(m *Mapping) ([]byte, error) {
	doc := make(yaml.MapSlice, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		doc = append(doc, yaml.MapItem{Key: pair.Key, Value: pair.Value})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}
