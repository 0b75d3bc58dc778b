package format

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const jsonIndent = "    "

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(data []byte) (*Mapping, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrNotFlat)
	}
	m := NewMapping()
	if err := json.Unmarshal(trimmed, m); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return m, nil
}

// Encode writes one entry per line with four-space indentation. Strings are written
// without HTML or non-ASCII escaping and there is no trailing newline.
func (jsonCodec) Encode(m *Mapping) ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		key, err := jsonString(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := jsonString(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteString(jsonIndent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if pair.Next() != nil {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode json string: %w", err)
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into the literal characters. An escaped backslash is
// copied as a pair, so a source text of `\\u2028` keeps its escaping.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch esc := b[i:]; {
		case bytes.HasPrefix(esc, []byte(`\u2028`)):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(esc, []byte(`\u2029`)):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}
