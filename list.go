package locsync

import (
	"fmt"
)

// StringList is a list option that YAML files may also give as a single scalar
// (extensions: .dart or extensions: [.dart, .arb]). TOML files use arrays.
type StringList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *StringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		*l = StringList{t}
		return nil
	case []interface{}:
		out := make(StringList, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("list item %d must be a string, got %T", i, item)
			}
			out = append(out, s)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("must be a string or a list of strings, got %T", v)
	}
}

// MarshalYAML emits a scalar for single-item lists, for readable round-trip.
func (l StringList) MarshalYAML() (interface{}, error) {
	switch len(l) {
	case 0:
		return nil, nil
	case 1:
		return l[0], nil
	default:
		return []string(l), nil
	}
}
