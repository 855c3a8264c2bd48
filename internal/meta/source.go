package meta

import "fmt"

// SourceMeta is parsed Zola front matter: an open-shaped map of TOML
// values. Accessors report a ShapeError when a key holds a value of an
// unexpected dynamic type instead of coercing it.
type SourceMeta map[string]any

// ShapeError reports a front matter value with an unexpected type.
type ShapeError struct {
	Key  string
	Want string
	Got  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("front matter key %q: expected %s, got %T", e.Key, e.Want, e.Got)
}

// String returns the string stored at key. A missing key is (_, false, nil).
func (m SourceMeta) String(key string) (string, bool, error) {
	v, ok := m[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, &ShapeError{Key: key, Want: "string", Got: v}
	}
	return s, true, nil
}

// Table returns the nested table stored at key.
func (m SourceMeta) Table(key string) (SourceMeta, bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	t, ok := v.(map[string]any)
	if !ok {
		return nil, false, &ShapeError{Key: key, Want: "table", Got: v}
	}
	return SourceMeta(t), true, nil
}

// StringList returns the array of strings stored at key. An array with a
// non-string element is a shape error, not a partial result.
func (m SourceMeta) StringList(key string) ([]string, bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false, &ShapeError{Key: key, Want: "array of strings", Got: v}
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		s, ok := el.(string)
		if !ok {
			return nil, false, &ShapeError{Key: key, Want: "array of strings", Got: el}
		}
		out = append(out, s)
	}
	return out, true, nil
}
