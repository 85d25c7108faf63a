package llm

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FieldMap is a field-tolerant view over a model response object. Model
// output drifts: numbers arrive as strings, lists as scalars, objects as
// null. Accessors coerce what they can and return a typed zero for the
// rest, so one bad field never discards the others.
type FieldMap map[string]json.RawMessage

// ParseFields decodes a raw response into a FieldMap. Only a top-level
// non-object fails; field-level mismatches are absorbed by the accessors.
func ParseFields(raw json.RawMessage) (FieldMap, error) {
	var fields FieldMap
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Has reports whether the key was present with a non-null value.
func (f FieldMap) Has(key string) bool {
	raw, ok := f[key]
	return ok && string(raw) != "null"
}

// String returns the trimmed string value for key. A bare number is
// formatted; anything else becomes "".
func (f FieldMap) String(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// Number returns the numeric value for key, accepting a JSON number or a
// numeric string. The bool is false when the key is absent or non-numeric.
func (f FieldMap) Number(key string) (float64, bool) {
	raw, ok := f[key]
	if !ok {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// StringList returns the string elements of the array at key, trimmed, with
// blanks and non-string elements dropped. A non-array value yields nil.
func (f FieldMap) StringList(key string) []string {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Object returns the nested object at key as a FieldMap, empty when the
// value is absent or not an object.
func (f FieldMap) Object(key string) FieldMap {
	raw, ok := f[key]
	if !ok {
		return FieldMap{}
	}
	var nested FieldMap
	if err := json.Unmarshal(raw, &nested); err != nil {
		return FieldMap{}
	}
	return nested
}

// ObjectList returns the object elements of the array at key, skipping
// non-object elements. A non-array value yields nil.
func (f FieldMap) ObjectList(key string) []FieldMap {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []FieldMap
	for _, item := range items {
		var nested FieldMap
		if err := json.Unmarshal(item, &nested); err != nil {
			continue
		}
		out = append(out, nested)
	}
	return out
}
