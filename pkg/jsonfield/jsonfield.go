// Package jsonfield converts structured values (lists and objects) to and
// from the encoded text columns they live in. Decoding is tolerant by
// contract: malformed stored text degrades to an empty default instead of
// failing the request that read it.
package jsonfield

import "encoding/json"

// Encode returns the textual storage form of a structured value.
// Absent values map to NULL, already-encoded strings pass through
// unchanged, and anything else is serialized. A value that cannot be
// serialized is stored as NULL rather than erroring.
func Encode(v interface{}) *string {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	encoded := string(raw)
	if encoded == "null" {
		return nil
	}
	return &encoded
}

// Decode parses stored text into dst. It reports false, leaving dst
// untouched, when the column is NULL/empty or the text is malformed.
func Decode(stored *string, dst interface{}) bool {
	if stored == nil || *stored == "" {
		return false
	}
	return json.Unmarshal([]byte(*stored), dst) == nil
}

// List decodes a stored list column. Absent columns decode to an empty
// slice; malformed text decodes to nil so callers can substitute their
// own default.
func List[T any](stored *string) []T {
	if stored == nil || *stored == "" {
		return []T{}
	}
	var out []T
	if json.Unmarshal([]byte(*stored), &out) != nil {
		return nil
	}
	return out
}

// Object decodes a stored object column with the same tolerance as List.
func Object(stored *string) map[string]interface{} {
	if stored == nil || *stored == "" {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if json.Unmarshal([]byte(*stored), &out) != nil {
		return nil
	}
	return out
}
