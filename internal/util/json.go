package util

import "encoding/json"

// UnmarshalOr decodes raw JSON into T, returning fallback when the input is
// empty or malformed. Rows written by earlier versions of the platform may
// carry truncated or null JSON columns, so reads must degrade instead of erroring.
func UnmarshalOr[T any](raw []byte, fallback T) T {
	if len(raw) == 0 {
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback
	}

	return out
}

// MarshalOrNull encodes v to JSON, falling back to the JSON null literal.
// Keeps writes total: a marshal failure must never abort a larger mutation.
func MarshalOrNull(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}

	return raw
}
