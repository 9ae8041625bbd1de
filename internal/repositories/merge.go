package repositories

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MergeJSON overlays the top-level keys present in patch onto rec and
// returns the result. Nested objects and arrays are replaced whole. The "id"
// key is ignored.
func MergeJSON[T any](rec T, patch []byte) (T, error) {
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return rec, fmt.Errorf("patch must be a JSON object: %w", err)
	}

	base, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return rec, err
	}

	for key, val := range overlay {
		if strings.EqualFold(key, "id") {
			continue
		}
		for existing := range fields {
			if existing != key && strings.EqualFold(existing, key) {
				delete(fields, existing)
			}
		}
		fields[key] = val
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return rec, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return rec, fmt.Errorf("patch does not fit record: %w", err)
	}
	return out, nil
}
