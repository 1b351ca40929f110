package core

import (
	"encoding/json"
	"fmt"
	"slices"
)

// objectFields splits a raw JSON object into its keys, failing when the
// input is not an object.
func objectFields(entity string, raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s entry is not an object: %s", ErrInvalidData, entity, err)
	}
	return fields, nil
}

// requiredField decodes fields[key] into dst, failing when the key is
// absent or carries the wrong type.
func requiredField(entity string, fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s is missing key %q", ErrInvalidData, entity, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s key %q: %s", ErrInvalidData, entity, key, err)
	}
	return nil
}

// optionalField decodes fields[key] into dst when present; dst keeps its
// value otherwise.
func optionalField(entity string, fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s key %q: %s", ErrInvalidData, entity, key, err)
	}
	return nil
}

// warnUnknownKeys logs every input key outside the recognized set; extra
// keys are a diagnostic, never an error.
func warnUnknownKeys(entity string, fields map[string]json.RawMessage, known []string) {
	for key := range fields {
		if !slices.Contains(known, key) {
			logger.Warnf("unknown key for %s: %q", entity, key)
		}
	}
}
