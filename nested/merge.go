package nested

import (
	"errors"
	"fmt"
)

// ErrNotMapping is returned when an operation requires a mapping at the top
// level and was given something else.
var ErrNotMapping = errors.New("value is not a mapping")

// Merge fills gaps in base from defaults and returns the updated base.
//
// For each key in defaults: a mapping value is merged recursively into the
// corresponding base mapping (created empty when base holds no mapping
// there); any other value is copied only when the base slot is absent or
// nil. Keys already present with a non-nil value keep their base value.
// Both operands must be mappings at the top level; anything else fails with
// ErrNotMapping. defaults is never mutated.
func Merge(base, defaults any) (map[string]any, error) {
	baseMap, ok := base.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("base %w, got %T", ErrNotMapping, base)
	}

	defaultsMap, ok := defaults.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("defaults %w, got %T", ErrNotMapping, defaults)
	}

	return merge(baseMap, defaultsMap), nil
}

func merge(base, defaults map[string]any) map[string]any {
	for key, fallback := range defaults {
		nestedDefaults, ok := fallback.(map[string]any)
		if ok {
			nestedBase, ok := base[key].(map[string]any)
			if !ok {
				nestedBase = make(map[string]any, len(nestedDefaults))
			}

			base[key] = merge(nestedBase, nestedDefaults)

			continue
		}

		existing, present := base[key]
		if !present || existing == nil {
			base[key] = fallback
		}
	}

	return base
}

// NormalizeDefaults expands a flat defaults specification, whose keys are
// delimited paths, into the equivalent nested structure.
//
// Each entry is written with Set semantics, so entries sharing a path prefix
// coexist: {"a.b": 1, "a.c": 2} becomes {"a": {"b": 1, "c": 2}}. An empty
// delimiter falls back to DefaultDelimiter.
func NormalizeDefaults(spec map[string]any, delimiter string) (map[string]any, error) {
	normalized := make(map[string]any, len(spec))

	for rawPath, value := range spec {
		path, err := ParsePath(rawPath, delimiter)
		if err != nil {
			return nil, fmt.Errorf("defaults key %q: %w", rawPath, err)
		}

		Set(normalized, path, value)
	}

	return normalized, nil
}
