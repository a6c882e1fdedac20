package defaults

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/jsonattr"
	"github.com/0xalexb/jsonattr/nested"
)

// DataFetcher defines an interface for reading raw defaults specification data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load reads a defaults specification document and returns it as a nested
// structure ready for Apply.
//
// The fetched data is decoded with the codec and must decode to a mapping;
// anything else fails with an error wrapping nested.ErrNotMapping. Flat
// dotted keys are expanded via nested.NormalizeDefaults using the given
// delimiter (empty means "."); keys holding nested mappings are kept as-is,
// so flat and nested styles can be mixed in one document.
func Load(fetcher DataFetcher, codec jsonattr.Codec, delimiter string) (map[string]any, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading defaults data: %w", err)
	}

	decoded, err := codec.Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("decoding defaults data: %w", err)
	}

	document, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("defaults document %w, got %T", nested.ErrNotMapping, decoded)
	}

	normalized, err := nested.NormalizeDefaults(document, delimiter)
	if err != nil {
		return nil, err
	}

	return normalized, nil
}

// Apply merges defaults into the named attribute of record, filling absent
// and null slots while keeping every present value. The attribute must be in
// the registry; an absent attribute starts as an empty mapping, and a
// non-mapping attribute value fails with an error wrapping
// nested.ErrNotMapping.
func Apply(record jsonattr.Record, registry *jsonattr.Registry, attr string, defaults map[string]any) error {
	if !registry.Contains(attr) {
		return fmt.Errorf("%q: %w", attr, jsonattr.ErrUnknownAttribute)
	}

	current := record.GetAttribute(attr)
	if current == nil {
		current = map[string]any{}
	}

	merged, err := nested.Merge(current, defaults)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", attr, err)
	}

	record.SetAttribute(attr, merged)
	slog.Info("defaults applied", slog.String("attribute", attr))

	return nil
}
