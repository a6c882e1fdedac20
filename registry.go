package jsonattr

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyAttributeName is returned when a registry is built with an empty attribute name.
var ErrEmptyAttributeName = errors.New("attribute name must not be empty")

// ErrDuplicateAttribute is returned when a registry is built with the same attribute name twice.
var ErrDuplicateAttribute = errors.New("attribute name declared twice")

// Registry is the fixed set of attribute names on a record type that hold
// JSON documents. It is established once per record type and read-only
// afterwards, so it is safe for concurrent use.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry creates a Registry from the given attribute names.
// Names must be non-empty and unique.
func NewRegistry(names ...string) (*Registry, error) {
	registered := make(map[string]struct{}, len(names))

	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyAttributeName
		}

		if _, exists := registered[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAttribute, name)
		}

		registered[name] = struct{}{}
	}

	return &Registry{names: registered}, nil
}

// Contains reports whether name is registered for JSON access.
func (r *Registry) Contains(name string) bool {
	_, ok := r.names[name]

	return ok
}

// Names returns the registered attribute names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
