package jsonattr

import (
	"errors"
	"fmt"

	"github.com/0xalexb/jsonattr/nested"
)

// ErrUnknownAttribute is returned when path access is requested on an attribute outside the Registry.
var ErrUnknownAttribute = errors.New("attribute is not registered for JSON access")

// ErrNilRecord is returned when an Accessor is built without a record.
var ErrNilRecord = errors.New("record must not be nil")

// ErrNilRegistry is returned when an Accessor is built without a registry.
var ErrNilRegistry = errors.New("registry must not be nil")

// Record is the capability a record type grants the accessor: generic read
// and write of a named attribute's current in-memory value. GetAttribute
// returns nil for an absent attribute.
type Record interface {
	GetAttribute(name string) any
	SetAttribute(name string, value any)
}

// Accessor reads and writes values inside the JSON-valued attributes of a
// single record. All operations are gated on the attribute being registered.
type Accessor struct {
	record    Record
	registry  *Registry
	delimiter string
}

// New creates an Accessor for the given record and registry.
func New(record Record, registry *Registry, opts ...Option) (*Accessor, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	if registry == nil {
		return nil, ErrNilRegistry
	}

	options := Options{Delimiter: nested.DefaultDelimiter}

	for _, apply := range opts {
		apply(&options)
	}

	return &Accessor{
		record:    record,
		registry:  registry,
		delimiter: options.Delimiter,
	}, nil
}

// Get returns the value at path inside the named attribute.
//
// The path may be a delimited string, a []string, or nil for the whole
// attribute. When the path is not found, or the stored leaf is null, the
// caller's fallback is returned instead; a lookup miss is not an error.
// An absent attribute reads as an empty mapping.
func (a *Accessor) Get(attr string, path any, fallback any) (any, error) {
	if !a.registry.Contains(attr) {
		return nil, fmt.Errorf("%q: %w", attr, ErrUnknownAttribute)
	}

	keys, err := nested.ParsePath(path, a.delimiter)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", attr, err)
	}

	current := a.record.GetAttribute(attr)
	if current == nil {
		current = map[string]any{}
	}

	value, found := nested.Get(current, keys)
	if !found || value == nil {
		return fallback, nil
	}

	return value, nil
}

// Set writes value at path inside the named attribute, creating intermediate
// mappings as needed, and stores the updated structure back on the record.
// A nil or empty path replaces the attribute's value wholly. The record's
// in-memory value is mutated; nothing is persisted.
func (a *Accessor) Set(attr string, path any, value any) error {
	if !a.registry.Contains(attr) {
		return fmt.Errorf("%q: %w", attr, ErrUnknownAttribute)
	}

	keys, err := nested.ParsePath(path, a.delimiter)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", attr, err)
	}

	updated := nested.Set(a.record.GetAttribute(attr), keys, value)
	a.record.SetAttribute(attr, updated)

	return nil
}
