package jsonattr

import (
	"errors"
	"fmt"
)

// ErrDecode is returned when serialized attribute text is malformed.
var ErrDecode = errors.New("malformed attribute text")

// ErrEncode is returned when an attribute value cannot be serialized.
var ErrEncode = errors.New("attribute value is not serializable")

// Codec converts a registered attribute between its serialized text form and
// its in-memory nested form.
//
// Decode applies only to textual input (string or []byte); any other value
// passes through unchanged, so decoding an already-decoded attribute is a
// no-op. Encode applies only to mapping and sequence values; scalars pass
// through unchanged. Implementations fail with an error wrapping ErrDecode
// or ErrEncode respectively. See codec/json and codec/yaml.
type Codec interface {
	Decode(value any) (any, error)
	Encode(value any) (any, error)
}

// DecodeOnLoad decodes every registered attribute of record whose stored
// form is text, replacing it with the decoded nested structure. The owning
// persistence framework calls this once after loading a record.
func DecodeOnLoad(record Record, registry *Registry, codec Codec) error {
	for _, name := range registry.Names() {
		decoded, err := codec.Decode(record.GetAttribute(name))
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}

		record.SetAttribute(name, decoded)
	}

	return nil
}

// EncodeForSave encodes every registered attribute of record whose in-memory
// form is a mapping or sequence, replacing it with serialized text. The
// owning persistence framework calls this once before each write.
func EncodeForSave(record Record, registry *Registry, codec Codec) error {
	for _, name := range registry.Names() {
		encoded, err := codec.Encode(record.GetAttribute(name))
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}

		record.SetAttribute(name, encoded)
	}

	return nil
}
