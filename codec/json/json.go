package json

import (
	"encoding/json"
	"fmt"

	"github.com/0xalexb/jsonattr"
)

// Codec implements jsonattr.Codec for JSON text.
type Codec struct{}

// New creates a new JSON codec instance.
func New() *Codec {
	return &Codec{}
}

// Decode parses JSON text into its nested in-memory form. Non-text values
// pass through unchanged, so Decode is idempotent on already-decoded
// attributes. Empty text decodes to nil, matching an absent attribute.
// Malformed text fails with an error wrapping jsonattr.ErrDecode.
func (c *Codec) Decode(value any) (any, error) {
	var text []byte

	switch v := value.(type) {
	case string:
		text = []byte(v)
	case []byte:
		text = v
	default:
		return value, nil
	}

	if len(text) == 0 {
		return nil, nil
	}

	var decoded any

	err := json.Unmarshal(text, &decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonattr.ErrDecode, err)
	}

	return decoded, nil
}

// Encode serializes a mapping or sequence value to JSON text. Scalars pass
// through unchanged. A value that cannot be serialized fails with an error
// wrapping jsonattr.ErrEncode.
func (c *Codec) Encode(value any) (any, error) {
	switch value.(type) {
	case map[string]any, []any:
	default:
		return value, nil
	}

	text, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jsonattr.ErrEncode, err)
	}

	return string(text), nil
}
