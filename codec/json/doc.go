// Package json implements the jsonattr.Codec interface for attributes whose
// serialized form is JSON text, using the standard library encoding/json.
package json
