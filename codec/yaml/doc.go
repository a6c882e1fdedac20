// Package yaml implements the jsonattr.Codec interface for attributes whose
// serialized form is YAML text, using goccy/go-yaml. Because YAML is a
// superset of JSON, this codec also decodes JSON documents, which makes it a
// convenient choice for defaults specification files authored in either
// format.
package yaml
