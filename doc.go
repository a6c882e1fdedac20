// Package jsonattr gives structured, path-addressed access to JSON-valued
// attributes of a record.
//
// A record declares once, via a Registry, which of its named attributes hold
// JSON documents. An Accessor then reads and writes values deep inside those
// attributes using dotted paths, without the record knowing anything about
// the nesting:
//
//	registry, _ := jsonattr.NewRegistry("settings", "metadata")
//	accessor, _ := jsonattr.New(record, registry)
//
//	theme, _ := accessor.Get("settings", "ui.theme", "light")
//	_ = accessor.Set("settings", "ui.sidebar.collapsed", true)
//
// The package never touches storage. The owning persistence framework calls
// DecodeOnLoad after it loads a record and EncodeForSave before it writes
// one, passing a Codec (see codec/json and codec/yaml) that converts each
// registered attribute between its serialized text form and the in-memory
// nested form the Accessor operates on.
//
// Traversal, merging, and defaults normalization are implemented in the
// nested subpackage and usable on bare structures without a record.
package jsonattr
