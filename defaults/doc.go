// Package defaults loads defaults specifications and applies them to
// JSON-valued record attributes.
//
// A defaults specification is a document whose keys are dotted paths and
// whose values are the fallback values for those paths:
//
//	ui.theme: light
//	ui.sidebar.collapsed: false
//	limits.max_items: 100
//
// Load fetches such a document, decodes it with a codec, and normalizes the
// flat keys into the equivalent nested structure. Apply merges the result
// into a record attribute without overwriting values already present.
//
// The package uses an interface-based design: DataFetcher retrieves raw
// specification data (see fetcher/file), and any jsonattr.Codec decodes it.
package defaults
