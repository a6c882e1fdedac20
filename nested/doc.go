// Package nested implements path-addressed access to nested map structures,
// the decoded in-memory form of a JSON document.
//
// A Path is an ordered sequence of string keys. ParsePath accepts either a
// delimited string ("a.b.c") or an already-segmented slice of keys and
// normalizes both to the same Path. Get and Set traverse a structure with a
// parsed Path; Merge fills gaps in a structure from a defaults structure
// without overwriting present values; NormalizeDefaults expands a flat
// mapping of delimited paths into the equivalent nested structure.
//
// All operations are synchronous, perform no I/O, and assume the caller owns
// the structure being traversed for the duration of each call.
package nested
