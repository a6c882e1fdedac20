package nested

// Get reads the value at path within data.
//
// Traversal descends one mapping per key. A missing key, or a non-mapping
// value at a non-final key, is a lookup miss reported as found == false, not
// an error. The empty path returns data itself. A found value may be nil;
// callers that treat nil as absent must check the value, not the flag.
func Get(data any, path Path) (value any, found bool) {
	current := data

	for _, key := range path {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = mapping[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Set writes value at path within data and returns the updated structure.
//
// Intermediate slots that are absent or hold a non-mapping value are
// replaced with an empty mapping before descent, so every path is reachable.
// The empty path replaces data wholly with value. When data is a mapping it
// is mutated in place and returned; otherwise a new mapping is returned.
// After the call, Get on the same path yields value.
func Set(data any, path Path, value any) any {
	if len(path) == 0 {
		return value
	}

	root, ok := data.(map[string]any)
	if !ok {
		root = make(map[string]any)
	}

	current := root

	for _, key := range path[:len(path)-1] {
		child, ok := current[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			current[key] = child
		}

		current = child
	}

	current[path[len(path)-1]] = value

	return root
}
