package jsonattr_test

// memoryRecord is a minimal Record backed by a map, standing in for a
// framework-owned model in tests.
type memoryRecord struct {
	attrs map[string]any
}

func newMemoryRecord() *memoryRecord {
	return &memoryRecord{attrs: make(map[string]any)}
}

func (r *memoryRecord) GetAttribute(name string) any {
	return r.attrs[name]
}

func (r *memoryRecord) SetAttribute(name string, value any) {
	r.attrs[name] = value
}
