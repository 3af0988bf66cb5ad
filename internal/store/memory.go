package store

// memoryBackend keeps collection documents in a map. Documents are stored
// encoded, so callers never share slices or maps with the store.
type memoryBackend struct {
	blobs map[string][]byte
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{blobs: make(map[string][]byte)}
}

func (m *memoryBackend) get(name string) ([]byte, bool, error) {
	data, ok := m.blobs[name]
	return data, ok, nil
}

func (m *memoryBackend) put(name string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blobs[name] = cp
	return nil
}

func (m *memoryBackend) close() error {
	m.blobs = nil
	return nil
}
