package storage

// MemoryBackend implements Backend in-process, for tests. Unlike FileBackend
// it holds no OS-level lock; callers are responsible for not sharing one
// instance across concurrent goroutines that would violate the single-writer
// contract spec.md assumes.
type MemoryBackend struct {
	data []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: []byte{}}
}

// Read returns a copy of the current blob.
func (b *MemoryBackend) Read() ([]byte, error) {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Write replaces the blob with a copy of data.
func (b *MemoryBackend) Write(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.data = cp
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *MemoryBackend) Close() error {
	return nil
}

var _ Backend = (*MemoryBackend)(nil)
