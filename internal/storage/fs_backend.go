package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend implements Backend using the local filesystem: an exclusive
// lock file guards single-writer access to a blob file, written with
// AtomicWriteFile so a reader (including the same process after a restart)
// never observes a torn write.
type FileBackend struct {
	path string
	lock *blobLock
}

// NewFileBackend creates the blob's directory if necessary and acquires an
// exclusive lock on a sibling lock file for the lifetime of the backend.
// The blob file itself is not created until the first Write.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: blob path cannot be empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create storage directory: %v", ErrStorageIO, err)
	}

	lock, err := acquireBlobLock(lockPathFor(path))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to acquire storage lock: %v", ErrStorageIO, err)
	}

	return &FileBackend{path: path, lock: lock}, nil
}

// Read returns the entire current blob, or a zero-length slice if the blob
// has never been written.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read storage blob: %v", ErrStorageIO, err)
	}
	return data, nil
}

// Write atomically replaces the blob with data.
func (b *FileBackend) Write(data []byte) error {
	if err := AtomicWriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write storage blob: %v", ErrStorageIO, err)
	}
	return nil
}

// Close releases the exclusive lock on the blob.
func (b *FileBackend) Close() error {
	if err := b.lock.release(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	return nil
}

var _ Backend = (*FileBackend)(nil)
