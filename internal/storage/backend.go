// Package storage implements the byte-addressable blob persistence the
// calculator's durable interaction log is written through. It stands in
// for spec's "raw storage collaborator": read() -> bytes, write(bytes).
package storage

// Backend is the contract every persistence mechanism implements: whole-blob
// read and atomic whole-blob replace, plus lifecycle cleanup. An empty
// result from Read means "never written, or cleared" - not an error.
type Backend interface {
	// Read returns the entire current blob. It returns a zero-length,
	// non-nil slice if nothing has ever been written, or after Write(nil).
	Read() ([]byte, error)

	// Write atomically replaces the blob with data.
	Write(data []byte) error

	// Close releases any resources held by the backend, such as a file lock.
	Close() error
}
