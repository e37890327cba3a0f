package storage

import "errors"

// ErrStorageIO is the sentinel spec.md 7 calls StorageIOError: any failure
// reading or writing the blob (or acquiring its lock) is fatal and
// propagates out of the interpreter.
var ErrStorageIO = errors.New("storage: io error")
