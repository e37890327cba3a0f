package storage

import "errors"

// ErrWouldBlock signals that a non-blocking lock attempt failed because the
// blob is already locked by another process.
var ErrWouldBlock = errors.New("storage: file lock would block")
