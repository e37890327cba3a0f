//go:build !windows

package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// blobLock holds the lock file that guards exclusive access to a single
// calculator session's storage blob (spec.md 5: one interpreter per blob).
type blobLock struct {
	file *os.File
}

// acquireBlobLock opens (creating if necessary) the lock file sitting
// alongside the blob at path and takes a non-blocking exclusive flock on
// it, so a second calc process against the same blob fails fast instead of
// racing the first one's replay log.
func acquireBlobLock(path string) (*blobLock, error) {
	lockFile, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob lock file: %w", err)
	}

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		lockFile.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			slog.Warn("storage blob already locked by another session", "lock_path", path)
			return nil, ErrWouldBlock
		}
		return nil, fmt.Errorf("failed to acquire blob lock: %w", err)
	}

	return &blobLock{file: lockFile}, nil
}

// release drops the flock, closes the lock file, and removes it from disk
// so the next session starts against a clean lock directory.
func (l *blobLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}

	path := l.file.Name()

	// Flock on unix never errors on LOCK_UN; nothing to check here.
	unix.Flock(int(l.file.Fd()), unix.LOCK_UN)

	closeErr := l.file.Close()
	removeErr := os.Remove(path)
	if removeErr != nil && os.IsNotExist(removeErr) {
		removeErr = nil
	}
	if removeErr != nil {
		slog.Warn("failed to remove blob lock file", "lock_path", path, "error", removeErr)
	}

	return errors.Join(closeErr, removeErr)
}
