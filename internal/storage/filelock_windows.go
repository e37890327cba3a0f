//go:build windows

package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/windows"
)

// blobLock holds the lock file that guards exclusive access to a single
// calculator session's storage blob (spec.md 5: one interpreter per blob).
type blobLock struct {
	file *os.File
}

// acquireBlobLock opens (creating if necessary) the lock file sitting
// alongside the blob at path and takes a non-blocking exclusive lock on it
// via LockFileEx, so a second calc process against the same blob fails
// fast instead of racing the first one's replay log.
func acquireBlobLock(path string) (*blobLock, error) {
	lockFile, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob lock file: %w", err)
	}

	if err := lockFileHandle(lockFile); err != nil {
		lockFile.Close()
		if errors.Is(err, ErrWouldBlock) {
			slog.Warn("storage blob already locked by another session", "lock_path", path)
			return nil, ErrWouldBlock
		}
		return nil, fmt.Errorf("session is locked by another active process: %w", err)
	}

	return &blobLock{file: lockFile}, nil
}

// release drops the lock, closes the lock file, and removes it from disk
// so the next session starts against a clean lock directory.
func (l *blobLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}

	path := l.file.Name()

	unlockErr := unlockFileHandle(l.file)
	closeErr := l.file.Close()
	removeErr := os.Remove(path)
	if removeErr != nil && os.IsNotExist(removeErr) {
		removeErr = nil
	}
	if removeErr != nil {
		slog.Warn("failed to remove blob lock file", "lock_path", path, "error", removeErr)
	}

	return errors.Join(unlockErr, closeErr, removeErr)
}

// lockFileHandle acquires an exclusive, non-blocking lock via LockFileEx.
func lockFileHandle(f *os.File) error {
	handle := windows.Handle(f.Fd())
	var overlapped windows.Overlapped

	err := windows.LockFileEx(
		handle,
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0,
		1, // lock one byte; the blob's own content is locked indirectly via this sentinel file
		0,
		&overlapped,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return ErrWouldBlock
		}
		return fmt.Errorf("LockFileEx failed: %w", err)
	}
	return nil
}

// unlockFileHandle releases the lock taken by lockFileHandle.
func unlockFileHandle(f *os.File) error {
	handle := windows.Handle(f.Fd())
	var overlapped windows.Overlapped
	if err := windows.UnlockFileEx(handle, 0, 1, 0, &overlapped); err != nil {
		return fmt.Errorf("UnlockFileEx failed: %w", err)
	}
	return nil
}
