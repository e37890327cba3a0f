//go:build windows
// +build windows

package storage

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// renameBlobWindows atomically replaces the storage blob at newpath with
// the freshly-written temp file at oldpath via MoveFileEx, so a reader
// (including the same process after a restart) never observes a torn
// write of the session snapshot.
func renameBlobWindows(oldpath, newpath string) error {
	from, err := windows.UTF16PtrFromString(oldpath)
	if err != nil {
		return fmt.Errorf("failed to convert oldpath to UTF16: %w", err)
	}
	to, err := windows.UTF16PtrFromString(newpath)
	if err != nil {
		return fmt.Errorf("failed to convert newpath to UTF16: %w", err)
	}
	if err := windows.MoveFileEx(from, to, windows.MOVEFILE_REPLACE_EXISTING); err != nil {
		return fmt.Errorf("MoveFileEx failed: %w", err)
	}
	return nil
}
