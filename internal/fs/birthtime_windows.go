//go:build windows

package fs

import (
	"os"
	"syscall"
	"time"
)

// BirthTime reads the creation time recorded by NTFS.
func BirthTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok || attrs == nil {
		return time.Time{}, ErrBirthTimeUnsupported
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), nil
}
