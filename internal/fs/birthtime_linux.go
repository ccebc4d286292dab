//go:build linux

package fs

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime reads the creation time of path via statx. Kernels and
// filesystems that do not report STATX_BTIME yield ErrBirthTimeUnsupported.
func BirthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil {
		if errors.Is(err, unix.ENOSYS) {
			return time.Time{}, ErrBirthTimeUnsupported
		}
		return time.Time{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, ErrBirthTimeUnsupported
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
