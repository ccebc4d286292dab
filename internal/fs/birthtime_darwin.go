//go:build darwin

package fs

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime reads the creation time of path from st_birthtimespec.
func BirthTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	sec, nsec := st.Btim.Unix()
	if sec <= 0 && nsec == 0 {
		return time.Time{}, ErrBirthTimeUnsupported
	}
	return time.Unix(sec, nsec), nil
}
