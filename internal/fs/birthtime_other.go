//go:build !linux && !darwin && !windows

package fs

import "time"

// BirthTime is not available on this platform.
func BirthTime(_ string) (time.Time, error) {
	return time.Time{}, ErrBirthTimeUnsupported
}
