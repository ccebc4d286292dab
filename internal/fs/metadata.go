package fs

import (
	"os"
	"time"
)

// OSMetadata reads entry metadata from the operating system.
type OSMetadata struct{}

// Lstat returns file info without following symlinks.
func (OSMetadata) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// BirthTime returns the creation time of path.
func (OSMetadata) BirthTime(path string) (time.Time, error) {
	return BirthTime(path)
}
