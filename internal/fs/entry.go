package fs

import (
	"os"
	"path/filepath"
	"time"
)

// Entry represents a single child of a listed directory. It is a snapshot
// taken at listing time and is never updated in place.
type Entry struct {
	Name       string
	Path       string
	IsDir      bool
	IsFile     bool
	IsSymlink  bool
	LinksToDir bool // symlink whose target resolved to a directory
	Size       int64
	Modified   time.Time
	Created    time.Time
	HasCreated bool
	Mode       os.FileMode
}

// Listing is the ordered, filtered set of children of one directory.
type Listing = []Entry

// IsHidden reports whether the entry should be excluded from listings.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// Navigable reports whether entering the entry can produce a new listing.
func (e Entry) Navigable() bool {
	return e.IsDir || e.LinksToDir
}

// Extension returns the file extension without the leading dot.
func (e Entry) Extension() (string, bool) {
	ext := filepath.Ext(e.Path)
	if len(ext) <= 1 {
		return "", false
	}
	// ".bashrc" has no extension; the whole name is the stem.
	if ext == filepath.Base(e.Path) {
		return "", false
	}
	return ext[1:], true
}

func newEntry(dir string, info os.FileInfo, displayName string) Entry {
	mode := info.Mode()
	return Entry{
		Name:      displayName,
		Path:      filepath.Join(dir, info.Name()),
		IsDir:     mode.IsDir(),
		IsFile:    mode.IsRegular(),
		IsSymlink: mode&os.ModeSymlink != 0,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      mode,
	}
}
