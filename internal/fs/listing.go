package fs

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// Lister reads the direct children of a directory.
type Lister struct {
	fs        afero.Fs
	birthTime func(path string) (time.Time, error)
}

// ListerOption customizes a Lister.
type ListerOption func(*Lister)

// WithBirthTime overrides how creation times are read for listed entries.
// Passing nil disables creation times entirely.
func WithBirthTime(fn func(path string) (time.Time, error)) ListerOption {
	return func(l *Lister) {
		l.birthTime = fn
	}
}

// NewLister creates a Lister over fsys. Creation times are only read when
// fsys is the OS filesystem.
func NewLister(fsys afero.Fs, opts ...ListerOption) *Lister {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	l := &Lister{fs: fsys}
	if _, ok := fsys.(*afero.OsFs); ok {
		l.birthTime = BirthTime
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List returns the visible children of path in enumeration order. On any
// failure it returns a *ListError and no entries.
func (l *Lister) List(path string) (Listing, error) {
	path = filepath.Clean(path)

	dir, err := l.fs.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer func() {
		_ = dir.Close()
	}()

	infos, err := dir.Readdir(-1)
	if err != nil {
		return nil, classify(path, err)
	}

	listing := make(Listing, 0, len(infos))
	for _, info := range infos {
		rawName := info.Name()
		if IsHidden(rawName) {
			continue
		}

		entry := newEntry(path, info, norm.NFC.String(rawName))

		// For symlinks, check if target is a directory
		if entry.IsSymlink {
			if target, err := l.fs.Stat(entry.Path); err == nil {
				entry.LinksToDir = target.IsDir()
			}
		}

		if l.birthTime != nil {
			if created, err := l.birthTime(entry.Path); err == nil {
				entry.Created = created
				entry.HasCreated = true
			}
		}

		listing = append(listing, entry)
	}

	return listing, nil
}
