// Package metadata derives the detail fields shown for the selected entry.
package metadata

import (
	"errors"
	"os"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	fsutil "github.com/kk-code-lab/dnav/internal/fs"
	"github.com/kk-code-lab/dnav/internal/logging"
)

const (
	// DefaultCacheSize bounds how many projected entries are remembered.
	DefaultCacheSize = 256

	// Placeholder is shown when a metadata field could not be read.
	Placeholder = "n/a"
	// NoExtension is shown for entries without an extension.
	NoExtension = "-"

	timeLayout = "2006-01-02, Monday 15:04"
)

// Source provides per-entry filesystem metadata.
type Source interface {
	Lstat(path string) (os.FileInfo, error)
	BirthTime(path string) (time.Time, error)
}

// DisplayFields holds everything the info pane shows for one entry. Each
// metadata-backed field carries its own OK flag so a single failed read
// does not hide the rest.
type DisplayFields struct {
	Location  string
	Extension string

	Size   int64
	SizeOK bool

	Created   time.Time
	CreatedOK bool

	Modified   time.Time
	ModifiedOK bool

	IsFile    bool
	IsDir     bool
	IsSymlink bool
	TypeOK    bool
}

// Row is one label/value line of the info pane.
type Row struct {
	Label string
	Value string
}

// Rows renders the fields in display order.
func (d DisplayFields) Rows() []Row {
	return []Row{
		{Label: "Extension", Value: d.Extension},
		{Label: "Size", Value: d.sizeText()},
		{Label: "Location", Value: d.Location},
		{Label: "Created", Value: formatTime(d.Created, d.CreatedOK)},
		{Label: "Modified", Value: formatTime(d.Modified, d.ModifiedOK)},
		{Label: "File", Value: formatFlag(d.IsFile, d.TypeOK)},
		{Label: "Directory", Value: formatFlag(d.IsDir, d.TypeOK)},
		{Label: "Symlink", Value: formatFlag(d.IsSymlink, d.TypeOK)},
	}
}

func (d DisplayFields) sizeText() string {
	if !d.SizeOK {
		return Placeholder
	}
	return strconv.FormatInt(d.Size, 10) + " bytes"
}

func formatTime(t time.Time, ok bool) string {
	if !ok {
		return Placeholder
	}
	return t.In(time.Local).Format(timeLayout)
}

func formatFlag(v, ok bool) string {
	switch {
	case !ok:
		return Placeholder
	case v:
		return "yes"
	default:
		return "no"
	}
}

// Projector computes DisplayFields and caches them by path.
type Projector struct {
	source Source
	cache  *lru.Cache[string, DisplayFields]
}

// NewProjector creates a projector reading from source. A non-positive size
// falls back to DefaultCacheSize.
func NewProjector(source Source, size int) (*Projector, error) {
	if source == nil {
		source = fsutil.OSMetadata{}
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, DisplayFields](size)
	if err != nil {
		return nil, err
	}
	return &Projector{source: source, cache: cache}, nil
}

// Project returns the display fields for entry, reading metadata only when
// the path is not cached.
func (p *Projector) Project(entry fsutil.Entry) DisplayFields {
	if fields, ok := p.cache.Get(entry.Path); ok {
		return fields
	}
	fields := p.project(entry)
	p.cache.Add(entry.Path, fields)
	return fields
}

// Purge drops all cached projections.
func (p *Projector) Purge() {
	p.cache.Purge()
}

func (p *Projector) project(entry fsutil.Entry) DisplayFields {
	fields := DisplayFields{
		Location:  entry.Path,
		Extension: NoExtension,
	}
	if ext, ok := entry.Extension(); ok {
		fields.Extension = ext
	}

	if info, err := p.source.Lstat(entry.Path); err == nil {
		mode := info.Mode()
		fields.Size, fields.SizeOK = info.Size(), true
		fields.Modified, fields.ModifiedOK = info.ModTime(), true
		fields.IsFile = mode.IsRegular()
		fields.IsDir = mode.IsDir()
		fields.IsSymlink = mode&os.ModeSymlink != 0
		fields.TypeOK = true
	} else {
		logging.Debug("metadata unavailable", logging.String("path", entry.Path), logging.Err(err))
	}

	if entry.HasCreated {
		fields.Created, fields.CreatedOK = entry.Created, true
	} else if created, err := p.source.BirthTime(entry.Path); err == nil {
		fields.Created, fields.CreatedOK = created, true
	} else if !errors.Is(err, fsutil.ErrBirthTimeUnsupported) {
		logging.Debug("creation time unavailable", logging.String("path", entry.Path), logging.Err(err))
	}

	return fields
}
