package state

import (
	fsutil "github.com/kk-code-lab/dnav/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// NavigationState is the current directory, its listing and the cursor.
// Transitions replace it as a whole.
type NavigationState struct {
	CurrentPath string
	Items       *SelectableList[FileEntry]
}

// Empty reports whether the current listing has no entries.
func (s NavigationState) Empty() bool {
	return s.Items == nil || s.Items.Len() == 0
}

// Cursor returns the selected index or NoSelection.
func (s NavigationState) Cursor() int {
	if s.Items == nil {
		return NoSelection
	}
	idx, _ := s.Items.Selected()
	return idx
}

// Entries returns the current listing.
func (s NavigationState) Entries() []FileEntry {
	if s.Items == nil {
		return nil
	}
	return s.Items.Items()
}
