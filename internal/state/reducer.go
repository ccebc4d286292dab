package state

import (
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/dnav/internal/fs"
	"github.com/kk-code-lab/dnav/internal/logging"
	"github.com/kk-code-lab/dnav/internal/metadata"
)

// Lister produces the listing of one directory.
type Lister interface {
	List(path string) (fsutil.Listing, error)
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithProjector attaches the projector whose cache is purged on every
// successful transition.
func WithProjector(p *metadata.Projector) ControllerOption {
	return func(c *Controller) {
		c.projector = p
	}
}

// WithConfineToRoot clamps Back targets outside the root to the root.
func WithConfineToRoot(confine bool) ControllerOption {
	return func(c *Controller) {
		c.confine = confine
	}
}

// Controller owns the NavigationState and applies navigation actions to it.
type Controller struct {
	root      string
	confine   bool
	lister    Lister
	projector *metadata.Projector
	state     NavigationState
}

// NewController creates a controller rooted at root. Call Init before use.
func NewController(root string, lister Lister, opts ...ControllerOption) *Controller {
	c := &Controller{
		root:   filepath.Clean(root),
		lister: lister,
		state: NavigationState{
			CurrentPath: filepath.Clean(root),
			Items:       NewSelectableList[FileEntry](nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init lists the root directory.
func (c *Controller) Init() error {
	return c.changeDirectory(c.root)
}

// Root returns the configured root path.
func (c *Controller) Root() string {
	return c.root
}

// State returns the current navigation state.
func (c *Controller) State() NavigationState {
	return c.state
}

// CurrentFile returns the selected entry.
func (c *Controller) CurrentFile() (FileEntry, bool) {
	return c.state.Items.Current()
}

// Details projects the selected entry, or reports false for an empty listing.
func (c *Controller) Details() (metadata.DisplayFields, bool) {
	file, ok := c.CurrentFile()
	if !ok || c.projector == nil {
		return metadata.DisplayFields{}, false
	}
	return c.projector.Project(file), true
}

// OpenTarget returns the directory to show in the platform file manager:
// the parent of the selected entry, or the current directory when empty.
func (c *Controller) OpenTarget() string {
	file, ok := c.CurrentFile()
	if !ok {
		return c.state.CurrentPath
	}
	if parent, ok := parentOf(file.Path); ok {
		return parent
	}
	return c.root
}

// Reduce applies a navigation action. A returned error means the state was
// left untouched and should be shown to the user.
func (c *Controller) Reduce(action Action) error {
	switch action.(type) {

	case NextAction:
		c.state.Items.Next()
		return nil

	case PreviousAction:
		c.state.Items.Previous()
		return nil

	case EnterAction:
		file, ok := c.CurrentFile()
		if !ok || !file.Navigable() {
			return nil
		}
		return c.changeDirectory(file.Path)

	case BackAction:
		return c.changeDirectory(c.backTarget())

	case RefreshAction:
		return c.changeDirectory(c.state.CurrentPath)
	}

	return nil
}

// backTarget ascends two levels from the selected entry's path. An empty
// listing has no selection, so the ascent starts from the current directory.
func (c *Controller) backTarget() string {
	start := c.state.CurrentPath
	if file, ok := c.CurrentFile(); ok {
		parent, ok := parentOf(file.Path)
		if !ok {
			return c.root
		}
		start = parent
	}

	target, ok := parentOf(start)
	if !ok {
		return c.root
	}
	if c.confine && !within(c.root, target) {
		return c.root
	}
	return target
}

func (c *Controller) changeDirectory(path string) error {
	dirPath := filepath.Clean(path)

	listing, err := c.lister.List(dirPath)
	if err != nil {
		logging.Warn("directory listing failed",
			logging.String("path", dirPath),
			logging.String("kind", fsutil.KindOf(err).String()),
			logging.Err(err))
		return err
	}

	items := NewSelectableList(listing)
	items.Select(0)
	c.state = NavigationState{CurrentPath: dirPath, Items: items}

	if c.projector != nil {
		c.projector.Purge()
	}

	logging.Debug("directory listed",
		logging.String("path", dirPath),
		logging.Int("entries", len(listing)))
	return nil
}

func parentOf(path string) (string, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
