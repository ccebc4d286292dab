package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/dnav/internal/config"
	fsutil "github.com/kk-code-lab/dnav/internal/fs"
	"github.com/kk-code-lab/dnav/internal/logging"
	"github.com/kk-code-lab/dnav/internal/metadata"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
	inputui "github.com/kk-code-lab/dnav/internal/ui/input"
	renderui "github.com/kk-code-lab/dnav/internal/ui/render"
)

var newScreen = tcell.NewScreen

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	controller *statepkg.Controller
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	opener     Opener
	shouldQuit bool

	dwell      time.Duration
	notice     *statepkg.Notice
	dwellTimer *time.Timer
	dwellCh    <-chan time.Time
}

// NewApplication takes over the terminal and lists the configured root. A
// root that cannot be listed starts with an empty listing and the failure on
// screen, so Refresh or Back can recover.
func NewApplication(cfg *config.Config) (*Application, error) {
	projector, err := metadata.NewProjector(fsutil.OSMetadata{}, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}

	controller := statepkg.NewController(cfg.Root, fsutil.NewLister(nil),
		statepkg.WithProjector(projector),
		statepkg.WithConfineToRoot(cfg.ConfineToRoot),
	)
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	opener := DetectOpener()
	logging.Info("starting",
		logging.String("root", controller.Root()),
		logging.Duration("dwell", cfg.Dwell),
		logging.String("opener", opener.String()),
	)

	app := newApplication(screen, controller, cfg.Dwell, opener)
	app.init()
	return app, nil
}

func newApplication(screen tcell.Screen, controller *statepkg.Controller, dwell time.Duration, opener Opener) *Application {
	actionCh := make(chan statepkg.Action, 10)
	return &Application{
		screen:     screen,
		controller: controller,
		renderer:   renderui.NewRenderer(screen),
		input:      inputui.NewInputHandler(actionCh),
		actionCh:   actionCh,
		opener:     opener,
		dwell:      dwell,
	}
}

// init performs the first listing of the root. On failure the controller
// keeps its empty state for the root and the error is shown like any other
// failed transition.
func (app *Application) init() {
	if err := app.controller.Init(); err != nil {
		app.showNotice(err)
	}
}

// Notice returns the error currently shown over the listing, if any.
func (app *Application) Notice() *statepkg.Notice {
	return app.notice
}

// CurrentPath returns the directory being listed.
func (app *Application) CurrentPath() string {
	return app.controller.State().CurrentPath
}
