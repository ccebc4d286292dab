package app

import (
	"errors"
	iofs "io/fs"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/dnav/internal/fs"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
)

type fakeLister struct {
	dirs map[string][]fsutil.Entry
}

func (f *fakeLister) List(path string) (fsutil.Listing, error) {
	if path == "/home/secret" {
		return nil, &fsutil.ListError{Kind: fsutil.PermissionDenied, Path: path, Err: iofs.ErrPermission}
	}
	entries, ok := f.dirs[path]
	if !ok {
		return nil, &fsutil.ListError{Kind: fsutil.OtherIOError, Path: path, Err: iofs.ErrNotExist}
	}
	return append(fsutil.Listing(nil), entries...), nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

func (o *fakeOpener) String() string { return "fake" }

func newTestApp(t *testing.T, screen tcell.Screen, dwell time.Duration) (*Application, *fakeOpener) {
	t.Helper()
	return newTestAppAt(t, screen, dwell, "/home", newTestTree())
}

func newTestTree() *fakeLister {
	return &fakeLister{dirs: map[string][]fsutil.Entry{
		"/home": {
			{Name: "ann", Path: "/home/ann", IsDir: true},
			{Name: "secret", Path: "/home/secret", IsDir: true},
			{Name: "notes.txt", Path: "/home/notes.txt", IsFile: true},
		},
		"/home/ann": {
			{Name: "docs", Path: "/home/ann/docs", IsDir: true},
		},
	}}
}

func newTestAppAt(t *testing.T, screen tcell.Screen, dwell time.Duration, root string, lister *fakeLister) (*Application, *fakeOpener) {
	t.Helper()
	opener := &fakeOpener{}
	app := newApplication(screen, statepkg.NewController(root, lister), dwell, opener)
	app.init()
	t.Cleanup(app.stopDwell)
	return app, opener
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(100, 20)
	return screen
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func dispatch(app *Application, ev tcell.Event) {
	app.handleEvent(ev)
	app.processActions()
}

func screenContains(screen tcell.Screen, text string) bool {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; {
			mainc, _, _, width := screen.GetContent(x, y)
			b.WriteRune(mainc)
			if width < 1 {
				width = 1
			}
			x += width
		}
		if strings.Contains(b.String(), text) {
			return true
		}
	}
	return false
}

func TestFailedEnterShowsNoticeAndDropsKeys(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, _ := newTestApp(t, screen, time.Hour)

	dispatch(app, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	dispatch(app, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	notice := app.Notice()
	if notice == nil || notice.Title != "Access denied" || notice.Kind != fsutil.PermissionDenied {
		t.Fatalf("expected permission notice, got %+v", notice)
	}
	if app.CurrentPath() != "/home" {
		t.Fatalf("failed enter must keep the current path, got %s", app.CurrentPath())
	}

	if app.handleEvent(keyEvent('j')) {
		t.Fatal("key during dwell must not trigger a redraw")
	}
	if len(app.actionCh) != 0 {
		t.Fatal("key during dwell must not be queued")
	}
	if got := app.controller.State().Cursor(); got != 1 {
		t.Fatalf("cursor must not move during dwell, got %d", got)
	}

	app.render()
	if !screenContains(screen, "Access denied") {
		t.Fatal("expected overlay to be rendered")
	}
}

func TestQuitKeysIgnoredDuringDwellExceptCtrlC(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, _ := newTestApp(t, screen, time.Hour)

	app.showNotice(errors.New("boom"))

	dispatch(app, keyEvent('q'))
	dispatch(app, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if app.shouldQuit {
		t.Fatal("q and Esc must be dropped during dwell")
	}

	dispatch(app, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !app.shouldQuit {
		t.Fatal("Ctrl+C must quit during dwell")
	}
}

func TestResizeRedrawsDuringDwell(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, _ := newTestApp(t, screen, time.Hour)

	app.showNotice(errors.New("boom"))
	if !app.handleEvent(tcell.NewEventResize(120, 30)) {
		t.Fatal("resize must trigger a redraw")
	}
	if app.Notice() == nil {
		t.Fatal("resize must not end the dwell")
	}
}

func TestDwellExpiryClearsNotice(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, _ := newTestApp(t, screen, 10*time.Millisecond)

	app.showNotice(errors.New("boom"))
	select {
	case <-app.dwellCh:
		app.endDwell()
	case <-time.After(2 * time.Second):
		t.Fatal("dwell timer did not fire")
	}

	if app.Notice() != nil {
		t.Fatal("notice should be cleared after dwell")
	}
	dispatch(app, keyEvent('j'))
	if got := app.controller.State().Cursor(); got != 1 {
		t.Fatalf("keys should be accepted after dwell, cursor=%d", got)
	}
}

func TestOpenInFileManagerOpensParentOfSelection(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, opener := newTestApp(t, screen, time.Hour)

	dispatch(app, keyEvent('k'))
	dispatch(app, keyEvent('u'))

	if len(opener.opened) != 1 || opener.opened[0] != "/home" {
		t.Fatalf("expected /home to be opened, got %v", opener.opened)
	}
	if app.Notice() != nil {
		t.Fatal("opening must not raise a notice")
	}
}

func TestOpenerFailureIsNotFatal(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, opener := newTestApp(t, screen, time.Hour)
	opener.err = ErrNoOpener

	if app.handleAction(statepkg.OpenInFileManagerAction{}) {
		t.Fatal("opening should not require a redraw")
	}
	if app.shouldQuit || app.Notice() != nil {
		t.Fatal("opener failure must only be logged")
	}
}

func TestRunProcessesKeysUntilQuit(t *testing.T) {
	screen := newSimScreen(t)
	app, _ := newTestApp(t, screen, time.Hour)

	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	runUntilDone(t, app)

	if got := app.controller.State().Cursor(); got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
}

func TestRunEntersDirectory(t *testing.T) {
	screen := newSimScreen(t)
	app, _ := newTestApp(t, screen, time.Hour)

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	runUntilDone(t, app)

	if app.CurrentPath() != "/home/ann" {
		t.Fatalf("expected /home/ann, got %s", app.CurrentPath())
	}
}

func TestRunDropsKeysDuringDwell(t *testing.T) {
	screen := newSimScreen(t)
	app, _ := newTestApp(t, screen, time.Hour)

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	runUntilDone(t, app)

	if got := app.controller.State().Cursor(); got != 1 {
		t.Fatalf("cursor should stay on the denied entry, got %d", got)
	}
	if app.Notice() == nil {
		t.Fatal("expected the notice to still be active")
	}
}

func runUntilDone(t *testing.T, app *Application) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestUnlistableRootStartsWithNotice(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	lister := newTestTree()
	app, _ := newTestAppAt(t, screen, time.Hour, "/home/gone", lister)

	notice := app.Notice()
	if notice == nil || notice.Kind != fsutil.OtherIOError {
		t.Fatalf("expected io error notice for the root, got %+v", notice)
	}
	if app.CurrentPath() != "/home/gone" {
		t.Fatalf("expected to stay at the root, got %s", app.CurrentPath())
	}
	if !app.controller.State().Empty() {
		t.Fatal("expected an empty listing for the unlistable root")
	}

	app.render()
	if !screenContains(screen, "Cannot open /home/gone") {
		t.Fatal("expected the startup failure on screen")
	}

	app.endDwell()
	lister.dirs["/home/gone"] = []fsutil.Entry{{Name: "new.txt", Path: "/home/gone/new.txt", IsFile: true}}
	dispatch(app, keyEvent('r'))
	if app.Notice() != nil {
		t.Fatalf("refresh should succeed, got %+v", app.Notice())
	}
	if got := app.controller.State().Cursor(); got != 0 {
		t.Fatalf("expected cursor on the new entry, got %d", got)
	}
}

func TestUnlistableRootRecoversWithBack(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	app, _ := newTestAppAt(t, screen, time.Hour, "/home/gone", newTestTree())
	app.endDwell()

	dispatch(app, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))

	if app.Notice() != nil {
		t.Fatalf("back should succeed, got %+v", app.Notice())
	}
	if app.CurrentPath() != "/home" {
		t.Fatalf("expected /home after back, got %s", app.CurrentPath())
	}
}

func TestRunWithUnlistableRootDoesNotExit(t *testing.T) {
	screen := newSimScreen(t)
	app, _ := newTestAppAt(t, screen, time.Hour, "/home/gone", newTestTree())

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	runUntilDone(t, app)

	if app.Notice() == nil {
		t.Fatal("startup notice should still be active when quitting during dwell")
	}
}
