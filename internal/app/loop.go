package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/dnav/internal/logging"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
	inputui "github.com/kk-code-lab/dnav/internal/ui/input"
)

// Run processes events until the user quits, then restores the terminal.
func (app *Application) Run() {
	defer app.screen.Fini()
	defer app.stopDwell()

	app.render()
	renderPending := false

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go app.pollEvents(eventChan, done)

	var sigCh chan os.Signal
	if sigs := termSignals(); len(sigs) > 0 {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, sigs...)
		defer signal.Stop(sigCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-app.dwellCh:
			app.endDwell()
			renderPending = true
		case sig := <-sigCh:
			logging.Info("terminating on signal", logging.String("signal", sig.String()))
			app.shouldQuit = true
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) pollEvents(eventChan chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case eventChan <- ev:
		case <-done:
			return
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.controller, app.notice)
}

// handleEvent reports whether the screen needs a redraw. Key presses are
// dropped while an error notice is dwelling, except for Ctrl+C.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if app.dwelling() && !inputui.IsInterrupt(ev) {
			return false
		}
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.OpenInFileManagerAction:
		app.openInFileManager()
		return false
	}

	if err := app.controller.Reduce(action); err != nil {
		app.showNotice(err)
	}
	return true
}

func (app *Application) openInFileManager() {
	target := app.controller.OpenTarget()
	if err := app.opener.Open(target); err != nil {
		logging.Warn("failed to open file manager", logging.String("path", target), logging.Err(err))
		return
	}
	logging.Debug("opened file manager", logging.String("path", target))
}

func (app *Application) dwelling() bool {
	return app.notice != nil
}

// showNotice puts err on screen and ignores keys until the dwell elapses.
func (app *Application) showNotice(err error) {
	notice, ok := statepkg.NoticeFor(err)
	if !ok {
		return
	}
	app.notice = &notice

	if app.dwell <= 0 {
		app.endDwell()
		return
	}
	app.stopDwell()
	if app.dwellTimer == nil {
		app.dwellTimer = time.NewTimer(app.dwell)
	} else {
		app.dwellTimer.Reset(app.dwell)
	}
	app.dwellCh = app.dwellTimer.C
}

func (app *Application) endDwell() {
	app.notice = nil
	app.dwellCh = nil
}

func (app *Application) stopDwell() {
	if app.dwellTimer == nil {
		return
	}
	if !app.dwellTimer.Stop() {
		select {
		case <-app.dwellTimer.C:
		default:
		}
	}
	app.dwellCh = nil
}
