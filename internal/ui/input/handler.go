package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dnav/internal/state"
)

// InputHandler converts tcell key events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent emits the action bound to ev, if any. It returns false once a
// quit action has been emitted.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	action := ActionForKey(key)
	if action == nil {
		return true
	}
	ih.actionChan <- action

	_, quit := action.(statepkg.QuitAction)
	return !quit
}

// ActionForKey maps a key press to its navigation command.
func ActionForKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return statepkg.QuitAction{}
	case tcell.KeyDown:
		return statepkg.NextAction{}
	case tcell.KeyUp:
		return statepkg.PreviousAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		return statepkg.EnterAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		return statepkg.BackAction{}
	case tcell.KeyRune:
		return actionForRune(ev.Rune())
	}
	return nil
}

func actionForRune(r rune) statepkg.Action {
	switch r {
	case 'j':
		return statepkg.NextAction{}
	case 'k':
		return statepkg.PreviousAction{}
	case 'l':
		return statepkg.EnterAction{}
	case 'h':
		return statepkg.BackAction{}
	case 'r', 'R':
		return statepkg.RefreshAction{}
	case 'u', 'U':
		return statepkg.OpenInFileManagerAction{}
	case 'q', 'Q':
		return statepkg.QuitAction{}
	}
	return nil
}

// IsInterrupt reports whether ev must be honored even while input is paused.
func IsInterrupt(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}
