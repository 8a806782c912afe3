package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rgal/internal/pagination"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into actions. It returns false when the
// application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) emit(action statepkg.Action) bool {
	ih.actionChan <- action
	return true
}

// processKeyEvent dispatches by mode: help, viewer, search input, jump input,
// then normal browsing.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ev.Key() == tcell.KeyCtrlZ {
		return ih.emit(statepkg.SuspendAction{})
	}

	st := ih.state
	if st == nil {
		st = &statepkg.AppState{}
	}

	switch {
	case st.HelpVisible:
		return ih.processHelpKey(ev)
	case st.ViewerOpen:
		return ih.processViewerKey(ev)
	case st.SearchEditing:
		return ih.processSearchKey(ev)
	case st.JumpEditing:
		return ih.processJumpKey(ev)
	default:
		return ih.processBrowseKey(st, ev)
	}
}

func (ih *InputHandler) processHelpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.emit(statepkg.HelpHideAction{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case '?', 'q', 'Q':
			return ih.emit(statepkg.HelpHideAction{})
		}
	}
	return true
}

func (ih *InputHandler) processViewerKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		return ih.emit(statepkg.CloseViewerAction{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', ' ':
			return ih.emit(statepkg.CloseViewerAction{})
		case 'c', 'y':
			return ih.emit(statepkg.CopyValueAction{})
		case 'o':
			return ih.emit(statepkg.OpenAssetAction{})
		}
	}
	return true
}

func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.emit(statepkg.SearchCancelAction{})
	case tcell.KeyEnter:
		return ih.emit(statepkg.SearchSubmitAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.SearchBackspaceAction{})
	case tcell.KeyCtrlU:
		return ih.emit(statepkg.SearchResetInputAction{})
	case tcell.KeyRune:
		return ih.emit(statepkg.SearchCharAction{Char: ev.Rune()})
	}
	return true
}

func (ih *InputHandler) processJumpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.emit(statepkg.JumpCancelAction{})
	case tcell.KeyEnter:
		return ih.emit(statepkg.JumpSubmitAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ih.emit(statepkg.JumpBackspaceAction{})
	case tcell.KeyRune:
		return ih.emit(statepkg.JumpCharAction{Char: ev.Rune()})
	}
	return true
}

func (ih *InputHandler) processBrowseKey(st *statepkg.AppState, ev *tcell.EventKey) bool {
	navFocus := st.Focus == statepkg.FocusNav

	switch ev.Key() {
	case tcell.KeyEscape:
		if st.Selection.Search.Active {
			return ih.emit(statepkg.ClearSearchAction{})
		}
		if navFocus {
			return ih.emit(statepkg.FocusToggleAction{})
		}
		return true
	case tcell.KeyTab, tcell.KeyBacktab:
		return ih.emit(statepkg.FocusToggleAction{})
	case tcell.KeyPgDn:
		return ih.emit(statepkg.PageStepAction{Delta: 1})
	case tcell.KeyPgUp:
		return ih.emit(statepkg.PageStepAction{Delta: -1})
	case tcell.KeyEnter:
		if navFocus {
			return ih.emit(statepkg.NavActivateAction{})
		}
		return ih.emit(statepkg.OpenViewerAction{})
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight, tcell.KeyHome, tcell.KeyEnd:
		return ih.processArrow(navFocus, arrowDirection(ev.Key()))
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'h':
		return ih.processArrow(navFocus, "left")
	case 'j':
		return ih.processArrow(navFocus, "down")
	case 'k':
		return ih.processArrow(navFocus, "up")
	case 'l':
		return ih.processArrow(navFocus, "right")
	case '/':
		return ih.emit(statepkg.SearchStartAction{})
	case 's':
		return ih.emit(statepkg.ToggleScopeAction{})
	case 'n', ']':
		return ih.emit(statepkg.PageStepAction{Delta: 1})
	case 'p', '[':
		return ih.emit(statepkg.PageStepAction{Delta: -1})
	case 'g':
		// The jump input only exists for long page lists.
		if (pagination.Plan{TotalPages: st.TotalPages()}).ShowJump() {
			return ih.emit(statepkg.JumpStartAction{})
		}
		return true
	case 'c', 'y':
		return ih.emit(statepkg.CopyValueAction{})
	case 'o':
		return ih.emit(statepkg.OpenAssetAction{})
	case 't':
		return ih.emit(statepkg.ToggleThemeAction{})
	case 'R':
		return ih.emit(statepkg.ReloadCatalogAction{})
	case '?':
		return ih.emit(statepkg.HelpToggleAction{})
	case ' ':
		if !navFocus {
			return ih.emit(statepkg.OpenViewerAction{})
		}
	}
	return true
}

func arrowDirection(key tcell.Key) string {
	switch key {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	}
	return ""
}

// processArrow moves the nav cursor when the nav panel has focus, otherwise
// the gallery cursor.
func (ih *InputHandler) processArrow(navFocus bool, direction string) bool {
	if !navFocus {
		return ih.emit(statepkg.MoveCursorAction{Direction: direction})
	}
	switch direction {
	case "up":
		return ih.emit(statepkg.NavMoveAction{Delta: -1})
	case "down":
		return ih.emit(statepkg.NavMoveAction{Delta: 1})
	case "right":
		return ih.emit(statepkg.NavActivateAction{})
	case "left":
		return ih.emit(statepkg.FocusToggleAction{})
	}
	return true
}
