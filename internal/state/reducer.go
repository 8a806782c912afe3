package state

import (
	"fmt"
	"unicode"
)

// ===== REDUCER =====

// StateReducer applies actions to state. Every action is one atomic
// transition; the view is rebuilt from the resulting state.
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce mutates state in place. A returned error means the action was
// rejected and state is unchanged.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if state.Notices == nil {
		state.Notices = make(map[string]Notice)
	}

	switch a := action.(type) {

	// ===== SELECTION =====

	case SelectGroupAction:
		state.selectGroup(a.Group)

	case SelectCategoryAction:
		state.selectCategory(a.Group, a.Category)

	case SetPageAction:
		if err := state.setPage(a.Page); err != nil {
			return state, err
		}

	case JumpToPageAction:
		if err := state.jumpToPage(a.Input); err != nil {
			return state, err
		}
		state.JumpEditing = false
		state.JumpInput = ""

	case PageStepAction:
		// Stepping past either end is a no-op, not an input error.
		target := state.Selection.Page + a.Delta
		if target >= 1 && target <= state.TotalPages() {
			_ = state.setPage(target)
		}

	// ===== SEARCH =====

	case SearchAction:
		state.runSearch(a.Term)
		state.SearchEditing = false

	case ToggleScopeAction:
		state.toggleScope()

	case ClearSearchAction:
		state.clearSearch()
		state.normalizePage()

	case SearchStartAction:
		state.SearchEditing = true
		state.JumpEditing = false
		state.SearchInput = state.Selection.Search.Query

	case SearchCharAction:
		if state.SearchEditing && unicode.IsPrint(a.Char) {
			state.SearchInput += string(a.Char)
		}

	case SearchBackspaceAction:
		if state.SearchEditing && state.SearchInput != "" {
			runes := []rune(state.SearchInput)
			state.SearchInput = string(runes[:len(runes)-1])
		}

	case SearchResetInputAction:
		state.SearchInput = ""

	case SearchSubmitAction:
		state.runSearch(state.SearchInput)
		state.SearchEditing = false

	case SearchCancelAction:
		state.SearchEditing = false
		state.SearchInput = state.Selection.Search.Query

	// ===== PAGE JUMP INPUT =====

	case JumpStartAction:
		state.JumpEditing = true
		state.SearchEditing = false
		state.JumpInput = ""

	case JumpCharAction:
		if state.JumpEditing && a.Char >= '0' && a.Char <= '9' {
			state.JumpInput += string(a.Char)
		}

	case JumpBackspaceAction:
		if state.JumpEditing && state.JumpInput != "" {
			runes := []rune(state.JumpInput)
			state.JumpInput = string(runes[:len(runes)-1])
		}

	case JumpSubmitAction:
		if err := state.jumpToPage(state.JumpInput); err != nil {
			return state, err
		}
		state.JumpEditing = false
		state.JumpInput = ""

	case JumpCancelAction:
		state.JumpEditing = false
		state.JumpInput = ""

	// ===== CURSOR =====

	case MoveCursorAction:
		state.moveCursor(a.Direction)

	case SetCursorAction:
		if a.Index >= 0 && a.Index < state.pageItemCount() {
			state.Cursor = a.Index
			state.Focus = FocusGallery
		}

	case FocusToggleAction:
		if state.Focus == FocusNav {
			state.Focus = FocusGallery
		} else {
			state.Focus = FocusNav
			state.syncNavCursor()
		}

	case NavMoveAction:
		state.navMove(a.Delta)

	case NavActivateAction:
		state.navActivate()

	case NavSelectAction:
		if a.Row >= 0 && a.Row < len(state.NavRows()) {
			state.NavCursor = a.Row
			state.navActivate()
		}

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height

	case OpenViewerAction:
		if item, ok := state.CursorAsset(); ok {
			state.ViewerOpen = true
			state.ViewerAsset = item.AssetID
		}

	case CloseViewerAction:
		state.ViewerOpen = false
		state.ViewerAsset = ""

	case ToggleThemeAction:
		state.Theme = state.Theme.Toggle()

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible

	case HelpHideAction:
		state.HelpVisible = false

	case ShowNoticeAction:
		state.noticeSeq++
		state.Notices[a.Key] = Notice{Text: a.Text, Seq: state.noticeSeq}

	case NoticeExpiredAction:
		if n, ok := state.Notices[a.Key]; ok && n.Seq == a.Seq {
			delete(state.Notices, a.Key)
		}

	case CatalogLoadedAction:
		if err := state.replaceCatalog(a.Catalog); err != nil {
			return state, err
		}

	case nil:
		return state, nil

	default:
		return state, fmt.Errorf("unhandled action %T", action)
	}

	return state, nil
}
