package state

import (
	"github.com/kk-code-lab/rgal/internal/catalog"
)

// Action is the base interface for all state mutations
type Action interface{}

// ===== SELECTION ACTIONS =====

type SelectGroupAction struct {
	Group int
}
type SelectCategoryAction struct {
	Group    int
	Category int
}

// SetPageAction moves to an explicit page number.
type SetPageAction struct {
	Page int
}

// JumpToPageAction carries free-form page input.
type JumpToPageAction struct {
	Input string
}

// PageStepAction moves Delta pages forward (negative for backwards).
type PageStepAction struct {
	Delta int
}

// ===== SEARCH ACTIONS =====

type SearchAction struct {
	Term string
}
type ToggleScopeAction struct{}
type ClearSearchAction struct{}

// Search input editing
type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchResetInputAction struct{}
type SearchSubmitAction struct{}
type SearchCancelAction struct{}

// Jump input editing
type JumpStartAction struct{}
type JumpCharAction struct {
	Char rune
}
type JumpBackspaceAction struct{}
type JumpSubmitAction struct{}
type JumpCancelAction struct{}

// ===== CURSOR ACTIONS =====

type MoveCursorAction struct {
	Direction string // "left", "right", "up", "down", "home", "end"
}

// SetCursorAction puts the gallery cursor on item Index of the current page.
type SetCursorAction struct {
	Index int
}
type FocusToggleAction struct{}
type NavMoveAction struct {
	Delta int
}
type NavActivateAction struct{}

// NavSelectAction moves the nav cursor to Row and activates it.
type NavSelectAction struct {
	Row int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type OpenViewerAction struct{}
type CloseViewerAction struct{}
type ToggleThemeAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ShowNoticeAction starts a transient notice under Key.
type ShowNoticeAction struct {
	Key  string
	Text string
}

// NoticeExpiredAction ends the notice under Key if it is still the one
// scheduled as Seq.
type NoticeExpiredAction struct {
	Key string
	Seq int
}

// CatalogLoadedAction swaps in a (re)loaded catalog.
type CatalogLoadedAction struct {
	Catalog *catalog.Catalog
}

// ===== APPLICATION ACTIONS =====

// Handled by the application, not the reducer.
type CopyValueAction struct{}
type CopyResultAction struct {
	Asset catalog.AssetID
	Value string
	Err   error
}
type OpenAssetAction struct{}
type ReloadCatalogAction struct{}
type SuspendAction struct{}
type QuitAction struct{}
