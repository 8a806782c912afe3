package state

import (
	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/decode"
	"github.com/kk-code-lab/rgal/internal/search"
)

// DefaultPageSize is the number of assets shown per page.
const DefaultPageSize = 50

// Theme is the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored preference to a theme; anything unknown, including
// an absent value, is light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Focus is the panel receiving navigation keys.
type Focus int

const (
	FocusGallery Focus = iota
	FocusNav
)

// ===== STATE DEFINITIONS =====

// SearchState caches the results of the current query. Results is always
// derived from (Query, Scope, selection); it is empty and Active is false
// whenever Query is empty.
type SearchState struct {
	Active  bool
	Scope   search.Scope
	Query   string
	Results []catalog.AssetID
}

// SelectionState is where the user is in the catalog.
type SelectionState struct {
	GroupIndex    int
	CategoryIndex int
	Page          int
	Search        SearchState
}

// Notice is a transient message shown until its scheduled expiry. Seq
// identifies which scheduling an expiry belongs to.
type Notice struct {
	Text string
	Seq  int
}

// AppState is the single source of truth
type AppState struct {
	Catalog  *catalog.Catalog
	PageSize int

	Selection SelectionState

	// Gallery cursor, relative to the first item of the current page
	Cursor int
	Focus  Focus
	// Row within NavRows()
	NavCursor int

	// Text inputs
	SearchEditing bool
	SearchInput   string
	JumpEditing   bool
	JumpInput     string

	// Overlay viewer
	ViewerOpen  bool
	ViewerAsset catalog.AssetID

	Theme       Theme
	HelpVisible bool

	ClipboardAvailable bool
	OpenerAvailable    bool
	Notices            map[string]Notice
	noticeSeq          int

	ScreenWidth  int
	ScreenHeight int

	LastError error

	index   *search.Index
	decoder *decode.Decoder
}

// Options configure a new AppState.
type Options struct {
	PageSize     int
	DefaultScope search.Scope
	Theme        Theme
	Decoder      *decode.Decoder
}

// NewAppState starts at the first category of the first group, page 1, with
// no search.
func NewAppState(cat *catalog.Catalog, opts Options) *AppState {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if opts.DefaultScope == "" {
		opts.DefaultScope = search.ScopeGlobal
	}
	if opts.Theme == "" {
		opts.Theme = ThemeLight
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	s := &AppState{
		Catalog:  cat,
		PageSize: opts.PageSize,
		Selection: SelectionState{
			Page:   1,
			Search: SearchState{Scope: opts.DefaultScope},
		},
		Theme:   opts.Theme,
		Notices: make(map[string]Notice),
		index:   search.NewIndex(cat),
		decoder: opts.Decoder,
	}
	s.syncNavCursor()
	return s
}

// ===== HELPER METHODS =====

func (s *AppState) searchIndex() *search.Index {
	if s.index == nil {
		s.index = search.NewIndex(s.Catalog)
	}
	return s.index
}

func (s *AppState) pageSize() int {
	if s.PageSize < 1 {
		return DefaultPageSize
	}
	return s.PageSize
}

func (s *AppState) selection() search.Selection {
	return search.Selection{Group: s.Selection.GroupIndex, Category: s.Selection.CategoryIndex}
}

// CurrentGroup returns the selected group or nil.
func (s *AppState) CurrentGroup() *catalog.Group {
	return s.Catalog.Group(s.Selection.GroupIndex)
}

// CurrentCategory returns the selected category or nil.
func (s *AppState) CurrentCategory() *catalog.Category {
	return s.Catalog.Category(s.Selection.GroupIndex, s.Selection.CategoryIndex)
}

// ActiveAssets is the visible set: search results while searching, otherwise
// the selected category's assets. Missing indices yield an empty set.
func (s *AppState) ActiveAssets() []catalog.AssetID {
	if s.Selection.Search.Active {
		return s.Selection.Search.Results
	}
	return s.Catalog.Assets(s.Selection.GroupIndex, s.Selection.CategoryIndex)
}

// Decode decorates an asset with the state's decoder.
func (s *AppState) Decode(id catalog.AssetID) decode.Decoded {
	if s.decoder == nil {
		return decode.Decode(id)
	}
	return s.decoder.Decode(id)
}

// NoticeText returns the active notice text for key.
func (s *AppState) NoticeText(key string) (string, bool) {
	n, ok := s.Notices[key]
	return n.Text, ok
}

// NoticeSeq returns the sequence number of the notice for key, or 0.
func (s *AppState) NoticeSeq(key string) int {
	return s.Notices[key].Seq
}

// Notice keys
const NoticeKeyJump = "jump"

// CopyNoticeKey is the notice key for the copy confirmation on one asset.
func CopyNoticeKey(id catalog.AssetID) string {
	return "copy:" + string(id)
}

// CopyNoticeText is the confirmation shown after value reached the clipboard.
func CopyNoticeText(value string) string {
	return "Copied: " + value
}
