package render

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rgal/internal/decode"
	"github.com/kk-code-lab/rgal/internal/search"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	themeName        statepkg.Theme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
	lastLayout       Layout
	hasLayout        bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     GetColorTheme(statepkg.ThemeLight),
		themeName: statepkg.ThemeLight,
	}
}

// Render draws one frame: the gallery view plus whatever overlays state has
// open.
func (r *Renderer) Render(state *statepkg.AppState, view statepkg.GalleryView) {
	if state.Theme != r.themeName {
		r.themeName = state.Theme
		r.theme = GetColorTheme(state.Theme)
	}

	r.screen.HideCursor()
	r.screen.Clear()
	w, h := r.screen.Size()
	base := r.baseStyle()
	r.fillRect(0, 0, w, h, base)

	layout := computeLayout(w, h, state)
	defer func() {
		r.lastLayout = layout
		r.hasLayout = true
	}()

	r.drawHeader(state, view, w)
	r.drawSearchBar(state, view, w)
	if layout.NavWidth > 0 {
		r.drawNav(state, layout)
	}
	if view.Empty {
		r.drawEmpty(view, layout)
	} else {
		r.drawGrid(state, view, layout)
	}
	r.drawPagination(state, view, &layout, w)
	r.drawStatusLine(state, w, h)

	if state.ViewerOpen {
		r.drawViewer(state, w, h)
	}
	if state.HelpVisible {
		r.drawHelpOverlay(state, w, h)
	}

	r.screen.Show()
}

// LastLayout returns the geometry of the most recent frame.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.lastLayout, r.hasLayout
}

func (r *Renderer) baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
}

// drawHeader renders the title and where the user is.
func (r *Renderer) drawHeader(state *statepkg.AppState, view statepkg.GalleryView, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillRow(0, w, headerRow, style)

	x := r.drawTextLine(0, headerRow, w, "rgal ", style.Bold(true))

	crumb := breadcrumb(state)
	if view.Searching {
		crumb = fmt.Sprintf("Search %q in %s", view.Query, scopeLabel(state, view.Scope))
	}

	count := strconv.Itoa(view.TotalItems) + " items"
	if view.TotalItems == 1 {
		count = "1 item"
	}
	countWidth := r.measureTextWidth(count)
	available := w - x - countWidth - 1
	if available > 0 {
		r.drawTextLine(x, headerRow, available, r.fitText(crumb, available), style)
	}
	if w-countWidth > x {
		r.drawTextLine(w-countWidth, headerRow, countWidth, count, style)
	}
}

func breadcrumb(state *statepkg.AppState) string {
	group := state.CurrentGroup()
	if group == nil {
		return "(empty catalog)"
	}
	if category := state.CurrentCategory(); category != nil {
		return group.Name + " › " + category.Name
	}
	return group.Name
}

func scopeLabel(state *statepkg.AppState, scope search.Scope) string {
	if scope == search.ScopeCategory {
		return breadcrumb(state)
	}
	return "all categories"
}

// drawSearchBar shows the query input and the scope toggle.
func (r *Renderer) drawSearchBar(state *statepkg.AppState, view statepkg.GalleryView, w int) {
	base := r.baseStyle()
	inputStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg)

	scope := "[s] scope: all"
	if view.Scope == search.ScopeCategory {
		scope = "[s] scope: category"
	}
	scopeWidth := r.measureTextWidth(scope)

	x := r.drawTextLine(0, searchRow, w, " / ", base.Bold(true))
	inputWidth := w - x - scopeWidth - 2
	if inputWidth < 1 {
		return
	}

	text := view.Query
	switch {
	case state.SearchEditing:
		text = state.SearchInput
	case !view.Searching:
		text = ""
	}
	r.fillRow(x, x+inputWidth, searchRow, inputStyle)
	if text == "" && !state.SearchEditing {
		r.drawTextLine(x, searchRow, inputWidth, "search file names", inputStyle.Dim(true))
	} else {
		shown := r.fitText(text, inputWidth-1)
		end := r.drawTextLine(x, searchRow, inputWidth, shown, inputStyle)
		if state.SearchEditing {
			r.screen.ShowCursor(end, searchRow)
		}
	}

	r.drawTextLine(w-scopeWidth, searchRow, scopeWidth, scope, base)
}

// drawNav renders the group/category tree, scrolled to keep the nav cursor
// visible.
func (r *Renderer) drawNav(state *statepkg.AppState, layout Layout) {
	base := r.baseStyle().Foreground(r.theme.NavFg)
	rows := state.NavRows()
	height := layout.GridBottom - layout.GridTop
	if height <= 0 {
		return
	}

	start := layout.NavStart

	for i := 0; i < height && start+i < len(rows); i++ {
		idx := start + i
		row := rows[idx]
		y := layout.GridTop + i

		text, style := r.navRowText(state, row)
		if idx == state.NavCursor && state.Focus == statepkg.FocusNav {
			style = tcell.StyleDefault.Background(r.theme.NavActiveBg).Foreground(r.theme.NavActiveFg)
			r.fillRow(0, layout.NavWidth, y, style)
		}
		r.drawTextLine(0, y, layout.NavWidth, r.fitText(text, layout.NavWidth), style)
	}

	sep := base.Foreground(r.theme.ValueFg)
	for y := layout.GridTop; y < layout.GridBottom; y++ {
		r.screen.SetContent(layout.NavWidth, y, '│', nil, sep)
	}
}

func (r *Renderer) navRowText(state *statepkg.AppState, row statepkg.NavRow) (string, tcell.Style) {
	base := r.baseStyle().Foreground(r.theme.NavFg)
	group := state.Catalog.Group(row.Group)
	if group == nil {
		return "", base
	}
	if row.IsGroup() {
		marker := "▸ "
		if row.Group == state.Selection.GroupIndex {
			marker = "▾ "
		}
		return marker + group.Name, base.Foreground(r.theme.NavGroupFg).Bold(true)
	}

	category := state.Catalog.Category(row.Group, row.Category)
	if category == nil {
		return "", base
	}
	text := fmt.Sprintf("  %s (%d)", category.Name, len(category.Assets))
	if row.Group == state.Selection.GroupIndex && row.Category == state.Selection.CategoryIndex {
		return text, base.Bold(true).Underline(true)
	}
	return text, base
}

func (r *Renderer) drawEmpty(view statepkg.GalleryView, layout Layout) {
	msg := r.fitText(view.EmptyMessage, layout.GridWidth)
	x := layout.GridStart + (layout.GridWidth-r.measureTextWidth(msg))/2
	y := layout.GridTop + (layout.GridBottom-layout.GridTop)/2
	r.drawTextLine(x, y, layout.GridWidth, msg, r.baseStyle().Foreground(r.theme.ValueFg))
}

// drawGrid lays the page out in rows of tiles.
func (r *Renderer) drawGrid(state *statepkg.AppState, view statepkg.GalleryView, layout Layout) {
	first := layout.FirstRow
	for i, item := range view.Items {
		row := i / layout.Columns
		if row < first || row >= first+layout.TileRows {
			continue
		}
		col := i % layout.Columns
		x := layout.GridStart + col*statepkg.TileWidth
		y := layout.GridTop + (row-first)*tileHeight
		if x >= layout.GridStart+layout.GridWidth {
			continue
		}
		selected := i == state.Cursor && state.Focus == statepkg.FocusGallery
		r.drawTile(state, item, x, y, statepkg.TileWidth-1, selected)
	}
}

// drawTile draws a swatch and the label on the first line, the copy value
// (or its copy confirmation) on the second.
func (r *Renderer) drawTile(state *statepkg.AppState, item statepkg.DecoratedAsset, x, y, width int, selected bool) {
	labelStyle := r.baseStyle().Foreground(r.theme.LabelFg)
	valueStyle := r.baseStyle().Foreground(r.theme.ValueFg)
	if selected {
		labelStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		valueStyle = labelStyle
		r.fillRow(x, x+width, y, labelStyle)
		r.fillRow(x, x+width, y+1, labelStyle)
	}

	textX := x
	if color, ok := swatchColor(item); ok {
		swatch := tcell.StyleDefault.Background(color)
		r.fillRow(x, x+swatchWidth, y, swatch)
		textX = x + swatchWidth + 1
	}
	labelWidth := width - (textX - x)
	r.drawTextLine(textX, y, labelWidth, r.fitText(item.DisplayLabel, labelWidth), labelStyle.Bold(true))

	value := item.CopyValue
	if notice, ok := state.NoticeText(statepkg.CopyNoticeKey(item.AssetID)); ok {
		value = notice
		if !selected {
			valueStyle = valueStyle.Foreground(r.theme.NoticeFg)
		}
	}
	r.drawTextLine(x, y+1, width, r.fitText(value, width), valueStyle)
}

func swatchColor(item statepkg.DecoratedAsset) (tcell.Color, bool) {
	hex, ok := decode.Decoded{DisplayLabel: item.DisplayLabel, CopyValue: item.CopyValue}.Color()
	if !ok {
		return tcell.ColorDefault, false
	}
	return tcell.GetColor(hex), true
}

// drawPagination renders prev, the page window, next and the jump input,
// recording click targets in layout.
func (r *Renderer) drawPagination(state *statepkg.AppState, view statepkg.GalleryView, layout *Layout, w int) {
	y := layout.PageRow
	if y <= searchRow {
		return
	}
	base := r.baseStyle().Foreground(r.theme.PageFg)
	plan := view.Pagination
	if plan == nil {
		return
	}

	x := 1
	prevStyle := base
	if !plan.HasPrev() {
		prevStyle = base.Dim(true)
	}
	end := r.drawTextLine(x, y, w-x, "‹ Prev", prevStyle)
	if plan.HasPrev() {
		layout.PageHits = append(layout.PageHits, PageHit{X0: x, X1: end, Page: plan.Prev()})
	}
	x = end + 1

	active := tcell.StyleDefault.Background(r.theme.PageActiveBg).Foreground(r.theme.PageActiveFg).Bold(true)
	for _, tok := range plan.Tokens {
		label := " " + tok.String() + " "
		style := base
		if !tok.Ellipsis && tok.Page == plan.CurrentPage {
			style = active
		}
		end = r.drawTextLine(x, y, w-x, label, style)
		if !tok.Ellipsis {
			layout.PageHits = append(layout.PageHits, PageHit{X0: x, X1: end, Page: tok.Page})
		}
		x = end
	}

	nextStyle := base
	if !plan.HasNext() {
		nextStyle = base.Dim(true)
	}
	x++
	end = r.drawTextLine(x, y, w-x, "Next ›", nextStyle)
	if plan.HasNext() {
		layout.PageHits = append(layout.PageHits, PageHit{X0: x, X1: end, Page: plan.Next()})
	}

	if plan.ShowJump() {
		r.drawJumpInput(state, end+3, y, w)
	}
}

func (r *Renderer) drawJumpInput(state *statepkg.AppState, x, y, w int) {
	labelStyle := r.baseStyle()
	inputStyle := tcell.StyleDefault.Background(r.theme.InputBg).Foreground(r.theme.InputFg)
	if _, invalid := state.NoticeText(statepkg.NoticeKeyJump); invalid {
		labelStyle = labelStyle.Foreground(r.theme.ErrorFg).Bold(true)
		inputStyle = inputStyle.Foreground(r.theme.ErrorFg).Bold(true)
	}

	x = r.drawTextLine(x, y, w-x, "[g] page:", labelStyle) + 1
	const inputWidth = 6
	if x+inputWidth > w {
		return
	}
	r.fillRow(x, x+inputWidth, y, inputStyle)
	end := r.drawTextLine(x, y, inputWidth-1, state.JumpInput, inputStyle)
	if state.JumpEditing {
		r.screen.ShowCursor(end, y)
	}
}

// drawStatusLine shows the last error, or contextual key hints.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y <= headerRow {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(0, w, y, style)

	if state.LastError != nil {
		msg := " " + r.fitText(state.LastError.Error(), w-2)
		r.drawTextLine(0, y, w, msg, style.Foreground(r.theme.ErrorFg))
		return
	}
	r.drawTextLine(0, y, w, r.fitText(buildFooterHelpText(state), w), style.Dim(true))
}
