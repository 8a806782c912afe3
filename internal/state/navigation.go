package state

import "github.com/kk-code-lab/rgal/internal/pagination"

// Layout shared by the reducer (cursor movement) and the renderer.
const (
	NavPanelWidth = 26
	TileWidth     = 26
	minScreenCols = 1
)

// NavRow is one line of the navigation panel. Category is -1 for a group
// heading.
type NavRow struct {
	Group    int
	Category int
}

// IsGroup reports whether the row is a group heading.
func (r NavRow) IsGroup() bool { return r.Category < 0 }

// NavRows lists every group, with the categories of the selected group
// expanded beneath it.
func (s *AppState) NavRows() []NavRow {
	if s.Catalog == nil {
		return nil
	}
	rows := make([]NavRow, 0, len(s.Catalog.Groups))
	for gi, group := range s.Catalog.Groups {
		rows = append(rows, NavRow{Group: gi, Category: -1})
		if gi != s.Selection.GroupIndex {
			continue
		}
		for ci := range group.Categories {
			rows = append(rows, NavRow{Group: gi, Category: ci})
		}
	}
	return rows
}

// syncNavCursor points the nav cursor at the selected category, or at the
// group heading when the group has none.
func (s *AppState) syncNavCursor() {
	rows := s.NavRows()
	s.NavCursor = 0
	for i, row := range rows {
		if row.Group != s.Selection.GroupIndex {
			continue
		}
		if row.IsGroup() {
			s.NavCursor = i
			continue
		}
		if row.Category == s.Selection.CategoryIndex {
			s.NavCursor = i
			return
		}
	}
}

func (s *AppState) navMove(delta int) {
	rows := s.NavRows()
	if len(rows) == 0 {
		s.NavCursor = 0
		return
	}
	next := s.NavCursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(rows) {
		next = len(rows) - 1
	}
	s.NavCursor = next
}

// navActivate selects whatever the nav cursor is on. Activating a group
// heading keeps the cursor on that heading.
func (s *AppState) navActivate() {
	rows := s.NavRows()
	if s.NavCursor < 0 || s.NavCursor >= len(rows) {
		return
	}
	row := rows[s.NavCursor]
	if row.IsGroup() {
		s.selectGroup(row.Group)
		for i, r := range s.NavRows() {
			if r.Group == row.Group && r.IsGroup() {
				s.NavCursor = i
				break
			}
		}
		return
	}
	s.selectCategory(row.Group, row.Category)
	s.Focus = FocusGallery
}

// GridColumns is how many tiles fit next to the navigation panel.
func (s *AppState) GridColumns() int {
	available := s.ScreenWidth - NavPanelWidth - 1
	cols := available / TileWidth
	if cols < minScreenCols {
		return minScreenCols
	}
	return cols
}

// pageItemCount is the number of items on the current (clamped) page.
func (s *AppState) pageItemCount() int {
	start, end := s.pageBounds()
	return end - start
}

func (s *AppState) clampCursor() {
	count := s.pageItemCount()
	if s.Cursor >= count {
		s.Cursor = count - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

func (s *AppState) moveCursor(direction string) {
	count := s.pageItemCount()
	if count == 0 {
		s.Cursor = 0
		return
	}
	cols := s.GridColumns()
	next := s.Cursor
	switch direction {
	case "left":
		next--
	case "right":
		next++
	case "up":
		next -= cols
	case "down":
		next += cols
	case "home":
		next = 0
	case "end":
		next = count - 1
	}
	if next < 0 || next >= count {
		return
	}
	s.Cursor = next
}

// CursorAsset returns the asset under the gallery cursor.
func (s *AppState) CursorAsset() (DecoratedAsset, bool) {
	view := BuildView(s)
	if s.Cursor < 0 || s.Cursor >= len(view.Items) {
		return DecoratedAsset{}, false
	}
	return view.Items[s.Cursor], true
}

// pageBounds is the item range of the current page after clamping.
func (s *AppState) pageBounds() (int, int) {
	total := len(s.ActiveAssets())
	plan := pagination.Plan{TotalItems: total, PageSize: s.pageSize(), TotalPages: pagination.TotalPages(total, s.pageSize())}
	return plan.Bounds(plan.Clamp(s.Selection.Page))
}

// TotalPages of the active set.
func (s *AppState) TotalPages() int {
	return pagination.TotalPages(len(s.ActiveAssets()), s.pageSize())
}
