package render

import statepkg "github.com/kk-code-lab/rgal/internal/state"

// Rows: header, search bar, grid..., pagination, footer.
const (
	headerRow   = 0
	searchRow   = 1
	gridTopRow  = 2
	bottomRows  = 2
	tileHeight  = 3
	swatchWidth = 2
)

// Layout is the geometry of the last rendered frame, used for mouse hit
// testing.
type Layout struct {
	NavWidth   int
	NavStart   int // first nav row shown
	GridStart  int
	GridWidth  int
	GridTop    int
	GridBottom int // exclusive
	Columns    int
	TileRows   int // tile rows that fit on screen
	FirstRow   int // first tile row shown
	PageRow    int
	PageHits   []PageHit
}

// PageHit is a clickable span on the pagination row.
type PageHit struct {
	X0, X1 int // [X0, X1)
	Page   int
}

func computeLayout(w, h int, state *statepkg.AppState) Layout {
	m := Layout{GridTop: gridTopRow, PageRow: h - 2}

	m.NavWidth = statepkg.NavPanelWidth
	if w < statepkg.NavPanelWidth+statepkg.TileWidth+1 {
		// Too narrow for both panels; the grid wins.
		m.NavWidth = 0
	}
	if m.NavWidth > 0 {
		m.GridStart = m.NavWidth + 1
	}
	m.GridWidth = w - m.GridStart
	if m.GridWidth < 0 {
		m.GridWidth = 0
	}

	m.GridBottom = h - bottomRows
	if m.GridBottom < m.GridTop {
		m.GridBottom = m.GridTop
	}

	m.Columns = 1
	if state != nil {
		m.Columns = state.GridColumns()
	}
	m.TileRows = (m.GridBottom - m.GridTop) / tileHeight
	if m.TileRows < 1 {
		m.TileRows = 1
	}
	if state != nil {
		m.FirstRow = m.firstVisibleRow(state.Cursor)
		if height := m.GridBottom - m.GridTop; state.NavCursor >= height {
			m.NavStart = state.NavCursor - height + 1
		}
	}
	return m
}

// firstVisibleRow scrolls the grid so the cursor's row is on screen.
func (m Layout) firstVisibleRow(cursor int) int {
	if m.Columns < 1 {
		return 0
	}
	row := cursor / m.Columns
	if row < m.TileRows {
		return 0
	}
	return row - m.TileRows + 1
}

// TileAt returns the page-relative item index of the tile at (x, y).
func (m Layout) TileAt(x, y int) (int, bool) {
	if x < m.GridStart || y < m.GridTop || y >= m.GridBottom || m.Columns < 1 {
		return 0, false
	}
	col := (x - m.GridStart) / statepkg.TileWidth
	row := (y - m.GridTop) / tileHeight
	if col >= m.Columns || row >= m.TileRows {
		return 0, false
	}
	return (m.FirstRow+row)*m.Columns + col, true
}

// NavRowAt returns the index into NavRows of the line at (x, y).
func (m Layout) NavRowAt(x, y int) (int, bool) {
	if m.NavWidth == 0 || x >= m.NavWidth || y < m.GridTop || y >= m.GridBottom {
		return 0, false
	}
	return m.NavStart + y - m.GridTop, true
}

// PageAt returns the page targeted by a click on the pagination row.
func (m Layout) PageAt(x, y int) (int, bool) {
	if y != m.PageRow {
		return 0, false
	}
	for _, hit := range m.PageHits {
		if x >= hit.X0 && x < hit.X1 {
			return hit.Page, true
		}
	}
	return 0, false
}
