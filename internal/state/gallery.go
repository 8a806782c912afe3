package state

import (
	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/pagination"
	"github.com/kk-code-lab/rgal/internal/search"
)

const (
	EmptySearchMessage   = "No matching results."
	EmptyCategoryMessage = "No assets in this category."
)

// DecoratedAsset is an asset paired with its derived label and copy value.
type DecoratedAsset struct {
	AssetID      catalog.AssetID
	DisplayLabel string
	CopyValue    string
}

// GalleryView is everything the presentation layer needs for one frame of
// the gallery.
type GalleryView struct {
	Items []DecoratedAsset
	// Pagination is nil when every item fits on one page.
	Pagination *pagination.Plan

	Page       int
	TotalItems int
	// Offset of Items[0] within the visible set
	FirstItem int

	Empty        bool
	EmptyMessage string

	Searching bool
	Query     string
	Scope     search.Scope
}

// BuildView derives the current page from state: the visible set (search
// results or the selected category), clamped to valid page bounds, each item
// decorated. Nothing is cached.
func BuildView(s *AppState) GalleryView {
	assets := s.ActiveAssets()
	size := s.pageSize()
	page := pagination.New(len(assets), size, s.Selection.Page).Clamp(s.Selection.Page)
	plan := pagination.New(len(assets), size, page)

	view := GalleryView{
		Page:       page,
		TotalItems: len(assets),
		Searching:  s.Selection.Search.Active,
		Query:      s.Selection.Search.Query,
		Scope:      s.scope(),
	}

	if len(assets) == 0 {
		view.Empty = true
		view.EmptyMessage = EmptyCategoryMessage
		if view.Searching {
			view.EmptyMessage = EmptySearchMessage
		}
		return view
	}

	if pagination.Visible(len(assets), size) {
		view.Pagination = &plan
	}

	start, end := plan.Bounds(page)
	view.FirstItem = start
	view.Items = make([]DecoratedAsset, 0, end-start)
	for _, id := range assets[start:end] {
		decoded := s.Decode(id)
		view.Items = append(view.Items, DecoratedAsset{
			AssetID:      id,
			DisplayLabel: decoded.DisplayLabel,
			CopyValue:    decoded.CopyValue,
		})
	}
	return view
}
