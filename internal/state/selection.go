package state

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/pagination"
	"github.com/kk-code-lab/rgal/internal/search"
)

// selectGroup switches groups. Picking another group starts at its first
// category; picking the current one keeps the category. Either way the page
// goes back to 1 and any search is dropped.
func (s *AppState) selectGroup(g int) {
	g = s.clampGroup(g)
	if g == s.Selection.GroupIndex {
		return
	}
	s.Selection.GroupIndex = g
	s.Selection.CategoryIndex = 0
	s.Selection.Page = 1
	s.clearSearch()
	s.afterSelectionChange()
}

func (s *AppState) selectCategory(g, c int) {
	g = s.clampGroup(g)
	s.Selection.GroupIndex = g
	s.Selection.CategoryIndex = s.clampCategory(g, c)
	s.Selection.Page = 1
	s.clearSearch()
	s.afterSelectionChange()
}

// setPage validates p against the active item count. An invalid page leaves
// the state untouched.
func (s *AppState) setPage(p int) error {
	totalPages := pagination.TotalPages(len(s.ActiveAssets()), s.pageSize())
	if err := pagination.CheckPage(p, totalPages); err != nil {
		return err
	}
	if p != s.Selection.Page {
		s.Selection.Page = p
		s.Cursor = 0
	}
	return nil
}

func (s *AppState) jumpToPage(input string) error {
	totalPages := pagination.TotalPages(len(s.ActiveAssets()), s.pageSize())
	page, err := pagination.ParsePage(input, totalPages)
	if err != nil {
		return err
	}
	return s.setPage(page)
}

// runSearch treats a blank term as "clear search".
func (s *AppState) runSearch(term string) {
	query := strings.TrimSpace(term)
	if query == "" {
		s.clearSearch()
		s.normalizePage()
		return
	}
	s.Selection.Search.Active = true
	s.Selection.Search.Query = query
	s.Selection.Search.Results = s.searchIndex().Search(query, s.scope(), s.selection())
	s.SearchInput = query
	s.Selection.Page = 1
	s.Cursor = 0
}

func (s *AppState) scope() search.Scope {
	if s.Selection.Search.Scope == "" {
		return search.ScopeGlobal
	}
	return s.Selection.Search.Scope
}

func (s *AppState) toggleScope() {
	s.Selection.Search.Scope = s.scope().Toggle()
	if s.Selection.Search.Active {
		s.runSearch(s.Selection.Search.Query)
	}
}

func (s *AppState) clearSearch() {
	s.Selection.Search.Active = false
	s.Selection.Search.Query = ""
	s.Selection.Search.Results = nil
	s.SearchInput = ""
	s.SearchEditing = false
}

// normalizePage keeps Page within [1, TotalPages] of the active set.
func (s *AppState) normalizePage() {
	totalPages := pagination.TotalPages(len(s.ActiveAssets()), s.pageSize())
	if s.Selection.Page < 1 {
		s.Selection.Page = 1
	}
	if s.Selection.Page > totalPages {
		s.Selection.Page = totalPages
	}
	s.clampCursor()
}

func (s *AppState) afterSelectionChange() {
	s.Cursor = 0
	s.ViewerOpen = false
	s.JumpEditing = false
	s.JumpInput = ""
	s.syncNavCursor()
}

func (s *AppState) clampGroup(g int) int {
	n := 0
	if s.Catalog != nil {
		n = len(s.Catalog.Groups)
	}
	if n == 0 || g < 0 {
		return 0
	}
	if g >= n {
		return n - 1
	}
	return g
}

func (s *AppState) clampCategory(g, c int) int {
	group := s.Catalog.Group(g)
	if group == nil || len(group.Categories) == 0 || c < 0 {
		return 0
	}
	if c >= len(group.Categories) {
		return len(group.Categories) - 1
	}
	return c
}

// ClampSelection pulls group and category indices back inside the catalog,
// e.g. after it was reloaded smaller.
func (s *AppState) ClampSelection() {
	s.Selection.GroupIndex = s.clampGroup(s.Selection.GroupIndex)
	s.Selection.CategoryIndex = s.clampCategory(s.Selection.GroupIndex, s.Selection.CategoryIndex)
	s.normalizePage()
	s.syncNavCursor()
}

func (s *AppState) replaceCatalog(cat *catalog.Catalog) error {
	if cat == nil {
		return fmt.Errorf("replace catalog: %w", catalog.ErrInvalidCatalog)
	}
	s.Catalog = cat
	s.index = search.NewIndex(cat)
	s.ViewerOpen = false
	s.ClampSelection()
	if s.Selection.Search.Active {
		page := s.Selection.Page
		s.runSearch(s.Selection.Search.Query)
		s.Selection.Page = page
		s.normalizePage()
	}
	return nil
}
