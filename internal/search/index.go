// Package search filters the catalog by case-insensitive substring match on
// decoded asset filenames.
package search

import (
	"strings"

	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/textutil"
)

type indexedEntry struct {
	id     catalog.AssetID
	folded string
}

type indexedCategory struct {
	entries []indexedEntry
}

// Index holds the upper-cased decoded basename of every asset. The catalog is
// immutable, so it is built once per catalog.
type Index struct {
	groups [][]indexedCategory
}

// NewIndex folds every asset name of cat.
func NewIndex(cat *catalog.Catalog) *Index {
	idx := &Index{}
	if cat == nil {
		return idx
	}
	idx.groups = make([][]indexedCategory, len(cat.Groups))
	for gi, group := range cat.Groups {
		categories := make([]indexedCategory, len(group.Categories))
		for ci, category := range group.Categories {
			entries := make([]indexedEntry, len(category.Assets))
			for ai, id := range category.Assets {
				entries[ai] = indexedEntry{id: id, folded: foldName(id)}
			}
			categories[ci] = indexedCategory{entries: entries}
		}
		idx.groups[gi] = categories
	}
	return idx
}

// foldName is the string queries are matched against: the decoded basename,
// extension included, upper-cased.
func foldName(id catalog.AssetID) string {
	return textutil.Upper(id.DecodedBasename())
}

// Search returns the assets whose name contains term, in catalog order:
// group, then category, then asset. An empty term is not a query and yields
// nil. A category-scoped search outside the catalog yields nil.
func (idx *Index) Search(term string, scope Scope, sel Selection) []catalog.AssetID {
	needle := textutil.Upper(strings.TrimSpace(term))
	if needle == "" || idx == nil {
		return nil
	}

	var results []catalog.AssetID
	collect := func(c indexedCategory) {
		for _, entry := range c.entries {
			if strings.Contains(entry.folded, needle) {
				results = append(results, entry.id)
			}
		}
	}

	if scope == ScopeCategory {
		if c, ok := idx.category(sel); ok {
			collect(c)
		}
		return results
	}

	for _, categories := range idx.groups {
		for _, c := range categories {
			collect(c)
		}
	}
	return results
}

func (idx *Index) category(sel Selection) (indexedCategory, bool) {
	if sel.Group < 0 || sel.Group >= len(idx.groups) {
		return indexedCategory{}, false
	}
	categories := idx.groups[sel.Group]
	if sel.Category < 0 || sel.Category >= len(categories) {
		return indexedCategory{}, false
	}
	return categories[sel.Category], true
}

// Search runs a one-off query without keeping an index.
func Search(cat *catalog.Catalog, term string, scope Scope, sel Selection) []catalog.AssetID {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	return NewIndex(cat).Search(term, scope, sel)
}
