package search

import (
	"reflect"
	"testing"

	"github.com/kk-code-lab/rgal/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Groups: []catalog.Group{
		{Name: "Western", Categories: []catalog.Category{
			{Name: "Warm", Assets: []catalog.AssetID{"w/warm/Red-#FF0000.png", "w/warm/Orange-#FFA500.png", "w/warm/Dark%20Red-#8B0000.png"}},
			{Name: "Cool", Assets: []catalog.AssetID{"w/cool/Blue-#0000FF.png", "w/cool/Reddish%20Blue.png"}},
		}},
		{Name: "Empty"},
		{Name: "Japanese", Categories: []catalog.Category{
			{Name: "Pinks", Assets: []catalog.AssetID{"j/Sakura-%E3%81%95%E3%81%8F%E3%82%89-%23FFB7C5.png", "j/Beni-red-#D7003A.png"}},
		}},
	}}
}

func TestGlobalSearchKeepsCatalogOrder(t *testing.T) {
	cat := testCatalog()
	want := []catalog.AssetID{
		"w/warm/Red-#FF0000.png",
		"w/warm/Dark%20Red-#8B0000.png",
		"w/cool/Reddish%20Blue.png",
		"j/Beni-red-#D7003A.png",
	}

	selections := []Selection{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {9, 9}}
	for _, sel := range selections {
		got := Search(cat, "red", ScopeGlobal, sel)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("selection %+v: got %v, want %v", sel, got, want)
		}
	}
}

func TestCategorySearchIsLimitedToSelection(t *testing.T) {
	idx := NewIndex(testCatalog())

	got := idx.Search("red", ScopeCategory, Selection{Group: 0, Category: 1})
	want := []catalog.AssetID{"w/cool/Reddish%20Blue.png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := idx.Search("red", ScopeCategory, Selection{Group: 1, Category: 0}); len(got) != 0 {
		t.Fatalf("category missing from group must yield no results, got %v", got)
	}
	if got := idx.Search("red", ScopeCategory, Selection{Group: 7, Category: 0}); len(got) != 0 {
		t.Fatalf("group out of range must yield no results, got %v", got)
	}
}

func TestSearchMatchesDecodedNames(t *testing.T) {
	idx := NewIndex(testCatalog())

	tests := []struct {
		term string
		want int
	}{
		{term: "さくら", want: 1},
		{term: "dark red", want: 1},
		{term: "  ORANGE  ", want: 1},
		{term: ".png", want: 7},
		{term: "#ffb7", want: 1},
		{term: "%20", want: 0},
		{term: "violet", want: 0},
	}
	for _, tt := range tests {
		if got := idx.Search(tt.term, ScopeGlobal, Selection{}); len(got) != tt.want {
			t.Errorf("Search(%q) returned %d results (%v), want %d", tt.term, len(got), got, tt.want)
		}
	}
}

func TestEmptyTermIsNotAQuery(t *testing.T) {
	if got := Search(testCatalog(), "   ", ScopeGlobal, Selection{}); got != nil {
		t.Fatalf("expected nil for blank term, got %v", got)
	}
	var idx *Index
	if got := idx.Search("red", ScopeGlobal, Selection{}); got != nil {
		t.Fatalf("nil index should yield nil, got %v", got)
	}
}

func TestScopeHelpers(t *testing.T) {
	if ScopeGlobal.Toggle() != ScopeCategory || ScopeCategory.Toggle() != ScopeGlobal {
		t.Fatal("Toggle should flip scopes")
	}
	if _, err := ParseScope("everywhere"); err == nil {
		t.Fatal("expected error for unknown scope")
	}
	if s, err := ParseScope("category"); err != nil || s != ScopeCategory {
		t.Fatalf("ParseScope(category) = %q, %v", s, err)
	}
}
