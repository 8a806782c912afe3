package state

import (
	"testing"

	"github.com/kk-code-lab/rgal/internal/catalog"
)

func TestBuildViewSlicesCurrentPage(t *testing.T) {
	s := newTestState()
	mustReduce(t, s, SetPageAction{Page: 3})

	view := BuildView(s)
	if view.Page != 3 || view.TotalItems != 120 || view.FirstItem != 100 {
		t.Fatalf("unexpected view header %+v", view)
	}
	if len(view.Items) != 20 {
		t.Fatalf("expected 20 items on last page, got %d", len(view.Items))
	}
	if view.Items[0].AssetID != "img/num/Swatch100-#000064.png" {
		t.Errorf("unexpected first item %q", view.Items[0].AssetID)
	}
	if view.Items[0].DisplayLabel != "SWATCH100 #000064" || view.Items[0].CopyValue != "#000064" {
		t.Errorf("item not decorated: %+v", view.Items[0])
	}
	if view.Pagination == nil || view.Pagination.TotalPages != 3 || view.Pagination.CurrentPage != 3 {
		t.Fatalf("unexpected pagination %+v", view.Pagination)
	}
}

func TestBuildViewSuppressesPaginationForSinglePage(t *testing.T) {
	s := newTestState()
	mustReduce(t, s, SelectCategoryAction{Group: 0, Category: 1})

	view := BuildView(s)
	if view.Pagination != nil {
		t.Fatalf("expected no pagination for 3 items, got %+v", view.Pagination)
	}
	if len(view.Items) != 3 || view.Empty {
		t.Fatalf("expected 3 items, got %+v", view)
	}
}

func TestBuildViewEmptyMessages(t *testing.T) {
	s := newTestState()
	mustReduce(t, s, SelectGroupAction{Group: 2})

	view := BuildView(s)
	if !view.Empty || view.EmptyMessage != EmptyCategoryMessage {
		t.Fatalf("expected empty category view, got %+v", view)
	}

	mustReduce(t, s, SearchAction{Term: "no-such-asset"})
	view = BuildView(s)
	if !view.Empty || view.EmptyMessage != EmptySearchMessage {
		t.Fatalf("expected empty search view, got %+v", view)
	}
}

func TestBuildViewClampsStalePage(t *testing.T) {
	s := newTestState()
	s.Selection.Page = 99

	view := BuildView(s)
	if view.Page != 3 || len(view.Items) != 20 {
		t.Fatalf("expected clamped last page, got page=%d items=%d", view.Page, len(view.Items))
	}
	if s.Selection.Page != 99 {
		t.Fatal("BuildView must not mutate state")
	}
}

func TestBuildViewMissingCatalogIndex(t *testing.T) {
	s := newTestState()
	s.Selection.GroupIndex = 12

	view := BuildView(s)
	if !view.Empty || len(view.Items) != 0 {
		t.Fatalf("out-of-range group should render as empty, got %+v", view)
	}
}

func TestBuildViewUsesArrowLabels(t *testing.T) {
	s := newTestState()
	mustReduce(t, s, SelectGroupAction{Group: 1})

	view := BuildView(s)
	want := DecoratedAsset{AssetID: catalog.AssetID("img/map/Red%E2%86%92Crimson.png"), DisplayLabel: "RED → CRIMSON", CopyValue: "RED"}
	if view.Items[0] != want {
		t.Fatalf("got %+v, want %+v", view.Items[0], want)
	}
}
