package state

import (
	"fmt"

	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/search"
)

// newTestCatalog builds:
//
//	0 "Numbered": 0 "Many" (120 numbered swatches), 1 "Few" (Red, Blue, Redwood)
//	1 "Mapped":   0 "Arrows" (Red→Crimson, Tomato)
//	2 "Empty":    no categories
func newTestCatalog() *catalog.Catalog {
	many := make([]catalog.AssetID, 120)
	for i := range many {
		many[i] = catalog.AssetID(fmt.Sprintf("img/num/Swatch%03d-#%06X.png", i, i))
	}
	return &catalog.Catalog{Groups: []catalog.Group{
		{Name: "Numbered", Categories: []catalog.Category{
			{Name: "Many", Assets: many},
			{Name: "Few", Assets: []catalog.AssetID{"img/few/Red-#FF0000.png", "img/few/Blue-#0000FF.png", "img/few/Redwood-#A45A52.png"}},
		}},
		{Name: "Mapped", Categories: []catalog.Category{
			{Name: "Arrows", Assets: []catalog.AssetID{"img/map/Red%E2%86%92Crimson.png", "img/map/Tomato-#FF6347.png"}},
		}},
		{Name: "Empty"},
	}}
}

func newTestState() *AppState {
	s := NewAppState(newTestCatalog(), Options{PageSize: 50, DefaultScope: search.ScopeGlobal})
	s.ScreenWidth = 80
	s.ScreenHeight = 24
	return s
}

func mustReduce(t interface {
	Helper()
	Fatalf(string, ...any)
}, s *AppState, actions ...Action) {
	t.Helper()
	reducer := NewStateReducer()
	for _, action := range actions {
		if _, err := reducer.Reduce(s, action); err != nil {
			t.Fatalf("Reduce(%T) failed: %v", action, err)
		}
	}
}
