package render

import (
	"slices"
	"testing"

	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

func TestBuildFooterHelpSegments(t *testing.T) {
	tests := []struct {
		name  string
		state *statepkg.AppState
		want  []string
	}{
		{
			name:  "gallery",
			state: &statepkg.AppState{ClipboardAvailable: true},
			want:  []string{"arrows: move", "↵: view", "Tab: categories", "n/p: page", "/: search", "s: scope", "c: copy", "?: help"},
		},
		{
			name:  "search editing",
			state: &statepkg.AppState{SearchEditing: true, ClipboardAvailable: true},
			want:  []string{"type: search", "↵: apply", "Ctrl+U: clear input", "Esc: cancel"},
		},
		{
			name:  "jump editing",
			state: &statepkg.AppState{JumpEditing: true},
			want:  []string{"digits: page number", "↵: go", "Esc: cancel"},
		},
		{
			name:  "nav focus",
			state: &statepkg.AppState{Focus: statepkg.FocusNav, OpenerAvailable: true},
			want:  []string{"↑↓: move", "↵: open", "Tab: assets", "o: open", "?: help"},
		},
		{
			name: "active search",
			state: &statepkg.AppState{Selection: statepkg.SelectionState{
				Search: statepkg.SearchState{Active: true, Query: "red"},
			}},
			want: []string{"arrows: move", "↵: view", "Tab: categories", "n/p: page", "/: search", "s: scope", "Esc: clear search", "?: help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFooterHelpSegments(tt.state); !slices.Equal(got, tt.want) {
				t.Fatalf("footer mismatch\nwant: %#v\n got: %#v", tt.want, got)
			}
		})
	}
}

func TestBuildFooterHelpTextNilState(t *testing.T) {
	if got := buildFooterHelpText(nil); got != "" {
		t.Fatalf("expected empty footer for nil state, got %q", got)
	}
}
