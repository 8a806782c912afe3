package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)
	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	switch {
	case state.SearchEditing:
		return []string{
			"type: search",
			"↵: apply",
			"Ctrl+U: clear input",
			"Esc: cancel",
		}
	case state.JumpEditing:
		return []string{
			"digits: page number",
			"↵: go",
			"Esc: cancel",
		}
	case state.ViewerOpen:
		return []string{
			"Esc/↵: close",
		}
	case state.Focus == statepkg.FocusNav:
		return []string{
			"↑↓: move",
			"↵: open",
			"Tab: assets",
		}
	default:
		segments := []string{
			"arrows: move",
			"↵: view",
			"Tab: categories",
			"n/p: page",
			"/: search",
			"s: scope",
		}
		if state.Selection.Search.Active {
			segments = append(segments, "Esc: clear search")
		}
		return segments
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	if state.SearchEditing || state.JumpEditing {
		return nil
	}

	var segments []string
	if state.ClipboardAvailable {
		segments = append(segments, "c: copy")
	}
	if state.OpenerAvailable {
		segments = append(segments, "o: open")
	}
	segments = append(segments, "?: help")
	return segments
}
