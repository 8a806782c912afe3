package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	state := &statepkg.AppState{ClipboardAvailable: true, OpenerAvailable: true}

	joined := strings.Join(buildHelpOverlayLines(state), "\n")
	for _, want := range []string{"Navigation", "Pages", "Search", "Actions", "Exit", "Copy value", "system viewer", "Switch to dark theme"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected help to contain %q, got:\n%s", want, joined)
		}
	}
}

func TestBuildHelpOverlayLinesOmitsUnavailableActions(t *testing.T) {
	state := &statepkg.AppState{Theme: statepkg.ThemeDark}

	joined := strings.Join(buildHelpOverlayLines(state), "\n")
	if strings.Contains(joined, "Copy value") || strings.Contains(joined, "system viewer") {
		t.Fatalf("expected unavailable actions to be hidden, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Switch to light theme") {
		t.Fatalf("expected light theme hint in dark mode")
	}
}
