package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
	textutil "github.com/kk-code-lab/rgal/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	themeDesc := "Switch to dark theme"
	if state != nil && state.Theme == statepkg.ThemeDark {
		themeDesc = "Switch to light theme"
	}

	actions := []helpOverlayEntry{
		{keys: "↵", desc: "View asset"},
	}
	if state == nil || state.ClipboardAvailable {
		actions = append(actions, helpOverlayEntry{keys: "c / y", desc: "Copy value to clipboard"})
	}
	if state == nil || state.OpenerAvailable {
		actions = append(actions, helpOverlayEntry{keys: "o", desc: "Open asset with system viewer"})
	}
	actions = append(actions,
		helpOverlayEntry{keys: "t", desc: themeDesc},
		helpOverlayEntry{keys: "R", desc: "Reload catalog"},
	)

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "←/↑/→/↓", desc: "Move between assets"},
				{keys: "Tab", desc: "Switch between categories and assets"},
				{keys: "↵ (categories)", desc: "Open group / category"},
				{keys: "Home/End", desc: "First / last asset on page"},
			},
		},
		{
			title: "Pages",
			entries: []helpOverlayEntry{
				{keys: "n / PgDn", desc: "Next page"},
				{keys: "p / PgUp", desc: "Previous page"},
				{keys: "g", desc: "Jump to page"},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Search file names"},
				{keys: "s", desc: "Toggle all / current category"},
				{keys: "Esc", desc: "Clear search"},
			},
		},
		{
			title:   "Actions",
			entries: actions,
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %s %s", textutil.PadToWidth(key, 16), desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := r.baseStyle()
	r.fillRect(0, 0, w, h, baseStyle)

	title := " Help "
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = textutil.TruncateToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		footer := textutil.TruncateToWidth("? toggle · Esc/q close", w)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
