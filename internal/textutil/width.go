package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// DisplayWidth is the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		if w := runewidth.RuneWidth(r); w > 0 {
			width += w
		}
	}
	return width
}

// TruncateToWidth shortens text to at most maxWidth cells, marking the cut
// with an ellipsis.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	if maxWidth == 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var b strings.Builder
	current := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 0 {
			w = 0
		}
		if current+w > available {
			break
		}
		b.WriteRune(r)
		current += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadToWidth right-pads text with spaces to exactly width cells, truncating
// first when it is too wide.
func PadToWidth(text string, width int) string {
	text = TruncateToWidth(text, width)
	if pad := width - DisplayWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
