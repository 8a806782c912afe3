package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

const (
	viewerMaxWidth  = 64
	viewerMaxHeight = 14
)

type viewerLine struct {
	label string
	value string
}

// drawViewer renders the asset overlay: a large swatch when the value is a
// color, then the decoded fields.
func (r *Renderer) drawViewer(state *statepkg.AppState, w, h int) {
	id := state.ViewerAsset
	decoded := state.Decode(id)

	boxW := min(viewerMaxWidth, w-4)
	boxH := min(viewerMaxHeight, h-2)
	if boxW < 20 || boxH < 6 {
		return
	}
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	bg := tcell.StyleDefault.Background(r.theme.ViewerBg).Foreground(r.theme.Foreground)
	if r.theme.ViewerBg == tcell.ColorDefault {
		bg = r.baseStyle()
	}
	r.fillRect(x0, y0, x0+boxW, y0+boxH, bg)
	r.drawBox(x0, y0, boxW, boxH, bg.Foreground(r.theme.ViewerBorder))

	innerX := x0 + 2
	innerW := boxW - 4
	y := y0 + 1

	r.drawTextLine(innerX, y, innerW, r.fitText(decoded.DisplayLabel, innerW), bg.Bold(true))
	y += 2

	item := statepkg.DecoratedAsset{AssetID: id, DisplayLabel: decoded.DisplayLabel, CopyValue: decoded.CopyValue}
	if color, ok := swatchColor(item); ok {
		swatch := tcell.StyleDefault.Background(color)
		for i := 0; i < 3 && y < y0+boxH-5; i++ {
			r.fillRow(innerX, innerX+innerW, y, swatch)
			y++
		}
		y++
	}

	lines := []viewerLine{
		{label: "Value", value: decoded.CopyValue},
		{label: "File", value: id.DecodedBasename()},
		{label: "Path", value: string(id)},
	}
	if notice, ok := state.NoticeText(statepkg.CopyNoticeKey(id)); ok {
		lines = append(lines, viewerLine{value: notice})
	}
	for _, line := range lines {
		if y >= y0+boxH-2 {
			break
		}
		if line.label == "" {
			r.drawTextLine(innerX, y, innerW, r.fitText(line.value, innerW), bg.Foreground(r.theme.NoticeFg))
			y++
			continue
		}
		x := r.drawTextLine(innerX, y, innerW, line.label+": ", bg.Dim(true))
		rest := innerW - (x - innerX)
		r.drawTextLine(x, y, rest, r.fitText(line.value, rest), bg)
		y++
	}

	hint := "c copy · o open · Esc close"
	if !state.OpenerAvailable {
		hint = "c copy · Esc close"
	}
	r.drawTextLine(innerX, y0+boxH-2, innerW, r.fitText(hint, innerW), bg.Dim(true))
}

func (r *Renderer) drawBox(x0, y0, w, h int, style tcell.Style) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}
