package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	HeaderBg     tcell.Color
	HeaderFg     tcell.Color
	NavFg        tcell.Color
	NavGroupFg   tcell.Color
	NavActiveBg  tcell.Color
	NavActiveFg  tcell.Color
	SelectionBg  tcell.Color
	SelectionFg  tcell.Color
	LabelFg      tcell.Color
	ValueFg      tcell.Color
	NoticeFg     tcell.Color
	PageFg       tcell.Color
	PageActiveBg tcell.Color
	PageActiveFg tcell.Color
	InputBg      tcell.Color
	InputFg      tcell.Color
	ErrorFg      tcell.Color
	FooterBg     tcell.Color
	FooterFg     tcell.Color
	ViewerBg     tcell.Color
	ViewerBorder tcell.Color
}

// GetColorTheme returns the color scheme for theme.
func GetColorTheme(theme statepkg.Theme) ColorTheme {
	if theme == statepkg.ThemeDark {
		return ColorTheme{
			Background:   tcell.Color234,
			Foreground:   tcell.Color252,
			HeaderBg:     tcell.Color236,
			HeaderFg:     tcell.Color255,
			NavFg:        tcell.Color250,
			NavGroupFg:   tcell.Color75,
			NavActiveBg:  tcell.Color33,
			NavActiveFg:  tcell.ColorWhite,
			SelectionBg:  tcell.Color33,
			SelectionFg:  tcell.ColorWhite,
			LabelFg:      tcell.Color255,
			ValueFg:      tcell.Color245,
			NoticeFg:     tcell.Color114,
			PageFg:       tcell.Color250,
			PageActiveBg: tcell.Color75,
			PageActiveFg: tcell.Color234,
			InputBg:      tcell.Color238,
			InputFg:      tcell.Color255,
			ErrorFg:      tcell.Color203,
			FooterBg:     tcell.Color236,
			FooterFg:     tcell.Color250,
			ViewerBg:     tcell.Color236,
			ViewerBorder: tcell.Color75,
		}
	}
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		HeaderBg:     tcell.ColorDefault,
		HeaderFg:     tcell.ColorDefault,
		NavFg:        tcell.ColorDefault,
		NavGroupFg:   tcell.Color33,
		NavActiveBg:  tcell.Color33,
		NavActiveFg:  tcell.ColorWhite,
		SelectionBg:  tcell.Color33,
		SelectionFg:  tcell.ColorWhite,
		LabelFg:      tcell.ColorDefault,
		ValueFg:      tcell.ColorGray,
		NoticeFg:     tcell.ColorGreen,
		PageFg:       tcell.ColorDefault,
		PageActiveBg: tcell.Color33,
		PageActiveFg: tcell.ColorWhite,
		InputBg:      tcell.Color254,
		InputFg:      tcell.ColorBlack,
		ErrorFg:      tcell.ColorRed,
		FooterBg:     tcell.ColorDefault,
		FooterFg:     tcell.ColorDefault,
		ViewerBg:     tcell.ColorDefault,
		ViewerBorder: tcell.Color33,
	}
}
