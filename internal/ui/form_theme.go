package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	progressGreen = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	errorRed      = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
)

// FormTheme tints the progress bar and primary buttons green and tightens the
// spacing of the download form. Everything else comes from the default theme.
type FormTheme struct {
	base fyne.Theme
}

// NewFormTheme creates the theme used by the main window
func NewFormTheme() fyne.Theme {
	return &FormTheme{base: theme.DefaultTheme()}
}

func (t *FormTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameSuccess:
		return progressGreen
	case theme.ColorNameError:
		return errorRed
	}
	return t.base.Color(name, variant)
}

func (t *FormTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *FormTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *FormTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	}
	return t.base.Size(name)
}
