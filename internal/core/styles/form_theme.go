package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// huh still renders with lipgloss v1, so palette colors are converted to hex.
func v1Color(c color.Color) lipglossv1.TerminalColor {
	if hex := Hex(c); hex != "" {
		return lipglossv1.Color(hex)
	}
	return lipglossv1.NoColor{}
}

// FormTheme returns a huh theme built from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	p := CurrentPalette

	var (
		fg      = v1Color(p.Foreground)
		primary = v1Color(p.Primary)
		muted   = v1Color(p.Muted)
		surface = v1Color(p.Surface)
		success = v1Color(p.Success)
		errc    = v1Color(p.Error)
	)

	t.Focused.Base = t.Focused.Base.BorderForeground(surface)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errc)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errc)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(success)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
