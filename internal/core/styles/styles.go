// Package styles holds the color themes and the lipgloss styles shared by
// the CLI and the TUI.
package styles

import (
	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// CurrentPalette is the palette the styles below were built from.
var CurrentPalette Palette

var (
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSecondaryStyle      lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	HeaderStyle  lipgloss.Style
	HelpBarStyle lipgloss.Style

	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ConfirmMessageStyle lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme makes p the active palette and rebuilds every style.
func SetTheme(p Palette) {
	CurrentPalette = p
	text := lipgloss.NewStyle()

	TextPrimaryStyle = text.Foreground(p.Primary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextSecondaryStyle = text.Foreground(p.Secondary)
	TextForegroundStyle = text.Foreground(p.Foreground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = text.Foreground(p.Muted)
	TextSurfaceStyle = text.Foreground(p.Surface)
	TextSuccessStyle = text.Foreground(p.Success)
	TextWarningStyle = text.Foreground(p.Warning)
	TextErrorStyle = text.Foreground(p.Error)

	HeaderStyle = TextPrimaryBoldStyle.PaddingLeft(1)
	HelpBarStyle = TextMutedStyle.PaddingLeft(1)

	box := text.Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(1, 2)
	ModalStyle = box
	ModalTitleStyle = TextForegroundBoldStyle
	ModalHelpStyle = TextMutedStyle.MarginTop(1)
	ConfirmMessageStyle = TextForegroundStyle.MarginBottom(1)

	HelpDialogModalStyle = box
	HelpDialogSectionStyle = TextSecondaryStyle.Bold(true)
	HelpDialogHelpStyle = ModalHelpStyle

	gutter := text.Border(lipgloss.ThickBorder(), false, false, false, true).PaddingLeft(1)
	FormTitleStyle = TextPrimaryBoldStyle
	FormFieldStyle = gutter.BorderForeground(p.Muted)
	FormFieldFocusedStyle = gutter.BorderForeground(p.Primary)
	FormErrorStyle = TextErrorStyle

	toast := TextForegroundStyle.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	ToastInfoStyle = toast.BorderForeground(p.Success)
	ToastWarningStyle = toast.BorderForeground(p.Warning)
	ToastErrorStyle = toast.BorderForeground(p.Error)
}

// nolint:gochecknoinits // styles must be usable before config is loaded.
func init() {
	SetTheme(themes[DefaultTheme])
}

// GlamourStyle adapts glamour's dark style to the active palette for
// `kvdoc show --markdown`.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette
	fg, primary := hexPtr(p.Foreground), hexPtr(p.Primary)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg
	cfg.Table.Color = fg
	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = hexPtr(p.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.Code.Color = hexPtr(p.Secondary)
	cfg.Emph.Color = hexPtr(p.Muted)
	cfg.HorizontalRule.Color = hexPtr(p.Muted)
	return cfg
}
