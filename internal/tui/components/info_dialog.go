// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

// InfoStatus marks an info row as passing, warning or failing.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

func (s InfoStatus) glyph() string {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔")
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●")
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘")
	}
	return " "
}

// InfoItem is one "label  value" row.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection is a titled block of rows. An empty title renders the rows
// without a header.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// infoBox is the outer size of an info dialog for a given screen.
type infoBox struct{ width, height int }

func infoBoxFor(screenW, screenH int) infoBox {
	const (
		margin   = 4
		minWidth = 50
		maxH     = 30
	)
	w := min(max(screenW*2/3, minWidth), screenW-margin)
	return infoBox{width: w, height: min(screenH-margin, maxH)}
}

// body is the viewport height: the box minus title, rule, help line and
// border.
func (b infoBox) body() int { return max(b.height-6, 1) }

func (b infoBox) rule() string {
	return styles.TextSurfaceStyle.Render(strings.Repeat("─", max(b.width-6, 1)))
}

// InfoDialog is a scrollable read-only dialog of labelled values, used for
// the document summary and the type list.
type InfoDialog struct {
	title    string
	helpText string
	body     viewport.Model
}

// NewInfoDialog lays out sections for a screen of width x height.
func NewInfoDialog(title string, sections []InfoSection, footer, helpText string, width, height int) *InfoDialog {
	box := infoBoxFor(width, height)
	d := &InfoDialog{
		title:    title,
		helpText: helpText,
		body: viewport.New(
			viewport.WithWidth(box.width-4),
			viewport.WithHeight(box.body()),
		),
	}
	d.body.SetContent(renderInfoSections(sections, footer, box))
	return d
}

func renderInfoSections(sections []InfoSection, footer string, box infoBox) string {
	labelW := 0
	for _, s := range sections {
		for _, it := range s.Items {
			labelW = max(labelW, lipgloss.Width(it.Label))
		}
	}
	label := styles.TextForegroundBoldStyle.Width(labelW + 2)

	var rows []string
	for i, s := range sections {
		if i > 0 {
			rows = append(rows, "")
		}
		if s.Title != "" {
			rows = append(rows, styles.HelpDialogSectionStyle.Render(s.Title), box.rule())
		}
		for _, it := range s.Items {
			rows = append(rows, it.Status.glyph()+" "+label.Render(it.Label)+styles.TextMutedStyle.Render(it.Value))
		}
	}
	if footer != "" {
		rows = append(rows, "", footer)
	}
	return strings.Join(rows, "\n")
}

// ScrollUp moves the body up one line.
func (d *InfoDialog) ScrollUp() { d.body.ScrollUp(1) }

// ScrollDown moves the body down one line.
func (d *InfoDialog) ScrollDown() { d.body.ScrollDown(1) }

// Overlay centers the dialog over background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	box := infoBoxFor(width, height)

	title := d.title
	if d.body.TotalLineCount() > d.body.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%d%%)", int(d.body.ScrollPercent()*100)))
	}

	dialog := styles.ModalStyle.Width(box.width).Height(box.height).Render(
		strings.Join([]string{
			styles.ModalTitleStyle.Render(title),
			box.rule(),
			d.body.View(),
			styles.ModalHelpStyle.Render(d.helpText),
		}, "\n"),
	)
	return Overlay(background, dialog, width, height)
}
