package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

// HelpEntry is one key binding shown in the help dialog.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection is a titled group of bindings.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists the key bindings of the editor.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	keyWidth int
}

// NewHelpDialog builds a dialog whose key column fits the widest key.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	width := 0
	for _, s := range sections {
		for _, e := range s.Entries {
			width = max(width, lipgloss.Width(e.Key))
		}
	}
	return &HelpDialog{title: title, sections: sections, keyWidth: width + 2}
}

// View renders the dialog box without positioning it.
func (h *HelpDialog) View() string {
	var b strings.Builder
	b.WriteString(styles.TextForegroundBoldStyle.Render(h.title))
	b.WriteString("\n")

	rule := styles.TextMutedStyle.Render(strings.Repeat("─", h.ruleWidth()))
	for _, s := range h.sections {
		b.WriteString("\n")
		if s.Title != "" {
			b.WriteString(styles.HelpDialogSectionStyle.Render(s.Title) + "\n")
			b.WriteString(rule + "\n")
		}
		for _, e := range s.Entries {
			b.WriteString(h.row(e) + "\n")
		}
	}

	b.WriteString(styles.HelpDialogHelpStyle.Render("esc/? close"))
	return styles.HelpDialogModalStyle.Render(b.String())
}

// Overlay centers the dialog over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Overlay(background, h.View(), width, height)
}

func (h *HelpDialog) row(e HelpEntry) string {
	key := styles.TextPrimaryBoldStyle.Width(h.keyWidth).Render(e.Key)
	return key + styles.TextForegroundStyle.Render(e.Desc)
}

func (h *HelpDialog) ruleWidth() int {
	w := 0
	for _, s := range h.sections {
		for _, e := range s.Entries {
			w = max(w, h.keyWidth+lipgloss.Width(e.Desc))
		}
	}
	return max(w, lipgloss.Width(h.title))
}
