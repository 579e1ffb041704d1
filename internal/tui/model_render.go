package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/notify"
	"github.com/colonyops/kvdoc/internal/core/styles"
	"github.com/colonyops/kvdoc/internal/tui/components"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = "kvdoc " + m.fileLabel()
	return v
}

// render composes the main view with any open modal and toasts.
func (m Model) render() string {
	w, h := m.modalSize()

	mainView := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(w), m.docView.View())

	var content string
	switch {
	case m.state == stateForm && m.form != nil:
		formContent := lipgloss.JoinVertical(
			lipgloss.Left,
			styles.ModalTitleStyle.Render(m.form.Title),
			"",
			m.form.View(),
		)
		content = components.Overlay(mainView, styles.ModalStyle.Render(formContent), w, h)
	case m.state == stateConfirmQuit:
		content = m.confirm.Overlay(mainView, w, h)
	case m.state == stateShowingHelp && m.help != nil:
		content = m.help.Overlay(mainView, w, h)
	case (m.state == stateShowingInfo || m.state == stateShowingNotifications) && m.info != nil:
		content = m.info.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	return m.toasts.overlay(content, w, h)
}

func (m Model) fileLabel() string {
	if p := m.session.Path(); p != "" {
		return filepath.Base(p)
	}
	return "untitled"
}

func (m Model) renderHeader(width int) string {
	title := styles.HeaderStyle.Render("kvdoc")
	file := styles.TextForegroundStyle.Render(styles.IconFile + " " + m.fileLabel())
	if m.session.Dirty() {
		file += " " + styles.TextWarningStyle.Render(styles.IconDirty)
	}

	stats := m.session.Document().Stats()
	right := styles.TextMutedStyle.Render(fmt.Sprintf("%s · %s", plural(stats.Types, "type"), plural(stats.Pairs, "pair")))
	if current := m.session.Current(); current != "" {
		right = styles.TextPrimaryStyle.Render(styles.IconType+" "+current) + styles.TextMutedStyle.Render(" · ") + right
	}

	left := title + "  " + file
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	return truncateOrPad(left+strings.Repeat(" ", gap)+right, width)
}

func (m Model) modalSize() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// documentInfo summarizes the file binding and per-type counts.
func (m Model) documentInfo() *components.InfoDialog {
	doc := m.session.Document()
	stats := doc.Stats()

	path := m.session.Path()
	if path == "" {
		path = "(not saved yet)"
	}

	saved := components.InfoItem{Label: "Saved", Value: "yes", Status: components.InfoStatusPass}
	if m.session.Dirty() {
		saved = components.InfoItem{Label: "Saved", Value: "unsaved changes", Status: components.InfoStatusWarn}
	}

	fileItems := []components.InfoItem{{Label: "Path", Value: path}, saved}
	if changed, err := m.session.DiskChanged(); err != nil {
		fileItems = append(fileItems, components.InfoItem{Label: "Disk", Value: err.Error(), Status: components.InfoStatusFail})
	} else if changed {
		fileItems = append(fileItems, components.InfoItem{Label: "Disk", Value: "changed since last load or save", Status: components.InfoStatusWarn})
	}

	typeItems := make([]components.InfoItem, 0, stats.Types)
	for _, name := range doc.Types() {
		b, _ := doc.Bucket(name)
		typeItems = append(typeItems, components.InfoItem{Label: name, Value: plural(b.Len(), "pair")})
	}

	w, h := m.modalSize()
	return components.NewInfoDialog(
		"Document",
		[]components.InfoSection{
			{Title: "File", Items: fileItems},
			{Title: "Types", Items: typeItems},
		},
		styles.TextMutedStyle.Render(fmt.Sprintf("%s, %s", plural(stats.Types, "type"), plural(stats.Pairs, "pair"))),
		"[j/k] scroll  [esc] close",
		w, h,
	)
}

// notificationInfo lists past notifications, newest first.
func (m Model) notificationInfo() *components.InfoDialog {
	list := m.history.List()
	items := make([]components.InfoItem, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		n := list[i]
		status := components.InfoStatusPass
		switch n.Level {
		case notify.LevelWarning:
			status = components.InfoStatusWarn
		case notify.LevelError:
			status = components.InfoStatusFail
		}
		items = append(items, components.InfoItem{
			Label:  n.CreatedAt.Format("15:04:05"),
			Value:  n.Message,
			Status: status,
		})
	}

	footer := ""
	if len(items) == 0 {
		footer = styles.TextMutedStyle.Render("No notifications")
	}

	w, h := m.modalSize()
	return components.NewInfoDialog(
		"Notifications",
		[]components.InfoSection{{Items: items}},
		footer,
		"[j/k] scroll  [esc] close",
		w, h,
	)
}

func (m Model) helpTitle() string {
	if label := m.build.Label(); label != "" {
		return "Keyboard Shortcuts · kvdoc " + label
	}
	return "Keyboard Shortcuts"
}
