package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/kvdoc/internal/core/notify"
	"github.com/colonyops/kvdoc/internal/data/docfile"
	"github.com/colonyops/kvdoc/internal/tui/components"
	"github.com/colonyops/kvdoc/internal/tui/components/form"
)

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		return m.handleFormKey(msg)
	case stateConfirmQuit:
		return m.handleConfirmKey(msg)
	case stateShowingHelp:
		switch msg.String() {
		case "esc", "?", "q":
			m.state = stateNormal
			m.help = nil
		}
		return m, nil
	case stateShowingInfo, stateShowingNotifications:
		return m.handleInfoKey(msg)
	}

	if m.docView.IsFiltering() {
		return m.handleFilterKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()

	case key.Matches(msg, m.keys.Up):
		m.docView.MoveUp()
		m.syncSelection()
	case key.Matches(msg, m.keys.Down):
		m.docView.MoveDown()
		m.syncSelection()
	case key.Matches(msg, m.keys.ScrollUp):
		m.docView.ScrollPreviewUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.docView.ScrollPreviewDown()
	case key.Matches(msg, m.keys.Filter):
		m.docView.StartFilter()
	case msg.String() == "esc":
		m.docView.CancelFilter()
		m.syncSelection()

	case key.Matches(msg, m.keys.AddType):
		return m.openForm(formAddType, newTypeForm(m.session.Document()))
	case key.Matches(msg, m.keys.AddPair):
		current, err := m.session.RequireCurrent()
		if err != nil {
			return m, m.pushErr(err)
		}
		return m.openForm(formAddPair, newPairForm(current))
	case key.Matches(msg, m.keys.Batch):
		current, err := m.session.RequireCurrent()
		if err != nil {
			return m, m.pushErr(err)
		}
		return m.openForm(formBatch, newBatchForm(current))
	case key.Matches(msg, m.keys.Sort):
		return m.sortAll()
	case key.Matches(msg, m.keys.Save):
		return m.openForm(formSave, newSaveForm(m.defaultSavePath()))
	case key.Matches(msg, m.keys.Load):
		return m.openForm(formLoad, newLoadForm(m.session.Path(), m.candidates()))

	case key.Matches(msg, m.keys.Info):
		m.info = m.documentInfo()
		m.state = stateShowingInfo
	case key.Matches(msg, m.keys.Notifications):
		m.info = m.notificationInfo()
		m.state = stateShowingNotifications
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.dismissNewest()
	case key.Matches(msg, m.keys.Help):
		m.help = components.NewHelpDialog(m.helpTitle(), m.keys.helpSections())
		m.state = stateShowingHelp
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.docView.CancelFilter()
	case "enter":
		m.docView.ConfirmFilter()
	case "backspace":
		m.docView.DeleteFilterRune()
	case "up":
		m.docView.MoveUp()
	case "down":
		m.docView.MoveDown()
	default:
		if text := msg.Key().Text; text != "" {
			for _, r := range text {
				m.docView.AddFilterRune(r)
			}
		}
	}
	m.syncSelection()
	return m, nil
}

func (m Model) handleInfoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "i", "n":
		m.state = stateNormal
		m.info = nil
	case "up", "k":
		m.info.ScrollUp()
	case "down", "j":
		m.info.ScrollDown()
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)
	switch {
	case m.confirm.Confirmed():
		m.quitting = true
		return m, tea.Quit
	case m.confirm.Cancelled():
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if !m.session.Dirty() {
		m.quitting = true
		return m, tea.Quit
	}
	m.confirm = components.NewConfirmModal("Quit", "You have unsaved changes. They will be lost.")
	m.state = stateConfirmQuit
	return m, nil
}

// syncSelection makes the cursor row the session's current type.
func (m *Model) syncSelection() {
	if name := m.docView.SelectedType(); name != "" && name != m.session.Current() {
		_ = m.session.Select(name)
	}
	m.refresh()
}

func (m Model) openForm(kind formKind, d *form.Dialog) (tea.Model, tea.Cmd) {
	m.form = d
	m.formKind = kind
	m.state = stateForm
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	switch {
	case m.form.Cancelled():
		m.closeForm()
		return m, cmd
	case m.form.Submitted():
		values := m.form.FormValues()
		kind := m.formKind
		m.closeForm()
		return m.submitForm(kind, values)
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.state = stateNormal
}

func (m Model) submitForm(kind formKind, values map[string]string) (tea.Model, tea.Cmd) {
	switch kind {
	case formAddType:
		name := strings.TrimSpace(values[varName])
		if err := m.session.AddType(m.ctx, name); err != nil {
			return m, m.pushErr(err)
		}
		m.docView.CancelFilter()
		m.refresh()
		return m, m.push(notify.Info(fmt.Sprintf("type %q created", name)))

	case formAddPair:
		current := m.session.Current()
		if err := m.session.AddPair(m.ctx, values[varKey], values[varValue]); err != nil {
			return m, m.pushErr(err)
		}
		m.refresh()
		return m, m.push(notify.Info(fmt.Sprintf("%s: %s set", current, strings.TrimSpace(values[varKey]))))

	case formBatch:
		res, applied, err := m.session.ApplyBatch(m.ctx, values[varText])
		if err != nil {
			return m, m.pushErr(err)
		}
		m.refresh()
		if res.Skipped > 0 {
			return m, m.push(notify.Warning(fmt.Sprintf("added %d pairs, skipped %d malformed lines", applied, res.Skipped)))
		}
		return m, m.push(notify.Info(fmt.Sprintf("added %d pairs", applied)))

	case formSave:
		written, err := m.session.Save(m.ctx, strings.TrimSpace(values[varPath]))
		if err != nil {
			return m, m.pushErr(err)
		}
		m.diskWarned = false
		return m, tea.Batch(
			m.push(notify.Info("saved "+written)),
			m.rewatch(),
		)

	case formLoad:
		path := strings.TrimSpace(values[varPath])
		if err := m.session.Load(m.ctx, path); err != nil {
			return m, m.pushErr(err)
		}
		m.diskWarned = false
		m.docView.CancelFilter()
		m.refresh()
		stats := m.session.Document().Stats()
		return m, tea.Batch(
			m.push(notify.Info(openedMessage(path, stats.Types, stats.Pairs))),
			m.rewatch(),
		)
	}
	return m, nil
}

func (m Model) sortAll() (tea.Model, tea.Cmd) {
	n := m.session.Document().Len()
	if n == 0 {
		return m, m.push(notify.Warning("no types to sort"))
	}
	m.session.SortAll(m.ctx)
	m.refresh()
	return m, m.push(notify.Info(fmt.Sprintf("sorted %d types", n)))
}

func (m Model) handleFileChanged(msg fileChangedMsg) (tea.Model, tea.Cmd) {
	if m.watcher == nil || msg.path != m.watcher.Path() {
		return m, nil
	}
	next := m.watcher.Start()

	if msg.removed && !docfile.Exists(msg.path) {
		if m.diskWarned {
			return m, next
		}
		m.diskWarned = true
		return m, tea.Batch(next, m.push(notify.Warning(filepath.Base(msg.path)+" was removed from disk")))
	}

	changed, err := m.session.DiskChanged()
	if err != nil || !changed || m.diskWarned {
		return m, next
	}
	m.diskWarned = true
	return m, tea.Batch(next, m.push(notify.Warning(filepath.Base(msg.path)+" changed on disk; press o to reload")))
}

func (m Model) defaultSavePath() string {
	if p := m.session.Path(); p != "" {
		return p
	}
	return m.cfg.Save.DefaultName
}

func (m Model) candidates() []string {
	files, err := docfile.Candidates(m.root, m.cfg.Load.Patterns)
	if err != nil {
		m.log.Warn().Err(err).Msg("listing open candidates")
		return nil
	}
	if m.root != "." {
		for i, f := range files {
			files[i] = filepath.Join(m.root, f)
		}
	}
	return files
}

func openedMessage(path string, types, pairs int) string {
	return fmt.Sprintf("opened %s: %s, %s", filepath.Base(path), plural(types, "type"), plural(pairs, "pair"))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
