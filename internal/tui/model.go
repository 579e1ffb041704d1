// Package tui implements the interactive document editor.
package tui

import (
	"context"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/kvdoc/internal/core/config"
	"github.com/colonyops/kvdoc/internal/core/editor"
	"github.com/colonyops/kvdoc/internal/core/logging"
	"github.com/colonyops/kvdoc/internal/core/notify"
	"github.com/colonyops/kvdoc/internal/data/docfile"
	"github.com/colonyops/kvdoc/internal/tui/components"
	"github.com/colonyops/kvdoc/internal/tui/components/form"
)

const notificationHistoryLimit = 100

// UIState represents the current UI state.
type UIState int

const (
	stateNormal UIState = iota
	stateForm
	stateConfirmQuit
	stateShowingHelp
	stateShowingInfo
	stateShowingNotifications
)

// Options configures the TUI model.
type Options struct {
	Context context.Context
	Session *editor.Session
	Config  *config.Config
	// Root is the directory searched for open-prompt suggestions.
	Root  string
	Build BuildInfo
}

// Model is the main bubbletea model. All document mutations go through the
// session, synchronously, inside Update.
type Model struct {
	ctx     context.Context
	session *editor.Session
	cfg     *config.Config
	root    string
	build   BuildInfo
	keys    keyMap

	state    UIState
	docView  *DocView
	form     *form.Dialog
	formKind formKind
	confirm  components.ConfirmModal
	help     *components.HelpDialog
	info     *components.InfoDialog

	toasts  *toastStack
	history *notify.History

	watcher *FileWatcher
	// diskWarned suppresses repeated change warnings until the next load or save.
	diskWarned bool

	width    int
	height   int
	quitting bool

	log zerolog.Logger
}

// New creates a new TUI model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	session := opts.Session
	if session == nil {
		session = editor.New(editor.Options{})
	}
	root := opts.Root
	if root == "" {
		root = "."
	}

	m := Model{
		ctx:     ctx,
		session: session,
		cfg:     cfg,
		root:    root,
		build:   opts.Build,
		keys:    defaultKeyMap(),
		docView: NewDocView(),
		toasts:  &toastStack{},
		history: notify.NewHistory(notificationHistoryLimit),
		log:     logging.Component("tui"),
	}
	m.refresh()

	if path := session.Path(); path != "" {
		if docfile.Exists(path) {
			stats := session.Document().Stats()
			m.push(notify.Info(openedMessage(path, stats.Types, stats.Pairs)))
		} else {
			m.push(notify.Info("new document: " + filepath.Base(path)))
		}
		m.rewatch()
	}

	return m
}

// Init starts the toast timer and the file watcher.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.toasts.start() {
		cmds = append(cmds, nextToastFrame())
	}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Start())
	}
	return tea.Batch(cmds...)
}

// Session returns the session the model edits.
func (m Model) Session() *editor.Session { return m.session }

// Close releases the file watcher.
func (m Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.docView.SetSize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case toastFrameMsg:
		m.toasts.advance(toastFrame)
		if m.toasts.empty() {
			m.toasts.running = false
			return m, nil
		}
		return m, nextToastFrame()

	case fileChangedMsg:
		return m.handleFileChanged(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.state == stateForm && m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

// push records n and shows it as a toast.
func (m *Model) push(n notify.Notification) tea.Cmd {
	m.history.Add(n)
	m.toasts.push(n)

	ev := m.log.Info()
	switch n.Level {
	case notify.LevelWarning:
		ev = m.log.Warn()
	case notify.LevelError:
		ev = m.log.Error()
	}
	ev.Ctx(m.ctx).Str("level", string(n.Level)).Msg(n.Message)

	if !m.toasts.start() {
		return nil
	}
	return nextToastFrame()
}

// pushErr classifies err and shows it.
func (m *Model) pushErr(err error) tea.Cmd {
	return m.push(notify.FromError(err))
}

// refresh redraws the document view from the session.
func (m *Model) refresh() {
	m.docView.SetDocument(m.session.Document(), m.session.Current())
}

// rewatch points the file watcher at the session's path. Watching is best
// effort: failures are logged and the editor carries on.
func (m *Model) rewatch() tea.Cmd {
	path := m.session.Path()
	if !m.cfg.Watch.Enabled || path == "" {
		return nil
	}

	if m.watcher != nil {
		if abs, err := filepath.Abs(path); err == nil && abs == m.watcher.Path() {
			return nil
		}
		_ = m.watcher.Close()
		m.watcher = nil
	}

	w, err := NewFileWatcher(path)
	if err != nil {
		m.log.Warn().Err(err).Str("file", path).Msg("cannot watch file")
		return nil
	}
	m.watcher = w
	return w.Start()
}
