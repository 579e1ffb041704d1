package tui

import (
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/colonyops/kvdoc/internal/core/logging"
)

// fileChangedMsg is sent when the watched document changes on disk.
type fileChangedMsg struct {
	path    string
	removed bool
}

// FileWatcher watches a single document file. The parent directory is
// watched rather than the file so atomic renames, including our own saves,
// keep being observed.
type FileWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	debounceDur time.Duration
	log         zerolog.Logger
}

// NewFileWatcher starts watching path.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher:     watcher,
		path:        abs,
		debounceDur: 150 * time.Millisecond,
		log:         logging.ForFile(logging.Component("watcher"), abs),
	}, nil
}

// Path returns the watched file.
func (w *FileWatcher) Path() string { return w.path }

// Start returns a tea.Cmd that blocks until the file changes, then returns a
// fileChangedMsg. The caller must re-invoke Start() after processing the
// message to continue watching. The command returns nil once Close is called.
func (w *FileWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}

				w.log.Debug().Str("op", event.Op.String()).Msg("file system event")
				removed := w.settle(event)
				return fileChangedMsg{path: w.path, removed: removed}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				w.log.Error().Err(err).Msg("watcher error")
			}
		}
	}
}

// settle drains events until the file has been quiet for debounceDur and
// reports whether the last event removed it.
func (w *FileWatcher) settle(first fsnotify.Event) bool {
	removed := first.Has(fsnotify.Remove) || first.Has(fsnotify.Rename)
	debounce := time.NewTimer(w.debounceDur)
	defer debounce.Stop()

	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return removed
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			removed = e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename)
			if !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(w.debounceDur)
		case <-debounce.C:
			return removed
		}
	}
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}
