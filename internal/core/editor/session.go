// Package editor holds the state of one editing session: the document, the
// currently selected type, and the file it is bound to. Both the TUI and
// the CLI drive documents through a Session so the rules for cursors, dirty
// tracking and failed loads live in one place.
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/kvdoc/internal/core/batch"
	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/core/logging"
	"github.com/colonyops/kvdoc/internal/data/docfile"
)

var (
	ErrNoCurrentType = errors.New("select or create a type first")
	ErrEmptyBatch    = errors.New("batch input is empty")
	ErrNothingToSave = errors.New("no data to save")
)

// Options configures a Session.
type Options struct {
	// Parse is used when loading files.
	Parse document.ParseOptions
}

// Session is the explicit owner of the edited document.
type Session struct {
	doc     *document.Document
	current string
	path    string
	dirty   bool
	// disk holds the bytes last read from or written to path.
	disk []byte

	opts Options
	log  zerolog.Logger
}

// New returns a session with an empty document and no file.
func New(opts Options) *Session {
	return &Session{
		doc:  document.New(),
		opts: opts,
		log:  logging.Component("editor"),
	}
}

// Open loads path into a new session. A path that does not exist yet starts
// an empty document bound to that path.
func Open(ctx context.Context, path string, opts Options) (*Session, error) {
	s := New(opts)
	if !docfile.Exists(path) {
		s.path = path
		return s, nil
	}
	if err := s.Load(ctx, path); err != nil {
		return nil, err
	}
	return s, nil
}

// Document returns the edited document. Callers must not keep it across a
// Load, which replaces it.
func (s *Session) Document() *document.Document { return s.doc }

// Current returns the selected type, or "" when none is selected. The
// returned name always exists in the document.
func (s *Session) Current() string {
	if s.current != "" && !s.doc.Has(s.current) {
		s.current = ""
	}
	return s.current
}

// Path returns the file the session is bound to.
func (s *Session) Path() string { return s.path }

// SetPath binds the session to path without touching the disk.
func (s *Session) SetPath(path string) { s.path = path }

// Dirty reports whether there are changes not yet written to Path.
func (s *Session) Dirty() bool { return s.dirty }

// AddType creates a type and selects it.
func (s *Session) AddType(ctx context.Context, name string) error {
	if err := s.doc.CreateType(name); err != nil {
		s.warn(ctx, "add-type", err)
		return err
	}

	s.current = strings.TrimSpace(name)
	s.dirty = true
	s.log.Debug().Ctx(logging.WithType(ctx, s.current)).Msg("type added")
	return nil
}

// Select moves the cursor to name.
func (s *Session) Select(name string) error {
	if !s.doc.Has(name) {
		return &document.ValidationError{Field: "type", Value: name, Err: document.ErrUnknownType}
	}
	s.current = name
	return nil
}

// RequireCurrent returns the selected type, or a validation error when none
// is selected.
func (s *Session) RequireCurrent() (string, error) {
	current := s.Current()
	if current == "" {
		return "", &document.ValidationError{Field: "type", Err: ErrNoCurrentType}
	}
	return current, nil
}

// AddPair stores key -> value in the selected type.
func (s *Session) AddPair(ctx context.Context, key, value string) error {
	current, err := s.RequireCurrent()
	if err != nil {
		return err
	}

	ctx = logging.WithType(ctx, current)
	if err := s.doc.SetPair(current, key, value); err != nil {
		s.warn(ctx, "add-pair", err)
		return err
	}

	s.dirty = true
	s.log.Debug().Ctx(ctx).Str("key", strings.TrimSpace(key)).Msg("pair set")
	return nil
}

// ApplyBatch parses text into the selected type and returns the parse
// result with the number of pairs stored.
func (s *Session) ApplyBatch(ctx context.Context, text string) (batch.Result, int, error) {
	current, err := s.RequireCurrent()
	if err != nil {
		return batch.Result{}, 0, err
	}
	if strings.TrimSpace(text) == "" {
		return batch.Result{}, 0, &document.ValidationError{Field: "batch", Err: ErrEmptyBatch}
	}

	ctx = logging.WithType(ctx, current)
	res, applied, err := batch.Apply(s.doc, current, text)
	if err != nil {
		s.warn(ctx, "batch", err)
		return res, 0, err
	}

	if applied > 0 {
		s.dirty = true
	}
	s.log.Info().Ctx(ctx).
		Int("applied", applied).
		Int("skipped", res.Skipped).
		Msg("batch applied")
	return res, applied, nil
}

// SortAll sorts every type's keys.
func (s *Session) SortAll(ctx context.Context) {
	if s.doc.Len() == 0 {
		return
	}
	s.doc.Sort()
	s.dirty = true
	s.log.Debug().Ctx(ctx).Int("types", s.doc.Len()).Msg("document sorted")
}

// Save writes the document to path, or to Path when path is empty, and
// returns the path written.
func (s *Session) Save(ctx context.Context, path string) (string, error) {
	if s.doc.Len() == 0 {
		return "", &document.ValidationError{Field: "document", Err: ErrNothingToSave}
	}
	if path == "" {
		path = s.path
	}

	ctx = logging.WithFile(logging.WithOperation(ctx, "save"), path)

	written, data, err := docfile.Save(path, s.doc)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("save failed")
		return "", fmt.Errorf("save: %w", err)
	}

	s.path = written
	s.disk = data
	s.dirty = false
	s.log.Info().Ctx(ctx).Str("written", written).Msg("document saved")
	return written, nil
}

// Load replaces the document with the contents of path and selects its
// first type. On failure the session is left exactly as it was.
func (s *Session) Load(ctx context.Context, path string) error {
	ctx = logging.WithFile(logging.WithOperation(ctx, "load"), path)

	doc, data, err := docfile.Load(path, s.opts.Parse)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("load failed")
		return fmt.Errorf("load: %w", err)
	}

	s.doc = doc
	s.current = ""
	if types := doc.Types(); len(types) > 0 {
		s.current = types[0]
	}
	s.path = path
	s.disk = data
	s.dirty = false

	stats := doc.Stats()
	s.log.Info().Ctx(ctx).Int("types", stats.Types).Int("pairs", stats.Pairs).Msg("document loaded")
	return nil
}

// DiskChanged reports whether the bound file's bytes differ from what this
// session last read or wrote.
func (s *Session) DiskChanged() (bool, error) {
	if s.path == "" {
		return false, nil
	}
	data, err := docfile.Read(s.path)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(data, s.disk), nil
}

func (s *Session) warn(ctx context.Context, op string, err error) {
	s.log.Warn().Ctx(logging.WithOperation(ctx, op)).Err(err).Msg("rejected")
}
