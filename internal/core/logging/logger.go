// Package logging holds zerolog helpers shared by the editor, CLI and TUI.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ForFile returns l annotated with the document path, or l itself when
// path is empty.
func ForFile(l zerolog.Logger, path string) zerolog.Logger {
	if path == "" {
		return l
	}
	return l.With().Str("file", path).Logger()
}
