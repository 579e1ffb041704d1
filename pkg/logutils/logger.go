// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// MaxFileSize is the size at which an existing log file is rotated to
// "<file>.1" before a new session starts writing.
const MaxFileSize = 5 << 20

// New parses level and returns a JSON logger writing to file along with a
// func that closes it. Sessions append to the same file until it grows past
// MaxFileSize. An empty file discards output since the terminal is owned
// by the editor.
func New(level string, file string) (zerolog.Logger, func(), error) {
	nop := func() {}

	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nop, fmt.Errorf("log level: %w", err)
	}

	if file == "" {
		return build(io.Discard, lvl), nop, nil
	}

	f, err := openFile(file)
	if err != nil {
		return zerolog.Nop(), nop, err
	}
	return build(f, lvl), func() { _ = f.Close() }, nil
}

func build(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("rotate log file: %w", err)
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
