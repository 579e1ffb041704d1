// Package docfile reads and writes documents on disk.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/kvdoc/internal/core/document"
)

// Ext is appended to save paths that have no extension.
const Ext = ".json"

// DefaultPatterns are used by Candidates when none are configured.
var DefaultPatterns = []string{"*.json", "**/*.json"}

// maxCandidates bounds the suggestion list for large trees.
const maxCandidates = 200

// WithExt returns path with Ext appended when it has no extension.
func WithExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + Ext
	}
	return path
}

// Save writes doc to path and returns the path actually written along with
// the bytes written there. The data is written to a temporary file in the
// same directory and renamed into place so a failed write never truncates an
// existing file.
func Save(path string, doc *document.Document) (string, []byte, error) {
	if path == "" {
		return "", nil, errors.New("no file path given")
	}
	path = WithExt(path)

	data, err := doc.Serialize()
	if err != nil {
		return "", nil, fmt.Errorf("encode document: %w", err)
	}

	if err := WriteAtomic(path, data); err != nil {
		return "", nil, err
	}
	return path, data, nil
}

// WriteAtomic replaces path with data. When path is a symlink the file it
// points to is replaced and the link is left alone. An existing file keeps
// its permission bits; new files get 0644.
func WriteAtomic(path string, data []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".kvdoc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// Read returns the raw bytes of path. Failures are reported as
// *document.FormatError, matching how unreadable files are surfaced.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &document.FormatError{Err: err}
	}
	return data, nil
}

// Load reads and parses path. On failure no document is returned.
func Load(path string, opts document.ParseOptions) (*document.Document, []byte, error) {
	data, err := Read(path)
	if err != nil {
		return nil, nil, err
	}

	doc, err := document.Parse(data, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, data, nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Candidates lists files under root matching any of patterns, relative to
// root, sorted and de-duplicated. Paths inside hidden directories, and hidden
// files, are left out.
func Candidates(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		for _, m := range matches {
			if isHidden(m) {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	slices.Sort(out)
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out, nil
}

func isHidden(path string) bool {
	for dir := path; dir != "." && dir != "/" && dir != ""; dir = filepath.Dir(dir) {
		base := filepath.Base(dir)
		if len(base) > 1 && base[0] == '.' {
			return true
		}
	}
	return false
}
