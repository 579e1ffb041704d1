// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
)

// Required validates a value is non-empty after trimming whitespace.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// FilePath validates a document path: it must be set and must not name a
// directory by ending in a separator.
func FilePath(path string) error {
	if err := Required(path); err != nil {
		return err
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("must name a file, not a directory")
	}
	return nil
}

// TypeNameField returns a criterio validator for type names.
func TypeNameField(field, name string) error {
	return criterio.Run(field, name, Required)
}

// FilePathField returns a criterio validator for document paths.
func FilePathField(field, path string) error {
	return criterio.Run(field, path, FilePath)
}
