package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/editor"
	"github.com/colonyops/kvdoc/internal/core/logging"
	"github.com/colonyops/kvdoc/internal/data/docfile"
)

// requireArgs fails with the command's usage line when fewer than n
// positional arguments were given.
func requireArgs(c *cli.Command, n int) error {
	if c.Args().Len() < n {
		return fmt.Errorf("expected %d argument(s), got %d\nusage: %s", n, c.Args().Len(), c.UsageText)
	}
	return nil
}

// writePath resolves the target of a mutating command. New files get the
// default extension so the session writes where the user will look.
func writePath(path string) string {
	if docfile.Exists(path) {
		return path
	}
	return docfile.WithExt(path)
}

// openExisting loads path, which must exist.
func (f *Flags) openExisting(ctx context.Context, path string) (*editor.Session, error) {
	if !docfile.Exists(path) {
		return nil, fmt.Errorf("%s: no such file", path)
	}
	s, err := editor.Open(logging.WithFile(ctx, path), path, f.sessionOptions())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openOrCreate loads path, or starts an empty document bound to it.
func (f *Flags) openOrCreate(ctx context.Context, path string) (*editor.Session, error) {
	path = writePath(path)
	return editor.Open(logging.WithFile(ctx, path), path, f.sessionOptions())
}

// selectOrCreate points s at typeName, creating the type when create is set.
func selectOrCreate(ctx context.Context, s *editor.Session, typeName string, create bool) error {
	if s.Document().Has(typeName) {
		return s.Select(typeName)
	}
	if create {
		return s.AddType(ctx, typeName)
	}
	return s.Select(typeName)
}
