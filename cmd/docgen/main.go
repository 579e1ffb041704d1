// Command docgen writes the markdown CLI reference for kvdoc, by default to
// docs/cli-reference.md. An argument overrides the output path.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	docs "github.com/urfave/cli-docs/v3"

	"github.com/colonyops/kvdoc/internal/commands"
	"github.com/colonyops/kvdoc/internal/tui"
)

const defaultOut = "docs/cli-reference.md"

func main() {
	out := defaultOut
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := generate(out); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", out)
}

func generate(out string) error {
	app := commands.NewApp(&commands.Flags{}, tui.BuildInfo{Version: "dev"})
	md, err := docs.ToMarkdown(app)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, []byte(md), 0o644)
}
