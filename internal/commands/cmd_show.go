package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/styles"
	"github.com/colonyops/kvdoc/internal/tui/jsoncolor"
)

const markdownWrap = 100

type ShowCmd struct {
	flags *Flags

	// flags
	markdown  bool
	plain     bool
	highlight string
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print a document",
		UsageText: "kvdoc show [--markdown | --plain] [--type name] <file>",
		Description: `Prints the document as colorized JSON in its saved form.

--markdown renders one table per type instead. --plain prints the JSON
without colors, exactly as it would be saved.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "markdown",
				Aliases:     []string{"m"},
				Usage:       "render types as markdown tables",
				Destination: &cmd.markdown,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "print uncolored JSON",
				Destination: &cmd.plain,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "highlight this type's name",
				Destination: &cmd.highlight,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().First()

	s, err := cmd.flags.openExisting(ctx, path)
	if err != nil {
		return err
	}
	doc := s.Document()
	out := c.Root().Writer

	if cmd.markdown {
		md := doc.Markdown(filepath.Base(path))
		if cmd.plain {
			_, err := fmt.Fprint(out, md)
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(markdownWrap),
		)
		if err != nil {
			return fmt.Errorf("create markdown renderer: %w", err)
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	}

	data, err := doc.Serialize()
	if err != nil {
		return err
	}
	if cmd.plain {
		_, err = out.Write(data)
		return err
	}
	_, err = fmt.Fprint(out, jsoncolor.ColorizeDocument(data, cmd.highlight))
	return err
}
