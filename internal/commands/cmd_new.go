package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/editor"
	"github.com/colonyops/kvdoc/internal/core/logging"
	"github.com/colonyops/kvdoc/internal/core/styles"
	"github.com/colonyops/kvdoc/internal/core/validate"
	"github.com/colonyops/kvdoc/internal/data/docfile"
	"github.com/colonyops/kvdoc/internal/printer"
)

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	types []string
	force bool

	// prompt asks for the first type name when none was given.
	prompt func() (string, error)
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	cmd := &NewCmd{flags: flags}
	cmd.prompt = cmd.runForm
	return cmd
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a new document",
		UsageText: "kvdoc new [--type name]... [--force] <file>",
		Description: `Creates a document containing the given empty types. The .json extension is
added when the file name has none.

When --type is omitted, an interactive form prompts for the first type.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "type to create (repeatable)",
				Destination: &cmd.types,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite an existing file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	if err := validate.FilePathField("file", c.Args().First()); err != nil {
		return err
	}
	path := docfile.WithExt(c.Args().First())

	if docfile.Exists(path) && !cmd.force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	types := cmd.types
	if len(types) == 0 {
		name, err := cmd.prompt()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
		types = []string{name}
	}

	s := editor.New(cmd.flags.sessionOptions())
	ctx = logging.WithFile(ctx, path)
	for _, name := range types {
		if err := s.AddType(ctx, name); err != nil {
			return err
		}
	}

	written, err := s.Save(ctx, path)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Created %s with %s", written, plural(len(types), "type"))
	return nil
}

func (cmd *NewCmd) runForm() (string, error) {
	var name string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First type").
				Description("Top-level group of key/value pairs").
				Validate(validate.Required).
				Value(&name),
		),
	).WithTheme(styles.FormTheme()).Run()
	return name, err
}
