package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/printer"
	"github.com/colonyops/kvdoc/pkg/iojson"
)

type BatchCmd struct {
	flags *Flags
	input *iojson.InputReader

	// flags
	create bool
}

// NewBatchCmd creates a new batch command
func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		input: &iojson.InputReader{},
	}
}

// Register adds the batch command to the application
func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "batch",
		Usage:     "Add many pairs to a type from text",
		UsageText: "kvdoc batch [--input file] [--create] <file> <type>",
		Description: `Reads lines of "key value" text and stores each pair in the type.

Key and value may be separated by any run of spaces, tabs, commas or
semicolons. Tokens after the key are joined with a single space to form the
value. Blank lines are ignored; lines without both a key and a value are
skipped and counted.

Input is read from --input, or from stdin when it is piped.

Example:
  printf 'red #f00\ngreen,#0f0\n' | kvdoc batch colors.json colors`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "create",
				Usage:       "create the type when it does not exist",
				Destination: &cmd.create,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	path, typeName := c.Args().Get(0), c.Args().Get(1)

	text, err := cmd.input.Read()
	if err != nil {
		return err
	}

	open := cmd.flags.openExisting
	if cmd.create {
		open = cmd.flags.openOrCreate
	}
	s, err := open(ctx, path)
	if err != nil {
		return err
	}

	if err := selectOrCreate(ctx, s, typeName, cmd.create); err != nil {
		return err
	}

	res, applied, err := s.ApplyBatch(ctx, string(text))
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	if res.Skipped > 0 {
		p.Warnf("Skipped %s without a key and value", plural(res.Skipped, "line"))
	}
	if applied == 0 {
		p.Warnf("No pairs found, %s left unchanged", path)
		return nil
	}

	written, err := s.Save(ctx, "")
	if err != nil {
		return err
	}

	p.Successf("Added %s to %s in %s", plural(applied, "pair"), s.Current(), written)
	return nil
}
