package commands

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/printer"
)

type SetCmd struct {
	flags *Flags

	// flags
	create bool
}

// NewSetCmd creates a new set command
func NewSetCmd(flags *Flags) *SetCmd {
	return &SetCmd{flags: flags}
}

// Register adds the set command to the application
func (cmd *SetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "set",
		Usage:     "Set one key in a type",
		UsageText: "kvdoc set [--create] <file> <type> <key> <value>",
		Description: `Stores key -> value in the given type. An existing key keeps its position
and takes the new value; a new key is appended.

Key and value are trimmed and must not be empty.`,
		Flags: []cli.Flag{
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

func (cmd *SetCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 4); err != nil {
		return err
	}
	args := c.Args().Slice()
	path, typeName, key, value := args[0], args[1], args[2], strings.Join(args[3:], " ")

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
	if err := s.AddPair(ctx, key, value); err != nil {
		return err
	}

	written, err := s.Save(ctx, "")
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Set %s.%s in %s", s.Current(), strings.TrimSpace(key), written)
	return nil
}
