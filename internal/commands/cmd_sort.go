package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/printer"
)

type SortCmd struct {
	flags *Flags
}

// NewSortCmd creates a new sort command
func NewSortCmd(flags *Flags) *SortCmd {
	return &SortCmd{flags: flags}
}

// Register adds the sort command to the application
func (cmd *SortCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sort",
		Usage:     "Sort the keys of every type",
		UsageText: "kvdoc sort <file>",
		Description: `Reorders the keys inside each type: numeric keys first in numeric order,
then the rest alphabetically ignoring case. Type order is kept.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *SortCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	s, err := cmd.flags.openExisting(ctx, c.Args().First())
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	if s.Document().Len() == 0 {
		p.Warnf("Nothing to sort")
		return nil
	}

	s.SortAll(ctx)
	written, err := s.Save(ctx, "")
	if err != nil {
		return err
	}

	stats := s.Document().Stats()
	p.Successf("Sorted %s across %s in %s", plural(stats.Pairs, "key"), plural(stats.Types, "type"), written)
	return nil
}
