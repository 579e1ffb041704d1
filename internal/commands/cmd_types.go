package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/printer"
	"github.com/colonyops/kvdoc/pkg/iojson"
)

type TypesCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTypesCmd creates a new types command
func NewTypesCmd(flags *Flags) *TypesCmd {
	return &TypesCmd{flags: flags}
}

// Register adds the types command to the application
func (cmd *TypesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "types",
		Usage: "Add or list the types of a document",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add one or more types",
				UsageText: "kvdoc types add <file> <name>...",
				Description: `Adds empty types to the end of the document, creating the file if needed.

Names are trimmed. A name that is empty or already present fails the whole
command and nothing is written.`,
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List types with their pair counts",
				UsageText: "kvdoc types ls [--json] <file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
		},
	})

	return app
}

func (cmd *TypesCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	args := c.Args().Slice()
	path, names := args[0], args[1:]

	s, err := cmd.flags.openOrCreate(ctx, path)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := s.AddType(ctx, name); err != nil {
			return err
		}
	}

	written, err := s.Save(ctx, "")
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Added %s to %s", plural(len(names), "type"), written)
	return nil
}

// typeInfo is the JSON output format for kvdoc types ls --json.
type typeInfo struct {
	Name  string `json:"name"`
	Pairs int    `json:"pairs"`
}

func (cmd *TypesCmd) runList(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	s, err := cmd.flags.openExisting(ctx, c.Args().First())
	if err != nil {
		return err
	}

	doc := s.Document()
	infos := make([]typeInfo, 0, doc.Len())
	for _, name := range doc.Types() {
		b, _ := doc.Bucket(name)
		infos = append(infos, typeInfo{Name: name, Pairs: b.Len()})
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, c.Root().ErrWriter, infos)
	}

	if len(infos) == 0 {
		printer.Ctx(ctx).Infof("No types defined")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TYPE\tPAIRS")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", info.Name, info.Pairs)
	}
	return w.Flush()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
