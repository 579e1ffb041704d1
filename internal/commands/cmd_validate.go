package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/data/docfile"
	"github.com/colonyops/kvdoc/internal/printer"
	"github.com/colonyops/kvdoc/pkg/iojson"
)

type ValidateCmd struct {
	flags *Flags

	// flags
	format string
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Check that files are well-formed documents",
		UsageText: "kvdoc validate [--format text|json] <file>...",
		Description: `Checks each file strictly: the top level must be an object of objects whose
values are all strings, and type names must not be empty.

Exits non-zero when any file fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

// validationReport is the JSON output format for kvdoc validate.
type validationReport struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Types int    `json:"types"`
	Pairs int    `json:"pairs"`
	Error string `json:"error,omitempty"`
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	reports := make([]validationReport, 0, c.Args().Len())
	failed := 0
	for _, path := range c.Args().Slice() {
		r := validateFile(path)
		if !r.Valid {
			failed++
		}
		reports = append(reports, r)
	}

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, reports); err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		for _, r := range reports {
			if r.Valid {
				p.Successf("%s: %s, %s", r.File, plural(r.Types, "type"), plural(r.Pairs, "pair"))
			} else {
				p.Errorf("%s: %s", r.File, r.Error)
			}
		}
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func validateFile(path string) validationReport {
	r := validationReport{File: path}

	doc, _, err := docfile.Load(path, document.ParseOptions{Strict: true})
	if err != nil {
		r.Error = err.Error()
		return r
	}

	stats := doc.Stats()
	r.Valid = true
	r.Types = stats.Types
	r.Pairs = stats.Pairs
	return r
}
