package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/tui"
)

// NewApp builds the kvdoc command tree with its global flags bound to flags.
// Callers add the Before and After hooks that set up logging and config.
func NewApp(flags *Flags, build tui.BuildInfo) *cli.Command {
	app := &cli.Command{
		Name:      "kvdoc",
		Usage:     "Edit two-level key/value JSON documents",
		UsageText: "kvdoc [global options] [command [command options]] [file]",
		Description: `kvdoc edits JSON documents shaped as types of key/value string pairs:

  {"colors": {"1": "red", "2": "blue"}, "sizes": {"s": "small"}}

Run 'kvdoc [file]' with no command to open the interactive editor.
The other commands apply the same operations from scripts.`,
		Version: build.Label() + " " + build.Date,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("KVDOC_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("KVDOC_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("KVDOC_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	editCmd := NewEditCmd(flags, build)

	app = editCmd.Register(app)
	app = NewNewCmd(flags).Register(app)
	app = NewTypesCmd(flags).Register(app)
	app = NewSetCmd(flags).Register(app)
	app = NewBatchCmd(flags).Register(app)
	app = NewSortCmd(flags).Register(app)
	app = NewShowCmd(flags).Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	// Editor flags live on the root command so both 'kvdoc file' and
	// 'kvdoc edit file' see them.
	app.Flags = append(app.Flags, editCmd.Flags()...)

	// The editor is the default action; a lone argument is the file to open.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 1 {
			return fmt.Errorf("unexpected arguments %q. Run 'kvdoc --help' for usage", c.Args().Slice()[1:])
		}
		return editCmd.Run(ctx, c)
	}

	return app
}
