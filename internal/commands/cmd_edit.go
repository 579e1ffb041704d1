package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/editor"
	"github.com/colonyops/kvdoc/internal/tui"
)

type EditCmd struct {
	flags *Flags
	build tui.BuildInfo

	// flags
	root    string
	noWatch bool
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags, build tui.BuildInfo) *EditCmd {
	return &EditCmd{flags: flags, build: build}
}

// Flags returns the editor flags for registration on the root command.
// Subcommands inherit them, so edit does not declare its own.
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Usage:       "directory searched for files to suggest in the open prompt",
			Value:       ".",
			Destination: &cmd.root,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not watch the open file for external changes",
			Sources:     cli.EnvVars("KVDOC_NO_WATCH"),
			Destination: &cmd.noWatch,
		},
	}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open the interactive editor",
		UsageText: "kvdoc edit [options] [file]",
		Description: `Opens the two-pane editor. When a file is given it is loaded, or created
on first save if it does not exist yet.

Running 'kvdoc' with no command is the same as 'kvdoc edit'.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	session, err := cmd.session(ctx, c.Args().First())
	if err != nil {
		return err
	}

	cfg := *cmd.flags.config()
	if cmd.noWatch {
		cfg.Watch.Enabled = false
	}

	m := tui.New(tui.Options{
		Context: ctx,
		Session: session,
		Config:  &cfg,
		Root:    cmd.root,
		Build:   cmd.build,
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()

	final, ok := finalModel.(tui.Model)
	if !ok {
		final = m
	}
	final.Close()

	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if final.Session().Dirty() {
		log.Warn().Str("file", final.Session().Path()).Msg("exited with unsaved changes")
	}
	return nil
}

func (cmd *EditCmd) session(ctx context.Context, path string) (*editor.Session, error) {
	if path == "" {
		return editor.New(cmd.flags.sessionOptions()), nil
	}
	s, err := cmd.flags.openOrCreate(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return s, nil
}
