package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "kvdoc config show",
				Description: "Prints the loaded configuration, with defaults filled in, as YAML.",
				Action:      cmd.runShow,
			},
			{
				Name:      "themes",
				Usage:     "List the built-in themes",
				UsageText: "kvdoc config themes",
				Action:    cmd.runThemes,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "# %s\n", cmd.flags.ConfigPath)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cmd.flags.config()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func (cmd *ConfigCmd) runThemes(_ context.Context, c *cli.Command) error {
	current := cmd.flags.config().TUI.Theme
	for _, name := range styles.ThemeNames() {
		marker := "  "
		if name == current {
			marker = styles.TextPrimaryStyle.Render("* ")
		}
		_, _ = fmt.Fprintln(c.Root().Writer, marker+name)
	}
	return nil
}
