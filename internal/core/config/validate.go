package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/kvdoc/internal/core/styles"
	"github.com/colonyops/kvdoc/internal/core/validate"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("save.default_name", c.Save.DefaultName, validate.FilePath),
		c.validatePatterns(),
	)
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Load.Patterns {
		field := fmt.Sprintf("load.patterns[%d]", i)
		if strings.TrimSpace(p) == "" {
			errs = errs.Append(field, fmt.Errorf("pattern cannot be empty"))
			continue
		}
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(field, fmt.Errorf("invalid glob %q", p))
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
