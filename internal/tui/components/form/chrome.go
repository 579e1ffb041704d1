package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

// chrome is the part of a field that is not the input widget: its label,
// focus flag, rules and the last validation message.
type chrome struct {
	label   string
	focused bool
	rules   FieldValidation
	err     string
}

func (c *chrome) Label() string { return c.label }
func (c *chrome) Focused() bool { return c.focused }
func (c *chrome) Error() string { return c.err }

// check validates value and remembers the message for rendering.
func (c *chrome) check(value string) bool {
	c.err = c.rules.ValidateText(value)
	return c.err == ""
}

// touched clears a stale error once the user types again.
func (c *chrome) touched(msg tea.Msg) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		c.err = ""
	}
}

// frame draws the label, body and error inside the focus gutter. note is
// shown muted after the label when non-empty.
func (c *chrome) frame(body, note string) string {
	label := styles.TextMutedStyle.Render(c.label)
	gutter := styles.FormFieldStyle
	if c.focused {
		label = styles.FormTitleStyle.Render(c.label)
		gutter = styles.FormFieldFocusedStyle
	}
	if note != "" {
		label += styles.TextMutedStyle.Render("  " + note)
	}

	out := label + "\n" + body
	if c.err != "" {
		out += "\n" + styles.FormErrorStyle.Render(c.err)
	}
	return gutter.Render(out)
}
