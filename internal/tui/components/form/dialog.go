package form

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

// Input binds a field to the name its value is reported under.
type Input struct {
	Name  string
	Field Field
}

// Named is shorthand for Input{name, f}.
func Named(name string, f Field) Input { return Input{Name: name, Field: f} }

type status int

const (
	editing status = iota
	submitted
	cancelled
)

var dialogKeys = struct {
	Next, Prev, Submit, Enter, Cancel key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s")),
	Enter:  key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc")),
}

// Dialog steps through a column of inputs and finishes either submitted,
// once every field validates, or cancelled.
type Dialog struct {
	Title  string
	inputs []Input
	focus  int
	status status
}

// NewDialog focuses the first input.
func NewDialog(title string, inputs ...Input) *Dialog {
	d := &Dialog{Title: title, inputs: inputs}
	if len(inputs) > 0 {
		inputs[0].Field.Focus()
	}
	return d
}

// Update routes navigation keys to the dialog and everything else to the
// focused field. Enter inserts a newline in a text area and advances
// otherwise.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.inputs) == 0 {
		if k, ok := msg.(tea.KeyPressMsg); ok && key.Matches(k, dialogKeys.Cancel) {
			d.status = cancelled
		}
		return d, nil
	}

	k, ok := msg.(tea.KeyPressMsg)
	switch {
	case !ok:
	case key.Matches(k, dialogKeys.Cancel):
		d.status = cancelled
		return d, nil
	case key.Matches(k, dialogKeys.Submit):
		return d, d.trySubmit()
	case key.Matches(k, dialogKeys.Prev):
		return d, d.moveTo(d.focus - 1)
	case key.Matches(k, dialogKeys.Next),
		key.Matches(k, dialogKeys.Enter) && !d.multiline():
		if d.focus == len(d.inputs)-1 {
			return d, d.trySubmit()
		}
		return d, d.moveTo(d.focus + 1)
	}

	in := &d.inputs[d.focus]
	var cmd tea.Cmd
	in.Field, cmd = in.Field.Update(msg)
	return d, cmd
}

// View stacks the fields above a hint line for the focused field.
func (d *Dialog) View() string {
	var b strings.Builder
	for _, in := range d.inputs {
		b.WriteString(in.Field.View())
		b.WriteString("\n\n")
	}

	hint := "tab/enter next · shift+tab back · ctrl+s submit · esc cancel"
	if d.multiline() {
		hint = "enter newline · tab/ctrl+s submit · esc cancel"
	}
	b.WriteString(styles.TextMutedStyle.Render(hint))
	return b.String()
}

// FormValues maps each input name to its field's value.
func (d *Dialog) FormValues() map[string]string {
	out := make(map[string]string, len(d.inputs))
	for _, in := range d.inputs {
		out[in.Name] = in.Field.Value()
	}
	return out
}

// Submitted reports whether every field validated and the user submitted.
func (d *Dialog) Submitted() bool { return d.status == submitted }

// Cancelled reports whether the user dismissed the dialog.
func (d *Dialog) Cancelled() bool { return d.status == cancelled }

func (d *Dialog) moveTo(i int) tea.Cmd {
	if i < 0 || i >= len(d.inputs) || i == d.focus {
		return nil
	}
	d.inputs[d.focus].Field.Blur()
	d.focus = i
	return d.inputs[i].Field.Focus()
}

// trySubmit validates all fields so each shows its own error, then either
// submits or jumps to the first failure.
func (d *Dialog) trySubmit() tea.Cmd {
	first := -1
	for i, in := range d.inputs {
		if v, ok := in.Field.(Validator); ok && !v.Validate() && first < 0 {
			first = i
		}
	}
	if first >= 0 {
		return d.moveTo(first)
	}
	d.status = submitted
	return nil
}

func (d *Dialog) multiline() bool {
	if len(d.inputs) == 0 {
		return false
	}
	_, ok := d.inputs[d.focus].Field.(*TextAreaField)
	return ok
}
