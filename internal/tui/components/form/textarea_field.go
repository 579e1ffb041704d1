package form

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line input. Its label shows how many non-blank
// lines it holds, which is what batch input is counted in.
type TextAreaField struct {
	chrome
	input textarea.Model
}

// NewTextAreaField returns a blurred text area holding value.
func NewTextAreaField(label, placeholder, value string) *TextAreaField {
	in := textarea.New()
	in.Placeholder = placeholder
	in.ShowLineNumbers = true
	in.SetWidth(fieldWidth)
	in.SetHeight(8)
	in.SetValue(value)

	return &TextAreaField{chrome: chrome{label: label}, input: in}
}

// WithValidation sets the rules checked on submit.
func (f *TextAreaField) WithValidation(v FieldValidation) *TextAreaField {
	f.rules = v
	return f
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	f.touched(msg)
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	var note string
	switch n := f.Lines(); n {
	case 0:
	case 1:
		note = "1 line"
	default:
		note = fmt.Sprintf("%d lines", n)
	}
	return f.frame(f.input.View(), note)
}

// Lines counts the non-blank lines of the value.
func (f *TextAreaField) Lines() int {
	n := 0
	for line := range strings.Lines(f.input.Value()) {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Validate() bool    { return f.check(f.input.Value()) }
func (f *TextAreaField) Value() string     { return f.input.Value() }
func (f *TextAreaField) SetValue(v string) { f.input.SetValue(v) }
