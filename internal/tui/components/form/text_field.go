package form

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

const fieldWidth = 48

// TextField is a single-line input.
type TextField struct {
	chrome
	input textinput.Model
}

// NewTextField returns a blurred field holding value.
func NewTextField(label, placeholder, value string) *TextField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.SetWidth(fieldWidth)
	in.SetValue(value)

	muted := lipgloss.NewStyle().Foreground(styles.CurrentPalette.Muted)
	st := textinput.DefaultStyles(true)
	st.Cursor.Color = styles.CurrentPalette.Primary
	st.Focused.Placeholder, st.Blurred.Placeholder, st.Focused.Suggestion = muted, muted, muted
	in.SetStyles(st)

	return &TextField{chrome: chrome{label: label}, input: in}
}

// WithValidation sets the rules checked on submit.
func (f *TextField) WithValidation(v FieldValidation) *TextField {
	f.rules = v
	return f
}

// WithSuggestions offers completions from values, accepted with the right
// arrow since tab moves between fields.
func (f *TextField) WithSuggestions(values []string) *TextField {
	f.input.ShowSuggestions = len(values) > 0
	f.input.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("right"))
	f.input.SetSuggestions(values)
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	f.touched(msg)
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string { return f.frame(f.input.View(), "") }

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Validate() bool    { return f.check(f.input.Value()) }
func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
