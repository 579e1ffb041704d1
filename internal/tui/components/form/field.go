package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	Label() string
}

// Validator is implemented by fields that check their own value. Validate
// records the failure for display and reports whether the value passed.
type Validator interface {
	Validate() bool
	Error() string
}
