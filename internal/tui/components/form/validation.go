package form

import "strings"

// FieldValidation is checked against a field's trimmed value on submit.
type FieldValidation struct {
	// Required rejects empty and whitespace-only values.
	Required bool
	// Check is only consulted for non-empty values.
	Check func(string) error
}

// ValidateText returns the message to show under the field, or "" when
// value passes.
func (v FieldValidation) ValidateText(value string) string {
	switch value = strings.TrimSpace(value); {
	case value == "" && v.Required:
		return "required"
	case value == "" || v.Check == nil:
		return ""
	}
	if err := v.Check(value); err != nil {
		return err.Error()
	}
	return ""
}
