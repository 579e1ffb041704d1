package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "colors", false},
		{"valid with spaces", "my type", false},
		{"unicode", "类型", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data.json", false},
		{"nested", "dir/data", false},
		{"empty", "", true},
		{"directory", "dir/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FilePath(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "FilePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestFieldValidators(t *testing.T) {
	err := criterio.ValidateStruct(
		FilePathField("file", ""),
		TypeNameField("type", " "),
	)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "file", fieldErrs[0].Field)
	assert.Equal(t, "type", fieldErrs[1].Field)

	assert.NoError(t, criterio.ValidateStruct(
		FilePathField("file", "a.json"),
		TypeNameField("type", "T"),
	))
}
