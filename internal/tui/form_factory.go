package tui

import (
	"fmt"

	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/core/validate"
	"github.com/colonyops/kvdoc/internal/tui/components/form"
)

// formKind identifies which editor action an open dialog feeds.
type formKind int

const (
	formNone formKind = iota
	formAddType
	formAddPair
	formBatch
	formSave
	formLoad
)

// Form variable names.
const (
	varName  = "name"
	varKey   = "key"
	varValue = "value"
	varText  = "text"
	varPath  = "path"
)

func newTypeForm(doc *document.Document) *form.Dialog {
	name := form.NewTextField("Type name", "e.g. colors", "").
		WithValidation(form.FieldValidation{
			Required: true,
			Check: func(s string) error {
				if doc.Has(s) {
					return fmt.Errorf("type %q already exists", s)
				}
				return nil
			},
		})
	return form.NewDialog("New Type", form.Named(varName, name))
}

func newPairForm(typeName string) *form.Dialog {
	key := form.NewTextField("Key", "", "").
		WithValidation(form.FieldValidation{Required: true})
	value := form.NewTextField("Value", "", "").
		WithValidation(form.FieldValidation{Required: true})
	return form.NewDialog("Add Pair to "+typeName, form.Named(varKey, key), form.Named(varValue, value))
}

func newBatchForm(typeName string) *form.Dialog {
	text := form.NewTextAreaField("One pair per line", "key value\nkey,value\nkey;value", "").
		WithValidation(form.FieldValidation{Required: true})
	return form.NewDialog("Batch Add to "+typeName, form.Named(varText, text))
}

func newSaveForm(defaultPath string) *form.Dialog {
	path := form.NewTextField("File", "data.json", defaultPath).
		WithValidation(form.FieldValidation{Check: validate.FilePath, Required: true})
	return form.NewDialog("Save As", form.Named(varPath, path))
}

func newLoadForm(defaultPath string, candidates []string) *form.Dialog {
	path := form.NewTextField("File", "data.json", defaultPath).
		WithValidation(form.FieldValidation{Check: validate.FilePath, Required: true}).
		WithSuggestions(candidates)
	return form.NewDialog("Open", form.Named(varPath, path))
}
