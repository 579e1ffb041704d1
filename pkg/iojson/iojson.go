// Package iojson reads command input and writes machine-readable JSON
// output for the CLI.
package iojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Failure is written to the error stream when a value cannot be encoded.
type Failure struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
}

// Encode renders obj as two-space indented JSON. <, > and & are left
// unescaped because they are common in document values.
func Encode(obj any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWith writes obj to w. If obj cannot be encoded a Failure is written
// to ew instead and the encoding problem is not returned; only write errors
// are.
func WriteWith(w, ew io.Writer, obj any) error {
	data, err := Encode(obj)
	if err == nil {
		_, err = w.Write(data)
		return err
	}

	fail, ferr := Encode(Failure{Message: "cannot encode output", Cause: err.Error()})
	if ferr != nil {
		_, werr := fmt.Fprintf(ew, "cannot encode output: %v\n", err)
		return werr
	}
	_, err = ew.Write(fail)
	return err
}
