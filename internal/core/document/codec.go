package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const indent = "  "

// Serialize encodes the document as a JSON object of objects, indented with
// two spaces and terminated by a newline. Non-ASCII and HTML characters are
// written as-is.
func (d *Document) Serialize() ([]byte, error) {
	var buf bytes.Buffer

	if len(d.names) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, name := range d.names {
		if err := writeString(&buf, name, 1); err != nil {
			return nil, err
		}
		buf.WriteString(": ")

		b := d.buckets[name]
		if b.Len() == 0 {
			buf.WriteString("{}")
		} else {
			buf.WriteString("{\n")
			for j, k := range b.keys {
				if err := writeString(&buf, k, 2); err != nil {
					return nil, err
				}
				buf.WriteString(": ")
				if b.isRaw(k) {
					if err := json.Indent(&buf, []byte(b.values[k]), indent+indent, indent); err != nil {
						return nil, err
					}
				} else if err := writeString(&buf, b.values[k], 0); err != nil {
					return nil, err
				}
				if j < len(b.keys)-1 {
					buf.WriteByte(',')
				}
				buf.WriteByte('\n')
			}
			buf.WriteString(indent)
			buf.WriteByte('}')
		}

		if i < len(d.names)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler, preserving document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	data, err := d.Serialize()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Compact(&out, data); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string, depth int) error {
	var enc bytes.Buffer
	e := json.NewEncoder(&enc)
	e.SetEscapeHTML(false)
	if err := e.Encode(s); err != nil {
		return err
	}
	buf.WriteString(strings.Repeat(indent, depth))
	buf.Write(bytes.TrimSuffix(enc.Bytes(), []byte("\n")))
	return nil
}

// ParseOptions controls how Parse treats documents that do not match the
// string-valued shape the editor writes.
type ParseOptions struct {
	// Strict rejects non-string values as well as empty type names and keys.
	// When false, non-string values are kept as their compact JSON text and
	// serialized back as the same JSON value.
	Strict bool
}

// Parse decodes data into a new document, keeping the order of both levels.
// Any failure is returned as a *FormatError. Duplicate names keep their first
// position and their last value.
func Parse(data []byte, opts ParseOptions) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{', "document"); err != nil {
		return nil, err
	}

	doc := New()
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if opts.Strict && strings.TrimSpace(name) == "" {
			return nil, malformed("empty type name")
		}

		b, err := parseBucket(dec, name, opts)
		if err != nil {
			return nil, err
		}
		doc.put(name, b)
	}

	if err := expectDelim(dec, '}', "document"); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("unexpected data after document")
	}

	return doc, nil
}

func parseBucket(dec *json.Decoder, name string, opts ParseOptions) (*Bucket, error) {
	if err := expectDelim(dec, '{', "type "+quote(name)); err != nil {
		return nil, err
	}

	b := NewBucket()
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if opts.Strict && strings.TrimSpace(key) == "" {
			return nil, malformed("type %q: empty key", name)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &FormatError{Err: err}
		}

		value, isString, err := leafValue(raw, opts)
		if err != nil {
			return nil, malformed("type %q key %q: %v", name, key, err)
		}
		if isString {
			b.Set(key, value)
		} else {
			b.setRaw(key, value)
		}
	}

	if err := expectDelim(dec, '}', "type "+quote(name)); err != nil {
		return nil, err
	}
	return b, nil
}

// leafValue decodes a string value, or returns the compact JSON text of any
// other value with isString false.
func leafValue(raw json.RawMessage, opts ParseOptions) (value string, isString bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return "", false, err
		}
		return value, true, nil
	}

	if opts.Strict {
		return "", false, errors.New("value must be a string")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", false, err
	}
	return buf.String(), false, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", &FormatError{Err: err}
	}
	key, ok := tok.(string)
	if !ok {
		return "", malformed("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, what string) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return malformed("%s: unexpected end of input", what)
		}
		return &FormatError{Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		if want == '{' {
			return malformed("%s must be a JSON object", what)
		}
		return malformed("%s: expected %q, got %v", what, want, tok)
	}
	return nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
