// Package jsoncolor renders serialized documents with theme-aware syntax
// coloring.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/colonyops/kvdoc/internal/core/styles"
)

const indent = "  "

// Colorize pretty-prints JSON with syntax coloring. Input that is not a
// single JSON value is returned unchanged.
func Colorize(data []byte) string {
	return ColorizeDocument(data, "")
}

// ColorizeDocument is Colorize with document awareness: top-level keys are
// type names and render bold, and the type named highlight stands out.
// Layout matches json.Indent with a two-space indent.
func ColorizeDocument(data []byte, highlight string) string {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	p := painter{dec: dec, highlight: highlight}
	if err := p.value(0); err != nil {
		return string(data)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return string(data)
	}
	return p.out.String()
}

type painter struct {
	dec       *json.Decoder
	out       strings.Builder
	highlight string
}

func (p *painter) value(depth int) error {
	tok, err := p.dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		return p.container(t, depth)
	case string:
		p.out.WriteString(styles.TextSuccessStyle.Render(quote(t)))
	case json.Number:
		p.out.WriteString(styles.TextWarningStyle.Render(t.String()))
	case bool:
		p.out.WriteString(styles.TextSecondaryStyle.Render(strconv.FormatBool(t)))
	case nil:
		p.out.WriteString(styles.TextErrorStyle.Render("null"))
	}
	return nil
}

// container writes an object or array whose opening delimiter was just read.
func (p *painter) container(open json.Delim, depth int) error {
	isObject := open == '{'
	closing := "]"
	if isObject {
		closing = "}"
	}
	p.out.WriteString(styles.TextForegroundStyle.Render(open.String()))

	n := 0
	for ; p.dec.More(); n++ {
		if n > 0 {
			p.out.WriteByte(',')
		}
		p.out.WriteString("\n" + strings.Repeat(indent, depth+1))

		if isObject {
			tok, err := p.dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			p.out.WriteString(p.key(key, depth))
			p.out.WriteString(styles.TextMutedStyle.Render(":") + " ")
		}
		if err := p.value(depth + 1); err != nil {
			return err
		}
	}

	if _, err := p.dec.Token(); err != nil {
		return err
	}
	if n > 0 {
		p.out.WriteString("\n" + strings.Repeat(indent, depth))
	}
	p.out.WriteString(styles.TextForegroundStyle.Render(closing))
	return nil
}

func (p *painter) key(name string, depth int) string {
	q := quote(name)
	switch {
	case depth > 0:
		return styles.TextSecondaryStyle.Render(q)
	case p.highlight != "" && name == p.highlight:
		return styles.TextWarningStyle.Bold(true).Render(q)
	default:
		return styles.TextPrimaryBoldStyle.Render(q)
	}
}

// quote re-encodes s as a JSON string without HTML escaping, the way
// documents are serialized.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
