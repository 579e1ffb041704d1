package document

import (
	"fmt"
	"strings"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// Markdown renders the document as one table per type, in document order.
func (d *Document) Markdown(title string) string {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	if len(d.names) == 0 {
		b.WriteString("_No types defined._\n")
		return b.String()
	}

	for i, name := range d.names {
		if i > 0 {
			b.WriteString("\n")
		}
		bucket := d.buckets[name]
		fmt.Fprintf(&b, "## %s\n\n", cellEscaper.Replace(name))

		if bucket.Len() == 0 {
			b.WriteString("_empty_\n")
			continue
		}

		b.WriteString("| Key | Value |\n| --- | --- |\n")
		for _, k := range bucket.keys {
			fmt.Fprintf(&b, "| %s | %s |\n", cellEscaper.Replace(k), cellEscaper.Replace(bucket.values[k]))
		}
	}

	return b.String()
}
