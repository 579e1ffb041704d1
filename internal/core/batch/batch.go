// Package batch parses loosely formatted multi-line text into key/value
// pairs. Each line holds one pair; commas, semicolons and whitespace are all
// accepted as separators so pasted tables need no cleanup first.
package batch

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/colonyops/kvdoc/internal/core/document"
)

// delimiters matches runs of commas, semicolons and whitespace. RE2's \s is
// ASCII only, so the other Unicode separators (no-break space, ideographic
// space, line and paragraph separators) plus \v, \x85 and the \x1c-\x1f
// information separators are listed explicitly.
var delimiters = regexp.MustCompile(`[,;\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`)

// isSpace matches the same whitespace as delimiters.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

func trim(s string) string { return strings.TrimFunc(s, isSpace) }

// Result describes the outcome of parsing a block of text.
type Result struct {
	// Pairs holds the parsed pairs in input order.
	Pairs []document.Pair
	// Lines is the number of non-blank lines seen.
	Lines int
	// Skipped is the number of non-blank lines that did not yield a pair.
	Skipped int
}

// Parse extracts one pair per line. The first token is the key and the
// remaining tokens, joined by single spaces, form the value. Blank lines and
// lines with fewer than two tokens are skipped without error.
func Parse(text string) Result {
	var res Result

	for _, line := range strings.Split(text, "\n") {
		line = trim(line)
		if line == "" {
			continue
		}
		res.Lines++

		pair, ok := parseLine(line)
		if !ok {
			res.Skipped++
			continue
		}
		res.Pairs = append(res.Pairs, pair)
	}

	return res
}

func parseLine(line string) (document.Pair, bool) {
	parts := delimiters.Split(line, -1)
	if len(parts) < 2 {
		return document.Pair{}, false
	}

	key := trim(parts[0])
	value := trim(strings.Join(parts[1:], " "))
	if key == "" || value == "" {
		return document.Pair{}, false
	}

	return document.Pair{Key: key, Value: value}, true
}

// Apply parses text and stores every pair in the bucket typeName. It returns
// the parse result and the number of pairs stored. Nothing is stored when the
// type does not exist.
func Apply(doc *document.Document, typeName, text string) (Result, int, error) {
	res := Parse(text)

	applied, err := doc.SetPairs(typeName, res.Pairs)
	if err != nil {
		return res, 0, err
	}
	return res, applied, nil
}
