package jsoncolor

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestColorize_Document(t *testing.T) {
	input := []byte(`{"colors":{"1":"red","2":"blue"},"sizes":{}}`)
	result := ansi.Strip(Colorize(input))

	assert.Equal(t, `{
  "colors": {
    "1": "red",
    "2": "blue"
  },
  "sizes": {}
}`, result)
}

func TestColorize_InvalidJSON(t *testing.T) {
	input := []byte(`not json at all`)
	assert.Equal(t, "not json at all", Colorize(input))
}

func TestColorize_EscapedStrings(t *testing.T) {
	input := []byte(`{"T":{"msg":"hello \"world\""}}`)
	assert.Contains(t, ansi.Strip(Colorize(input)), `"msg": "hello \"world\""`)
}

func TestColorize_NonStringLeaves(t *testing.T) {
	input := []byte(`{"T":{"n":42,"f":-3.5e2,"b":true,"x":false,"z":null}}`)
	result := ansi.Strip(Colorize(input))
	for _, want := range []string{"42", "-3.5e2", "true", "false", "null"} {
		assert.Contains(t, result, want)
	}
}

func TestColorizeDocument_HighlightsType(t *testing.T) {
	input := []byte(`{"A":{"k":"v"},"B":{"A":"v"}}`)

	plain := ColorizeDocument(input, "")
	highlighted := ColorizeDocument(input, "A")

	assert.Equal(t, ansi.Strip(plain), ansi.Strip(highlighted), "highlight only changes styling")
	assert.Equal(t, ColorizeDocument(input, "missing"), plain)
}

func TestColorize_KeepsUnicodeAndMarkup(t *testing.T) {
	input := []byte(`{"城市":{"<b>":"北京 & 上海"}}`)
	assert.Contains(t, ansi.Strip(Colorize(input)), `"<b>": "北京 & 上海"`)
}

func TestColorize_TrailingData(t *testing.T) {
	input := []byte(`{"A":{}} {"B":{}}`)
	assert.Equal(t, string(input), Colorize(input))
}

func TestColorize_Arrays(t *testing.T) {
	assert.Equal(t, "[\n  1,\n  []\n]", ansi.Strip(Colorize([]byte(`[1,[]]`))))
}
