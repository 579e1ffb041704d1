package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith_NoHTMLEscape(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]string{"v": "<a&b>"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"v\": \"<a&b>\"\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"c": make(chan int)})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"message": "cannot encode output"`)
	assert.Contains(t, errOut.String(), "chan int")
}

func TestEncode(t *testing.T) {
	data, err := Encode([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\"\n]\n", string(data))
}

func TestInputReader(t *testing.T) {
	t.Run("stdin override", func(t *testing.T) {
		r := &InputReader{Stdin: strings.NewReader("a 1\n")}
		data, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, "a 1\n", string(data))
	})

	t.Run("file flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte("k v"), 0o644))

		r := &InputReader{fileFlagValue: path, Stdin: strings.NewReader("ignored")}
		data, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, "k v", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		r := &InputReader{fileFlagValue: filepath.Join(t.TempDir(), "nope")}
		_, err := r.Read()
		assert.ErrorContains(t, err, "open input")
	})

	t.Run("flag shape", func(t *testing.T) {
		f := (&InputReader{}).Flag()
		assert.Equal(t, "input", f.Name)
		assert.Equal(t, []string{"i"}, f.Aliases)
	})
}
