package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/kvdoc/internal/core/config"
	"github.com/colonyops/kvdoc/internal/core/document"
	"github.com/colonyops/kvdoc/internal/core/editor"
	"github.com/colonyops/kvdoc/internal/printer"
	"github.com/colonyops/kvdoc/internal/tui"
	"github.com/colonyops/kvdoc/pkg/tuitest"
)

type result struct {
	out    string
	status string
	err    error
}

// run executes the CLI with args. status holds printer output.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runWith(t, &Flags{}, stdin, args...)
}

func runWith(t *testing.T, flags *Flags, stdin string, args ...string) result {
	t.Helper()

	var out, status bytes.Buffer
	app := &cli.Command{
		Name:           "kvdoc",
		Writer:         &out,
		ErrWriter:      &status,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	batch := NewBatchCmd(flags)
	batch.input.Stdin = strings.NewReader(stdin)

	newCmd := NewNewCmd(flags)
	newCmd.prompt = func() (string, error) { return "prompted", nil }

	app = NewTypesCmd(flags).Register(app)
	app = NewSetCmd(flags).Register(app)
	app = batch.Register(app)
	app = NewSortCmd(flags).Register(app)
	app = NewShowCmd(flags).Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = newCmd.Register(app)
	app = NewConfigCmd(flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(&status))
	err := app.Run(ctx, append([]string{"kvdoc"}, args...))
	return result{
		out:    out.String(),
		status: tuitest.StripANSI(status.String()),
		err:    err,
	}
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readDoc(t *testing.T, path string) *document.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := document.Parse(data, document.ParseOptions{Strict: true})
	require.NoError(t, err)
	return doc
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates types and appends extension", func(t *testing.T) {
		res := run(t, "", "new", "--type", "colors", "--type", "sizes", filepath.Join(dir, "a"))
		require.NoError(t, res.err)

		doc := readDoc(t, filepath.Join(dir, "a.json"))
		assert.Equal(t, []string{"colors", "sizes"}, doc.Types())
		assert.Contains(t, res.status, "Created")
	})

	t.Run("prompts without --type", func(t *testing.T) {
		res := run(t, "", "new", filepath.Join(dir, "b.json"))
		require.NoError(t, res.err)
		assert.Equal(t, []string{"prompted"}, readDoc(t, filepath.Join(dir, "b.json")).Types())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		res := run(t, "", "new", "-t", "x", filepath.Join(dir, "a.json"))
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "already exists")

		res = run(t, "", "new", "-t", "x", "--force", filepath.Join(dir, "a.json"))
		require.NoError(t, res.err)
		assert.Equal(t, []string{"x"}, readDoc(t, filepath.Join(dir, "a.json")).Types())
	})

	t.Run("duplicate types write nothing", func(t *testing.T) {
		res := run(t, "", "new", "-t", "x", "-t", "x", filepath.Join(dir, "dup.json"))
		require.ErrorIs(t, res.err, document.ErrDuplicateType)
		assert.NoFileExists(t, filepath.Join(dir, "dup.json"))
	})

	t.Run("directory path rejected", func(t *testing.T) {
		res := run(t, "", "new", "-t", "x", dir+string(filepath.Separator))
		assert.Error(t, res.err)
	})
}

func TestTypes(t *testing.T) {
	path := writeDoc(t, `{"colors":{"1":"red"}}`)

	res := run(t, "", "types", "add", path, "sizes", " shapes ")
	require.NoError(t, res.err)
	assert.Equal(t, []string{"colors", "sizes", "shapes"}, readDoc(t, path).Types())
	assert.Contains(t, res.status, "Added 2 types")

	res = run(t, "", "types", "add", path, "colors")
	require.ErrorIs(t, res.err, document.ErrDuplicateType)

	res = run(t, "", "types", "ls", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "TYPE")
	assert.Regexp(t, `colors\s+1`, res.out)
	assert.Regexp(t, `shapes\s+0`, res.out)

	res = run(t, "", "types", "ls", "--json", path)
	require.NoError(t, res.err)
	assert.JSONEq(t, `[{"name":"colors","pairs":1},{"name":"sizes","pairs":0},{"name":"shapes","pairs":0}]`, res.out)
}

func TestTypes_ListMissingFile(t *testing.T) {
	res := run(t, "", "types", "ls", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "no such file")
}

func TestSet(t *testing.T) {
	path := writeDoc(t, `{"colors":{"1":"red","2":"blue"}}`)

	res := run(t, "", "set", path, "colors", "1", "dark", "red")
	require.NoError(t, res.err)

	b, ok := readDoc(t, path).Bucket("colors")
	require.True(t, ok)
	assert.Equal(t, []document.Pair{{Key: "1", Value: "dark red"}, {Key: "2", Value: "blue"}}, b.Pairs())

	t.Run("unknown type", func(t *testing.T) {
		res := run(t, "", "set", path, "sizes", "s", "small")
		require.ErrorIs(t, res.err, document.ErrUnknownType)
	})

	t.Run("create type", func(t *testing.T) {
		res := run(t, "", "set", "--create", path, "sizes", "s", "small")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"colors", "sizes"}, readDoc(t, path).Types())
	})

	t.Run("create file", func(t *testing.T) {
		fresh := filepath.Join(t.TempDir(), "fresh")
		res := run(t, "", "set", "--create", fresh, "T", "k", "v")
		require.NoError(t, res.err)
		assert.Equal(t, []string{"T"}, readDoc(t, fresh+".json").Types())
	})

	t.Run("missing arguments", func(t *testing.T) {
		res := run(t, "", "set", path, "colors", "k")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "usage:")
	})
}

func TestBatch(t *testing.T) {
	path := writeDoc(t, `{"T":{}}`)

	res := run(t, "a,1\nb;2\nc 3\nmalformed\n\n", "batch", path, "T")
	require.NoError(t, res.err)
	assert.Contains(t, res.status, "Skipped 1 line")
	assert.Contains(t, res.status, "Added 3 pairs")

	b, _ := readDoc(t, path).Bucket("T")
	assert.Equal(t, []string{"a", "b", "c"}, b.Keys())

	t.Run("from input file", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "pairs.txt")
		require.NoError(t, os.WriteFile(input, []byte("d 4\n"), 0o644))

		res := run(t, "", "batch", "-i", input, path, "T")
		require.NoError(t, res.err)
		b, _ := readDoc(t, path).Bucket("T")
		assert.Equal(t, []string{"a", "b", "c", "d"}, b.Keys())
	})

	t.Run("empty input", func(t *testing.T) {
		res := run(t, "  \n", "batch", path, "T")
		require.ErrorIs(t, res.err, editor.ErrEmptyBatch)
	})

	t.Run("only malformed lines leave file untouched", func(t *testing.T) {
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		res := run(t, "lonely\n", "batch", path, "T")
		require.NoError(t, res.err)
		assert.Contains(t, res.status, "No pairs found")

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestSort(t *testing.T) {
	path := writeDoc(t, `{"B":{"10":"a","Banana":"d","2":"b","apple":"c"},"A":{}}`)

	res := run(t, "", "sort", path)
	require.NoError(t, res.err)

	doc := readDoc(t, path)
	assert.Equal(t, []string{"B", "A"}, doc.Types(), "type order is kept")
	b, _ := doc.Bucket("B")
	assert.Equal(t, []string{"2", "10", "apple", "Banana"}, b.Keys())

	empty := writeDoc(t, `{}`)
	res = run(t, "", "sort", empty)
	require.NoError(t, res.err)
	assert.Contains(t, res.status, "Nothing to sort")
}

func TestShow(t *testing.T) {
	path := writeDoc(t, `{"colors":{"1":"red"}}`)

	t.Run("plain", func(t *testing.T) {
		res := run(t, "", "show", "--plain", path)
		require.NoError(t, res.err)
		assert.Equal(t, "{\n  \"colors\": {\n    \"1\": \"red\"\n  }\n}\n", res.out)
	})

	t.Run("colorized", func(t *testing.T) {
		res := run(t, "", "show", path)
		require.NoError(t, res.err)
		assert.Contains(t, tuitest.StripANSI(res.out), `"1": "red"`)
	})

	t.Run("markdown source", func(t *testing.T) {
		res := run(t, "", "show", "--markdown", "--plain", path)
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "# doc.json")
		assert.Contains(t, res.out, "## colors")
		assert.Contains(t, res.out, "| 1 | red |")
	})

	t.Run("markdown rendered", func(t *testing.T) {
		res := run(t, "", "show", "-m", path)
		require.NoError(t, res.err)
		out := tuitest.StripANSI(res.out)
		assert.Contains(t, out, "colors")
		assert.Contains(t, out, "red")
	})
}

func TestValidate(t *testing.T) {
	good := writeDoc(t, `{"T":{"a":"1"}}`)
	numbers := writeDoc(t, `{"T":{"a":1}}`)

	res := run(t, "", "validate", good)
	require.NoError(t, res.err)
	assert.Contains(t, res.status, "1 type, 1 pair")

	res = run(t, "", "validate", "--format", "json", good, numbers)
	require.Error(t, res.err)
	var exitErr cli.ExitCoder
	require.ErrorAs(t, res.err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	assert.Contains(t, res.out, `"valid": true`)
	assert.Contains(t, res.out, `"valid": false`)
	assert.Contains(t, res.out, `"error":`)
}

func TestStrictConfigAppliesToEdits(t *testing.T) {
	path := writeDoc(t, `{"T":{"a":1}}`)

	cfg := config.DefaultConfig()
	cfg.Load.Strict = true
	res := runWith(t, &Flags{Config: &cfg}, "", "set", path, "T", "b", "2")
	require.Error(t, res.err)
	assert.True(t, document.IsFormat(res.err))

	res = run(t, "", "set", path, "T", "b", "2")
	require.NoError(t, res.err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"a": "1"`, "lenient load keeps the number as text")
}

func TestConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &Flags{Config: &cfg, ConfigPath: "/tmp/kvdoc.yaml"}

	res := runWith(t, flags, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "# /tmp/kvdoc.yaml")
	assert.Contains(t, res.out, "theme: tokyo-night")
	assert.Contains(t, res.out, "default_name: data.json")

	res = runWith(t, flags, "", "config", "themes")
	require.NoError(t, res.err)
	assert.Contains(t, tuitest.StripANSI(res.out), "* tokyo-night")
}

func TestEditCmd_Session(t *testing.T) {
	ctx := context.Background()
	cmd := NewEditCmd(&Flags{}, tui.BuildInfo{})

	s, err := cmd.session(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, s.Path())

	fresh := filepath.Join(t.TempDir(), "notes")
	s, err = cmd.session(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, fresh+".json", s.Path())
	assert.Equal(t, 0, s.Document().Len())

	existing := writeDoc(t, `{"T":{"k":"v"}}`)
	s, err = cmd.session(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, "T", s.Current())

	bad := writeDoc(t, `{"T":`)
	_, err = cmd.session(ctx, bad)
	require.Error(t, err)
	assert.True(t, document.IsFormat(err))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 pair", plural(1, "pair"))
	assert.Equal(t, "0 pairs", plural(0, "pair"))
	assert.Equal(t, "3 types", plural(3, "type"))
}
