package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateType(t *testing.T) {
	t.Run("creates empty bucket", func(t *testing.T) {
		d := New()
		require.NoError(t, d.CreateType("colors"))

		b, ok := d.Bucket("colors")
		require.True(t, ok)
		assert.Equal(t, 0, b.Len())
		assert.Equal(t, []string{"colors"}, d.Types())
	})

	t.Run("trims name", func(t *testing.T) {
		d := New()
		require.NoError(t, d.CreateType("  colors \t"))
		assert.True(t, d.Has("colors"))
	})

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyName},
		{"whitespace", "   ", ErrEmptyName},
		{"duplicate", "colors", ErrDuplicateType},
		{"duplicate after trim", " colors ", ErrDuplicateType},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			d := New()
			require.NoError(t, d.CreateType("colors"))
			require.NoError(t, d.SetPair("colors", "red", "#f00"))
			before, err := d.Serialize()
			require.NoError(t, err)

			err = d.CreateType(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))

			after, err := d.Serialize()
			require.NoError(t, err)
			assert.Equal(t, before, after, "state must be unchanged")
		})
	}
}

func TestSetPair(t *testing.T) {
	t.Run("overwrite keeps single entry", func(t *testing.T) {
		d := New()
		require.NoError(t, d.CreateType("T"))
		require.NoError(t, d.SetPair("T", "k", "first"))
		require.NoError(t, d.SetPair("T", "k", "second"))

		b, _ := d.Bucket("T")
		assert.Equal(t, []Pair{{Key: "k", Value: "second"}}, b.Pairs())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		d := New()
		require.NoError(t, d.CreateType("T"))
		require.NoError(t, d.SetPair("T", "a", "1"))
		require.NoError(t, d.SetPair("T", "b", "2"))
		require.NoError(t, d.SetPair("T", "a", "3"))

		b, _ := d.Bucket("T")
		assert.Equal(t, []string{"a", "b"}, b.Keys())
		v, ok := b.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "3", v)
	})

	t.Run("trims key and value", func(t *testing.T) {
		d := New()
		require.NoError(t, d.CreateType("T"))
		require.NoError(t, d.SetPair("T", " k ", "  v\t"))

		b, _ := d.Bucket("T")
		assert.Equal(t, []Pair{{Key: "k", Value: "v"}}, b.Pairs())
	})

	tests := []struct {
		name     string
		typeName string
		key      string
		value    string
		wantErr  error
	}{
		{"unknown type", "missing", "k", "v", ErrUnknownType},
		{"empty key", "T", "", "v", ErrEmptyKey},
		{"blank key", "T", "  ", "v", ErrEmptyKey},
		{"empty value", "T", "k", "", ErrEmptyValue},
		{"blank value", "T", "k", " \t ", ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			d := New()
			require.NoError(t, d.CreateType("T"))

			err := d.SetPair(tt.typeName, tt.key, tt.value)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))

			b, _ := d.Bucket("T")
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestSetPairs(t *testing.T) {
	d := New()
	require.NoError(t, d.CreateType("T"))

	n, err := d.SetPairs("T", []Pair{{"a", "1"}, {"", "2"}, {"c", " "}, {"d", "4"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = d.SetPairs("nope", []Pair{{"a", "1"}})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestClone_IsIndependent(t *testing.T) {
	d := New()
	require.NoError(t, d.CreateType("T"))
	require.NoError(t, d.SetPair("T", "a", "1"))

	c := d.Clone()
	require.NoError(t, c.SetPair("T", "a", "changed"))
	require.NoError(t, c.CreateType("U"))

	b, _ := d.Bucket("T")
	v, _ := b.Get("a")
	assert.Equal(t, "1", v)
	assert.False(t, d.Has("U"))
}

func TestStats(t *testing.T) {
	d := New()
	require.NoError(t, d.CreateType("A"))
	require.NoError(t, d.CreateType("B"))
	require.NoError(t, d.SetPair("A", "x", "1"))
	require.NoError(t, d.SetPair("B", "y", "2"))
	require.NoError(t, d.SetPair("B", "z", "3"))

	assert.Equal(t, Stats{Types: 2, Pairs: 3}, d.Stats())
}

func TestMarkdown(t *testing.T) {
	d := New()
	require.NoError(t, d.CreateType("T"))
	require.NoError(t, d.SetPair("T", "a|b", "1"))
	require.NoError(t, d.CreateType("Empty"))

	md := d.Markdown("doc.json")
	assert.Contains(t, md, "# doc.json")
	assert.Contains(t, md, "## T")
	assert.Contains(t, md, `| a\|b | 1 |`)
	assert.Contains(t, md, "## Empty\n\n_empty_")

	assert.Contains(t, New().Markdown(""), "No types defined")
}
