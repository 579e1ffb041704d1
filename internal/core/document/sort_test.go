package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bucketOf(pairs ...Pair) *Bucket {
	b := NewBucket()
	for _, p := range pairs {
		b.Set(p.Key, p.Value)
	}
	return b
}

func TestSortBucket(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "numeric before other",
			keys: []string{"10", "2", "apple", "Banana"},
			want: []string{"2", "10", "apple", "Banana"},
		},
		{
			name: "case insensitive",
			keys: []string{"b", "C", "a", "B2"},
			want: []string{"a", "b", "B2", "C"},
		},
		{
			name: "digits mixed with letters are not numeric",
			keys: []string{"1a", "3", "a1", "20"},
			want: []string{"3", "20", "1a", "a1"},
		},
		{
			name: "wider than int64",
			keys: []string{"99999999999999999999999", "100", "9"},
			want: []string{"9", "100", "99999999999999999999999"},
		},
		{
			name: "leading zeros compare by value",
			keys: []string{"010", "9", "01", "1"},
			want: []string{"01", "1", "9", "010"},
		},
		{
			name: "negative and decimal are not numeric",
			keys: []string{"-1", "1.5", "2"},
			want: []string{"2", "-1", "1.5"},
		},
		{
			name: "empty",
			keys: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBucket()
			for _, k := range tt.keys {
				b.Set(k, "v-"+k)
			}

			sorted := SortBucket(b)
			assert.Equal(t, tt.want, sorted.Keys())
			for _, k := range tt.keys {
				v, ok := sorted.Get(k)
				assert.True(t, ok)
				assert.Equal(t, "v-"+k, v, "value must follow its key")
			}
		})
	}
}

func TestSortBucket_DoesNotModifyInput(t *testing.T) {
	b := bucketOf(Pair{"b", "1"}, Pair{"a", "2"})
	_ = SortBucket(b)
	assert.Equal(t, []string{"b", "a"}, b.Keys())
}

func TestSortBucket_EqualKeysKeepInsertionOrder(t *testing.T) {
	b := bucketOf(Pair{"x", "1"}, Pair{"X", "2"}, Pair{"10", "3"}, Pair{"010", "4"})
	assert.Equal(t, []string{"10", "010", "x", "X"}, SortBucket(b).Keys())

	swapped := bucketOf(Pair{"X", "2"}, Pair{"010", "4"}, Pair{"x", "1"}, Pair{"10", "3"})
	assert.Equal(t, []string{"010", "10", "X", "x"}, SortBucket(swapped).Keys())
}

func TestDocumentSort_AllBuckets(t *testing.T) {
	d := New()
	_ = d.CreateType("A")
	_ = d.CreateType("B")
	_ = d.SetPair("A", "z", "1")
	_ = d.SetPair("A", "1", "2")
	_ = d.SetPair("B", "b", "3")
	_ = d.SetPair("B", "a", "4")

	d.Sort()

	a, _ := d.Bucket("A")
	b, _ := d.Bucket("B")
	assert.Equal(t, []string{"1", "z"}, a.Keys())
	assert.Equal(t, []string{"a", "b"}, b.Keys())
	assert.Equal(t, []string{"A", "B"}, d.Types(), "type order is untouched")
}
