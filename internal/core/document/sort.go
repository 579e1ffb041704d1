package document

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

var numericKey = regexp.MustCompile(`^[0-9]+$`)

// SortBucket returns a copy of b whose keys are ordered numeric keys first
// (ascending by integer value), then all other keys in case-insensitive
// lexicographic order. Keys that compare equal, such as "10" and "010" or
// "x" and "X", keep their relative order. b is not modified.
func SortBucket(b *Bucket) *Bucket {
	var numeric, other []string
	for _, k := range b.keys {
		if numericKey.MatchString(k) {
			numeric = append(numeric, k)
		} else {
			other = append(other, k)
		}
	}

	slices.SortStableFunc(numeric, compareNumeric)
	slices.SortStableFunc(other, compareFold)

	out := NewBucket()
	for _, k := range slices.Concat(numeric, other) {
		b.copyTo(out, k)
	}
	return out
}

// compareNumeric orders digit strings by value without parsing, so keys
// wider than an int64 still sort correctly.
func compareNumeric(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	return strings.Compare(ta, tb)
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
