// Package document implements the two-level type -> key -> value document
// edited by kvdoc. Both levels keep insertion order so that what the user
// sees and what gets written to disk match the order things were added.
package document

import "strings"

// Pair is a single key/value entry of a bucket.
type Pair struct {
	Key   string
	Value string
}

// Bucket is an ordered string -> string mapping. Overwriting an existing key
// keeps its position. Values loaded from non-string JSON (numbers, booleans,
// null, nested containers) are held as their compact JSON text and marked
// raw so they are written back unquoted.
type Bucket struct {
	keys   []string
	values map[string]string
	raw    map[string]bool
}

// NewBucket returns an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{values: make(map[string]string)}
}

// Set inserts or overwrites key with a string value.
func (b *Bucket) Set(key, value string) {
	b.store(key, value, false)
}

// setRaw stores data, which must be valid compact JSON, as a non-string value.
func (b *Bucket) setRaw(key string, data string) {
	b.store(key, data, true)
}

func (b *Bucket) store(key, value string, raw bool) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	if raw {
		if b.raw == nil {
			b.raw = make(map[string]bool)
		}
		b.raw[key] = true
	} else {
		delete(b.raw, key)
	}
}

// isRaw reports whether key holds JSON text rather than a string.
func (b *Bucket) isRaw(key string) bool { return b.raw[key] }

// copyTo stores key with its value and kind into dst.
func (b *Bucket) copyTo(dst *Bucket, key string) {
	dst.store(key, b.values[key], b.raw[key])
}

// Get returns the value stored for key.
func (b *Bucket) Get(key string) (string, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Keys returns the keys in order.
func (b *Bucket) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Pairs returns the entries in order.
func (b *Bucket) Pairs() []Pair {
	out := make([]Pair, 0, len(b.keys))
	for _, k := range b.keys {
		out = append(out, Pair{Key: k, Value: b.values[k]})
	}
	return out
}

func (b *Bucket) Len() int { return len(b.keys) }

func (b *Bucket) clone() *Bucket {
	c := NewBucket()
	for _, k := range b.keys {
		b.copyTo(c, k)
	}
	return c
}

// Document is an ordered collection of named buckets.
type Document struct {
	names   []string
	buckets map[string]*Bucket
}

// New returns an empty document.
func New() *Document {
	return &Document{buckets: make(map[string]*Bucket)}
}

// CreateType adds an empty bucket named name. The name is trimmed before use.
func (d *Document) CreateType(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("type name", "", ErrEmptyName)
	}
	if d.Has(name) {
		return invalid("type name", name, ErrDuplicateType)
	}

	d.put(name, NewBucket())
	return nil
}

// SetPair inserts or overwrites key -> value in the bucket typeName. Key and
// value are trimmed and must not be empty afterwards.
func (d *Document) SetPair(typeName, key, value string) error {
	b, ok := d.buckets[typeName]
	if !ok {
		return invalid("type", typeName, ErrUnknownType)
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return invalid("key", "", ErrEmptyKey)
	}
	if value == "" {
		return invalid("value", "", ErrEmptyValue)
	}

	b.Set(key, value)
	return nil
}

// SetPairs applies every pair to typeName and returns how many were stored.
// Pairs with an empty key or value are skipped.
func (d *Document) SetPairs(typeName string, pairs []Pair) (int, error) {
	if !d.Has(typeName) {
		return 0, invalid("type", typeName, ErrUnknownType)
	}

	applied := 0
	for _, p := range pairs {
		if err := d.SetPair(typeName, p.Key, p.Value); err != nil {
			continue
		}
		applied++
	}
	return applied, nil
}

// Bucket returns the bucket named name.
func (d *Document) Bucket(name string) (*Bucket, bool) {
	b, ok := d.buckets[name]
	return b, ok
}

// Has reports whether a bucket named name exists.
func (d *Document) Has(name string) bool {
	_, ok := d.buckets[name]
	return ok
}

// Types returns the bucket names in order.
func (d *Document) Types() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of buckets.
func (d *Document) Len() int { return len(d.names) }

// Stats summarizes the document.
type Stats struct {
	Types int `json:"types"`
	Pairs int `json:"pairs"`
}

func (d *Document) Stats() Stats {
	s := Stats{Types: len(d.names)}
	for _, name := range d.names {
		s.Pairs += d.buckets[name].Len()
	}
	return s
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := New()
	for _, name := range d.names {
		c.put(name, d.buckets[name].clone())
	}
	return c
}

// Sort reorders every bucket with SortBucket.
func (d *Document) Sort() {
	for _, name := range d.names {
		d.buckets[name] = SortBucket(d.buckets[name])
	}
}

// put stores b under name, keeping the position of an existing bucket.
func (d *Document) put(name string, b *Bucket) {
	if _, ok := d.buckets[name]; !ok {
		d.names = append(d.names, name)
	}
	d.buckets[name] = b
}
