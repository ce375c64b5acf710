package types

import (
	"bytes"
	"strings"
)

var _ Value = NewMapValue()

// MapEntry is a single key/value pair of a map. Keys may be values of any
// type, containers included.
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue is an ordered list of entries. Keys are not deduplicated:
// duplicates are kept in insertion order.
type MapValue struct {
	entries []MapEntry
}

// NewMapValue returns an RDN map value holding the given entries.
func NewMapValue(entries ...MapEntry) *MapValue {
	return &MapValue{
		entries: entries,
	}
}

// Add appends an entry and returns the map.
func (v *MapValue) Add(key, value Value) *MapValue {
	v.entries = append(v.entries, MapEntry{Key: key, Value: value})
	return v
}

func (v *MapValue) Len() int {
	return len(v.entries)
}

// Entries returns the backing slice in insertion order.
func (v *MapValue) Entries() []MapEntry {
	return v.entries
}

// Iterate calls fn for each entry in order, stopping at the first error.
func (v *MapValue) Iterate(fn func(key, value Value) error) error {
	for _, e := range v.entries {
		if err := fn(e.Key, e.Value); err != nil {
			return err
		}
	}

	return nil
}

func (v *MapValue) V() any {
	return v.entries
}

func (v *MapValue) Type() Type {
	return TypeMap
}

func (v *MapValue) String() string {
	var b strings.Builder
	b.WriteString("Map{")
	for i, e := range v.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key.String())
		b.WriteString(" => ")
		b.WriteString(e.Value.String())
	}
	b.WriteByte('}')

	return b.String()
}

func (v *MapValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalJSON renders the map as an array of [key, value] pairs, since
// JSON object keys cannot carry arbitrary values.
func (v *MapValue) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, e := range v.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		data, err := e.Key.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(data)
		b.WriteByte(',')
		data, err = e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(data)
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.Bytes(), nil
}
