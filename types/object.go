package types

import (
	"bytes"
	"strings"
)

var _ Value = NewObjectValue()

// ObjectField is a single key/value pair of an object.
type ObjectField struct {
	Key   string
	Value Value
}

// ObjectValue is an ordered list of string-keyed fields. Keys are not
// deduplicated: duplicates are kept in insertion order.
type ObjectValue struct {
	fields []ObjectField
}

// NewObjectValue returns an RDN object value holding the given fields.
func NewObjectValue(fields ...ObjectField) *ObjectValue {
	return &ObjectValue{
		fields: fields,
	}
}

// Add appends a field and returns the object.
func (v *ObjectValue) Add(key string, value Value) *ObjectValue {
	v.fields = append(v.fields, ObjectField{Key: key, Value: value})
	return v
}

func (v *ObjectValue) Len() int {
	return len(v.fields)
}

// Fields returns the backing slice in insertion order.
func (v *ObjectValue) Fields() []ObjectField {
	return v.fields
}

// Get returns the value of the first field named key.
func (v *ObjectValue) Get(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

// Iterate calls fn for each field in order, stopping at the first error.
func (v *ObjectValue) Iterate(fn func(key string, value Value) error) error {
	for _, f := range v.fields {
		if err := fn(f.Key, f.Value); err != nil {
			return err
		}
	}

	return nil
}

func (v *ObjectValue) V() any {
	return v.fields
}

func (v *ObjectValue) Type() Type {
	return TypeObject
}

func (v *ObjectValue) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range v.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(QuoteText(f.Key))
		b.WriteString(": ")
		b.WriteString(f.Value.String())
	}
	b.WriteByte('}')

	return b.String()
}

func (v *ObjectValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *ObjectValue) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range v.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(QuoteText(f.Key))
		b.WriteByte(':')
		data, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(data)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}
