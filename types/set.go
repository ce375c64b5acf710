package types

import (
	"bytes"
	"strings"
)

var _ Value = NewSetValue()

// SetValue is an ordered collection of values. Members are not
// deduplicated: duplicates are kept in insertion order.
type SetValue struct {
	values []Value
}

// NewSetValue returns an RDN set value holding the given values.
func NewSetValue(values ...Value) *SetValue {
	return &SetValue{
		values: values,
	}
}

// Append adds values at the end of the set and returns it.
func (v *SetValue) Append(values ...Value) *SetValue {
	v.values = append(v.values, values...)
	return v
}

func (v *SetValue) Len() int {
	return len(v.values)
}

// Values returns the backing slice in insertion order.
func (v *SetValue) Values() []Value {
	return v.values
}

// Iterate calls fn for each member in order, stopping at the first error.
func (v *SetValue) Iterate(fn func(i int, value Value) error) error {
	for i, vv := range v.values {
		if err := fn(i, vv); err != nil {
			return err
		}
	}

	return nil
}

func (v *SetValue) V() any {
	return v.values
}

func (v *SetValue) Type() Type {
	return TypeSet
}

func (v *SetValue) String() string {
	var b strings.Builder
	b.WriteString("Set{")
	for i, vv := range v.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(vv.String())
	}
	b.WriteByte('}')

	return b.String()
}

func (v *SetValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// MarshalJSON renders the set as a plain JSON array.
func (v *SetValue) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, vv := range v.values {
		if i > 0 {
			b.WriteByte(',')
		}
		data, err := vv.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(data)
	}
	b.WriteByte(']')

	return b.Bytes(), nil
}
