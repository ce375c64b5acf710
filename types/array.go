package types

import (
	"bytes"
	"strings"
)

var _ Value = NewArrayValue()

// ArrayValue is an ordered list of values. Containers are pointer types
// so that identity survives interface conversion.
type ArrayValue struct {
	values []Value
}

// NewArrayValue returns an RDN array value holding the given values.
func NewArrayValue(values ...Value) *ArrayValue {
	return &ArrayValue{
		values: values,
	}
}

// Append adds values at the end of the array and returns it.
func (v *ArrayValue) Append(values ...Value) *ArrayValue {
	v.values = append(v.values, values...)
	return v
}

func (v *ArrayValue) Len() int {
	return len(v.values)
}

// Values returns the backing slice in insertion order.
func (v *ArrayValue) Values() []Value {
	return v.values
}

// Iterate calls fn for each value in order, stopping at the first error.
func (v *ArrayValue) Iterate(fn func(i int, value Value) error) error {
	for i, vv := range v.values {
		if err := fn(i, vv); err != nil {
			return err
		}
	}

	return nil
}

func (v *ArrayValue) V() any {
	return v.values
}

func (v *ArrayValue) Type() Type {
	return TypeArray
}

func (v *ArrayValue) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, vv := range v.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(vv.String())
	}
	b.WriteByte(']')

	return b.String()
}

func (v *ArrayValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *ArrayValue) MarshalJSON() ([]byte, error) {
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
