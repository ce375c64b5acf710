package types

import (
	"math"
	"strconv"
)

var _ Value = NewNumberValue(0)

// NumberValue is an IEEE 754 double. NaN and the infinities are legal
// values with their own literals.
type NumberValue float64

// NewNumberValue returns an RDN number value.
func NewNumberValue(x float64) NumberValue {
	return NumberValue(x)
}

func (v NumberValue) V() any {
	return float64(v)
}

func (v NumberValue) Type() Type {
	return TypeNumber
}

func (v NumberValue) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e15 {
			fmt = 'e'
		}
	}

	// The precision is -1 to use the smallest number of digits that
	// round-trips through ParseFloat.
	// See https://pkg.go.dev/strconv#FormatFloat
	return strconv.FormatFloat(f, fmt, -1, 64)
}

func (v NumberValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v NumberValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// JSON has no representation for these.
		return []byte("null"), nil
	}

	return []byte(v.String()), nil
}
