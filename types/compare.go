package types

import (
	"bytes"
	"math"
)

// Equal reports deep structural equality: same type, same shape, same
// contents in the same order. Numbers and dates compare numerically with
// the extra rule that NaN equals NaN, so a round-tripped value always
// compares equal to its source. Assumes acyclic values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Type() {
	case TypeNull:
		return true
	case TypeBoolean:
		return AsBool(a) == AsBool(b)
	case TypeNumber, TypeDate:
		return floatEqual(AsFloat64(a), AsFloat64(b))
	case TypeBigint, TypeText, TypeDuration:
		return AsString(a) == AsString(b)
	case TypeTime:
		return a.(TimeValue) == b.(TimeValue)
	case TypeRegexp:
		return a.(RegexpValue) == b.(RegexpValue)
	case TypeBlob:
		return bytes.Equal(AsByteSlice(a), AsByteSlice(b))
	case TypeArray:
		return valuesEqual(a.(*ArrayValue).values, b.(*ArrayValue).values)
	case TypeSet:
		return valuesEqual(a.(*SetValue).values, b.(*SetValue).values)
	case TypeObject:
		af, bf := a.(*ObjectValue).fields, b.(*ObjectValue).fields
		if len(af) != len(bf) {
			return false
		}
		for i := range af {
			if af[i].Key != bf[i].Key || !Equal(af[i].Value, bf[i].Value) {
				return false
			}
		}
		return true
	case TypeMap:
		ae, be := a.(*MapValue).entries, b.(*MapValue).entries
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !Equal(ae[i].Key, be[i].Key) || !Equal(ae[i].Value, be[i].Value) {
				return false
			}
		}
		return true
	}

	return false
}

func floatEqual(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
