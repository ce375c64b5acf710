package types

import (
	"fmt"
)

// Type represents a type supported by RDN.
type Type uint8

// List of supported types. The zero value is not a valid type.
const (
	TypeNull Type = iota + 1
	TypeBoolean
	TypeNumber
	TypeBigint
	TypeText
	TypeDate
	TypeTime
	TypeDuration
	TypeRegexp
	TypeBlob
	TypeArray
	TypeObject
	TypeMap
	TypeSet
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeBigint:
		return "bigint"
	case TypeText:
		return "text"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeDuration:
		return "duration"
	case TypeRegexp:
		return "regexp"
	case TypeBlob:
		return "blob"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsContainer returns true if values of this type hold other values.
func (t Type) IsContainer() bool {
	return t == TypeArray || t == TypeObject || t == TypeMap || t == TypeSet
}

// A Value is a single RDN datum. Scalar implementations are value types;
// container implementations (array, object, map, set) are pointer types,
// so comparing two container Values with == compares identity.
type Value interface {
	Type() Type
	V() any
	// String returns the canonical RDN representation of the value.
	// For containers it assumes the value graph is acyclic; the serializer
	// package provides the cycle-checked entry point.
	String() string
	MarshalText() ([]byte, error)
	// MarshalJSON returns a plain JSON rendering of the value. Variants
	// that JSON cannot represent degrade to strings or arrays, and
	// non-finite numbers degrade to null.
	MarshalJSON() ([]byte, error)
}

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsFloat64(v Value) float64 {
	nv, ok := v.(NumberValue)
	if ok {
		return float64(nv)
	}

	return v.V().(float64)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if !ok {
		return v.V().(string)
	}

	return string(tv)
}

func AsByteSlice(v Value) []byte {
	bv, ok := v.(BlobValue)
	if !ok {
		return v.V().([]byte)
	}

	return bv
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}
