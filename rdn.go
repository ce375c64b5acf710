package rdn

import (
	"fmt"
	"io"

	"github.com/rdnlang/rdn/parser"
	"github.com/rdnlang/rdn/serializer"
	"github.com/rdnlang/rdn/types"
)

// Parse decodes a single value from s. The input must hold exactly one
// value; anything other than whitespace after it is an error.
func Parse(s string) (types.Value, error) {
	return parser.Parse(s)
}

// ParseReader decodes a single value from r.
func ParseReader(r io.Reader) (types.Value, error) {
	return parser.NewParser(r).Parse()
}

// MustParse is like Parse but panics on error.
func MustParse(s string) types.Value {
	return parser.MustParse(s)
}

// Serialize renders v in canonical form. Serializing the result of Parse
// on canonical input reproduces that input byte for byte.
func Serialize(v types.Value) (string, error) {
	return serializer.Serialize(v)
}

// MustSerialize is like Serialize but panics on error.
func MustSerialize(v types.Value) string {
	s, err := serializer.Serialize(v)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}

	return s
}
