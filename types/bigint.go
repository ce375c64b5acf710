package types

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Value = BigintValue("0")

// BigintValue is an arbitrary-precision integer kept as its decimal digit
// string. No arithmetic is defined on it; the digits are preserved exactly
// as given, leading zeros included.
type BigintValue string

// NewBigintValue returns an RDN bigint value. The digits string must be an
// optional minus sign followed by at least one ASCII digit.
func NewBigintValue(digits string) (BigintValue, error) {
	s := digits
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return "", errors.New("bigint requires at least one digit")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", errors.Errorf("invalid character %q in bigint %q", s[i], digits)
		}
	}

	return BigintValue(digits), nil
}

// Digits returns the decimal digit string, sign included.
func (v BigintValue) Digits() string {
	return string(v)
}

func (v BigintValue) V() any {
	return string(v)
}

func (v BigintValue) Type() Type {
	return TypeBigint
}

func (v BigintValue) String() string {
	return string(v) + "n"
}

func (v BigintValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v BigintValue) MarshalJSON() ([]byte, error) {
	// The digits may exceed what a JSON number can carry losslessly,
	// so they degrade to a string.
	return []byte(strconv.Quote(string(v))), nil
}
