package types

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Value = DurationValue("P1D")

// DurationValue is an ISO-8601 duration kept as its validated source
// string, preserved verbatim. No arithmetic or normalization is defined.
type DurationValue string

// NewDurationValue returns an RDN duration value. The string must be P
// followed by optional nY, nM, nD designators in that order, then
// optionally T followed by nH, nM, nS designators in that order, with at
// least one designator overall and at least one after T when T is present.
func NewDurationValue(s string) (DurationValue, error) {
	if len(s) == 0 || s[0] != 'P' {
		return "", errors.Errorf("invalid duration %q", s)
	}

	i, n := 1, len(s)
	readDigits := func() int {
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i - start
	}

	count := 0
	for _, d := range []byte{'Y', 'M', 'D'} {
		save := i
		if readDigits() > 0 && i < n && s[i] == d {
			i++
			count++
		} else {
			i = save
		}
	}

	if i < n && s[i] == 'T' {
		i++
		tcount := 0
		for _, d := range []byte{'H', 'M', 'S'} {
			save := i
			if readDigits() > 0 && i < n && s[i] == d {
				i++
				tcount++
			} else {
				i = save
			}
		}
		if tcount == 0 {
			return "", errors.Errorf("invalid duration %q: nothing after T", s)
		}
		count += tcount
	}

	if i != n || count == 0 {
		return "", errors.Errorf("invalid duration %q", s)
	}

	return DurationValue(s), nil
}

func (v DurationValue) V() any {
	return string(v)
}

func (v DurationValue) Type() Type {
	return TypeDuration
}

func (v DurationValue) String() string {
	return "@" + string(v)
}

func (v DurationValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v DurationValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}
