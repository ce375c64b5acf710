package types

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// regexpFlags is the set of flags a regexp literal may carry, each at
// most once.
const regexpFlags = "dgimsuyv"

var _ Value = RegexpValue{}

// RegexpValue is a regular expression literal: source and flags, both
// kept verbatim. The source is never compiled or matched here.
type RegexpValue struct {
	source string
	flags  string
}

// NewRegexpValue returns an RDN regexp value. Each flag must be one of
// d, g, i, m, s, u, y, v and may appear only once; order is preserved.
func NewRegexpValue(source, flags string) (RegexpValue, error) {
	var seen [len(regexpFlags)]bool
	for i := 0; i < len(flags); i++ {
		j := strings.IndexByte(regexpFlags, flags[i])
		if j < 0 {
			return RegexpValue{}, errors.Errorf("unknown regexp flag %q", flags[i])
		}
		if seen[j] {
			return RegexpValue{}, errors.Errorf("duplicate regexp flag %q", flags[i])
		}
		seen[j] = true
	}

	return RegexpValue{source: source, flags: flags}, nil
}

// Source returns the pattern between the slashes, verbatim.
func (v RegexpValue) Source() string {
	return v.source
}

// Flags returns the flags in stored order.
func (v RegexpValue) Flags() string {
	return v.flags
}

func (v RegexpValue) V() any {
	return v
}

func (v RegexpValue) Type() Type {
	return TypeRegexp
}

func (v RegexpValue) String() string {
	return "/" + v.source + "/" + v.flags
}

func (v RegexpValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v RegexpValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}
