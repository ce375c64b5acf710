package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

var _ Value = NewDateValue(0)

// DateValue is an instant kept as epoch milliseconds, always UTC. The
// value is a float64 like every RDN number; textual forms always carry
// whole milliseconds, so fractional storage only arises from in-memory
// construction and is truncated toward zero when formatting.
type DateValue float64

// Epoch bounds of the canonical textual form, which carries a four digit
// year: 0000-01-01T00:00:00.000Z through 9999-12-31T23:59:59.999Z.
const (
	MinUnixMilli float64 = -62167219200000
	MaxUnixMilli float64 = 253402300799999
)

// NewDateValue returns an RDN date value from epoch milliseconds.
func NewDateValue(ms float64) DateValue {
	return DateValue(ms)
}

// NewDateValueFromTime returns an RDN date value at t, truncated to
// millisecond precision.
func NewDateValueFromTime(t time.Time) DateValue {
	return DateValue(t.UnixMilli())
}

// UnixMilli returns the stored epoch milliseconds.
func (v DateValue) UnixMilli() float64 {
	return float64(v)
}

// Time returns the instant as a time.Time in UTC.
func (v DateValue) Time() time.Time {
	return time.UnixMilli(int64(v)).UTC()
}

func (v DateValue) V() any {
	return float64(v)
}

func (v DateValue) Type() Type {
	return TypeDate
}

func (v DateValue) String() string {
	return "@" + v.Time().Format("2006-01-02T15:04:05.000Z")
}

func (v DateValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v DateValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.Time().Format("2006-01-02T15:04:05.000Z"))), nil
}

// ParseDate parses the textual date forms: YYYY-MM-DD, optionally followed
// by THH:MM:SS with an optional fraction of up to three digits, optionally
// terminated by Z. No other timezone designator is accepted; the instant is
// always interpreted as UTC.
func ParseDate(s string) (DateValue, error) {
	t := strings.TrimSuffix(s, "Z")

	base := t
	layout := "2006-01-02"
	var frac int64
	if i := strings.IndexByte(t, 'T'); i >= 0 {
		layout = "2006-01-02T15:04:05"
		if j := strings.IndexByte(t, '.'); j >= 0 {
			var err error
			frac, err = parseFraction(t[j+1:])
			if err != nil {
				return 0, err
			}
			base = t[:j]
		}
	}

	// time.Parse is lenient about digit widths for some fields, so the
	// shape is checked positionally before the calendar is.
	if !matchesLayout(base, layout) {
		return 0, errors.Errorf("invalid date %q", s)
	}

	c := carbon.ParseByLayout(base, layout, "UTC")
	if c.Error != nil {
		return 0, errors.Errorf("invalid date %q", s)
	}

	return DateValue(float64(c.StdTime().UnixMilli() + frac)), nil
}

// parseFraction converts a 1 to 3 digit second fraction to milliseconds.
func parseFraction(s string) (int64, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, errors.Errorf("invalid second fraction %q", s)
	}
	var ms int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.Errorf("invalid second fraction %q", s)
		}
		ms = ms*10 + int64(s[i]-'0')
	}
	for i := len(s); i < 3; i++ {
		ms *= 10
	}

	return ms, nil
}

// matchesLayout reports whether s has a digit wherever layout has one and
// the exact same byte everywhere else.
func matchesLayout(s, layout string) bool {
	if len(s) != len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		if layout[i] >= '0' && layout[i] <= '9' {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		} else if s[i] != layout[i] {
			return false
		}
	}

	return true
}
