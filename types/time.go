package types

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Value = TimeValue{}

// TimeValue is a time of day without a date: hour, minute, second and
// millisecond, each range-checked on construction.
type TimeValue struct {
	hour int
	min  int
	sec  int
	ms   int
}

// NewTimeValue returns an RDN time value. Hour must be 0-23, minute and
// second 0-59, millisecond 0-999.
func NewTimeValue(hour, min, sec, ms int) (TimeValue, error) {
	if hour < 0 || hour > 23 {
		return TimeValue{}, errors.Errorf("hour %d out of range", hour)
	}
	if min < 0 || min > 59 {
		return TimeValue{}, errors.Errorf("minute %d out of range", min)
	}
	if sec < 0 || sec > 59 {
		return TimeValue{}, errors.Errorf("second %d out of range", sec)
	}
	if ms < 0 || ms > 999 {
		return TimeValue{}, errors.Errorf("millisecond %d out of range", ms)
	}

	return TimeValue{hour: hour, min: min, sec: sec, ms: ms}, nil
}

func (v TimeValue) Hour() int        { return v.hour }
func (v TimeValue) Minute() int      { return v.min }
func (v TimeValue) Second() int      { return v.sec }
func (v TimeValue) Millisecond() int { return v.ms }

func (v TimeValue) V() any {
	return v
}

func (v TimeValue) Type() Type {
	return TypeTime
}

func (v TimeValue) String() string {
	if v.ms != 0 {
		return fmt.Sprintf("@%02d:%02d:%02d.%03d", v.hour, v.min, v.sec, v.ms)
	}

	return fmt.Sprintf("@%02d:%02d:%02d", v.hour, v.min, v.sec)
}

func (v TimeValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v TimeValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String()[1:])), nil
}
