package types_test

import (
	"testing"
	"time"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		s     string
		ms    float64
		fails bool
	}{
		{"2024-01-15", 1705276800000, false},
		{"2024-01-15Z", 1705276800000, false},
		{"2024-01-15T10:30:00", 1705314600000, false},
		{"2024-01-15T10:30:00Z", 1705314600000, false},
		{"2024-01-15T10:30:00.000Z", 1705314600000, false},
		{"2024-01-15T10:30:00.5", 1705314600500, false},
		{"2024-01-15T10:30:00.25Z", 1705314600250, false},
		{"2024-01-15T10:30:00.250Z", 1705314600250, false},
		{"1970-01-01T00:00:00.000Z", 0, false},
		{"1969-12-31T23:59:59.999Z", -1, false},
		{"2024-02-29", 1709164800000, false}, // leap day
		{"0000-01-01", types.MinUnixMilli, false},
		{"9999-12-31T23:59:59.999Z", types.MaxUnixMilli, false},
		{"", 0, true},
		{"2024", 0, true},
		{"2024-1-15", 0, true},
		{"2024-01-15T10:30", 0, true},
		{"2024-13-01", 0, true},
		{"2024-02-30", 0, true},
		{"2023-02-29", 0, true},
		{"2024-01-15T24:00:00", 0, true},
		{"2024-01-15T10:30:00.1234", 0, true},
		{"2024-01-15T10:30:00+02:00", 0, true},
		{"2024-01-15T10:30:00-07:00", 0, true},
		{"2024-01-15 10:30:00", 0, true},
	}

	for _, test := range tests {
		t.Run(test.s, func(t *testing.T) {
			v, err := types.ParseDate(test.s)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.ms, v.UnixMilli())
		})
	}
}

func TestDateValueTime(t *testing.T) {
	v := types.NewDateValue(1705314600000)
	require.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), v.Time())

	from := types.NewDateValueFromTime(time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC))
	require.Equal(t, v, from)
}
