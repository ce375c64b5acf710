package types_test

import (
	"testing"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestNewDurationValue(t *testing.T) {
	tests := []struct {
		s     string
		fails bool
	}{
		{"P1Y", false},
		{"P3M", false},
		{"P10D", false},
		{"P1Y2M3D", false},
		{"PT1H", false},
		{"PT5M", false},
		{"PT30S", false},
		{"PT1H30M", false},
		{"P1DT2H", false},
		{"P1Y2M3DT4H5M6S", false},
		{"P0D", false},
		{"", true},
		{"P", true},
		{"PT", true},
		{"1D", true},
		{"P1", true},
		{"PD", true},
		{"P1H", true},   // time designator without T
		{"PT1D", true},  // date designator after T
		{"P1M2Y", true}, // designators out of order
		{"P1.5D", true},
		{"P-1D", true},
		{"P1DT", true},
		{"P1D2H", true},
		{"P2W", true},
	}

	for _, test := range tests {
		t.Run(test.s, func(t *testing.T) {
			v, err := types.NewDurationValue(test.s)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.s, v.V())
			require.Equal(t, "@"+test.s, v.String())
		})
	}
}
