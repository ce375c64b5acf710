package types_test

import (
	"testing"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestNewBigintValue(t *testing.T) {
	tests := []struct {
		digits string
		fails  bool
	}{
		{"12345", false},
		{"0", false},
		{"-42", false},
		{"-0", false},
		{"007", false},
		{"", true},
		{"-", true},
		{"12a3", true},
		{"1.5", true},
		{"+1", true},
		{"1 2", true},
	}

	for _, test := range tests {
		t.Run(test.digits, func(t *testing.T) {
			v, err := types.NewBigintValue(test.digits)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.digits, v.Digits())
			require.Equal(t, test.digits+"n", v.String())
		})
	}
}
