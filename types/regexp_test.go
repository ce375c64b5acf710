package types_test

import (
	"testing"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestNewRegexpValue(t *testing.T) {
	tests := []struct {
		name   string
		source string
		flags  string
		fails  bool
	}{
		{"no flags", "ab+c", "", false},
		{"single flag", "ab+c", "g", false},
		{"all flags once", "x", "dgimsuyv", false},
		{"unordered flags", "x", "ig", false},
		{"empty source", "", "g", false},
		{"escaped slash source", `a\/b`, "", false},
		{"unknown flag", "x", "x", true},
		{"duplicate flag", "x", "gg", true},
		{"mixed valid invalid", "x", "gz", true},
		{"uppercase flag", "x", "G", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := types.NewRegexpValue(test.source, test.flags)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.source, v.Source())
			require.Equal(t, test.flags, v.Flags())
			require.Equal(t, "/"+test.source+"/"+test.flags, v.String())
		})
	}
}
