// Package testutil provides helpers shared by tests across the module.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

// BigintValue builds a bigint value, failing the test on invalid digits.
func BigintValue(t testing.TB, digits string) types.Value {
	t.Helper()

	v, err := types.NewBigintValue(digits)
	require.NoError(t, err)
	return v
}

// TimeValue builds a time of day value, failing the test on out of range
// components.
func TimeValue(t testing.TB, hour, min, sec, ms int) types.Value {
	t.Helper()

	v, err := types.NewTimeValue(hour, min, sec, ms)
	require.NoError(t, err)
	return v
}

// DurationValue builds a duration value, failing the test on a malformed
// ISO string.
func DurationValue(t testing.TB, s string) types.Value {
	t.Helper()

	v, err := types.NewDurationValue(s)
	require.NoError(t, err)
	return v
}

// RegexpValue builds a regexp value, failing the test on invalid flags.
func RegexpValue(t testing.TB, source, flags string) types.Value {
	t.Helper()

	v, err := types.NewRegexpValue(source, flags)
	require.NoError(t, err)
	return v
}

// RequireValueEqual fails the test when want and got differ, with a diff
// of their canonical forms.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if types.Equal(want, got) {
		return
	}

	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		require.Failf(t, "mismatched values, (-want, +got)", "%s", diff)
	}
	require.EqualValues(t, want, got)
}
