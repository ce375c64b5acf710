// Package assert provides error assertions that print stacks. Errors
// built with cockroachdb/errors carry one; requiring through this
// package surfaces it on failure.
package assert

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// NoError fails the test immediately when err is non-nil.
func NoError(t testing.TB, err error) {
	t.Helper()

	if err == nil {
		return
	}
	t.Logf("Expected error to be nil but got:\n%+v", err)
	t.FailNow()
}

// Error fails the test immediately when err is nil.
func Error(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		return
	}
	t.Log("Expected error to be present, but got nil instead")
	t.FailNow()
}

// ErrorIs fails the test immediately when err does not match target.
func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}
	t.Logf("Expected error to be %v but got:\n%+v", target, err)
	t.FailNow()
}
