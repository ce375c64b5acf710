//go:build go1.17
// +build go1.17

package parser

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add(`{"date": @2024-01-15T10:30:00.000Z, "id": 42n, "tags": Set{"a", "b"}}`)
	f.Add(`Map{[1, 2] => /ab+c/gi, @12:30:00 => b"Zm9v"}`)
	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse(s)
		if err != nil || v == nil {
			t.Skip()
		}
	})
}
