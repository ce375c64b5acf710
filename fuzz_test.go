//go:build go1.17
// +build go1.17

package rdn_test

import (
	"testing"

	"github.com/rdnlang/rdn"
	"github.com/rdnlang/rdn/types"
)

// Anything that parses must serialize to text that parses back to an
// equal value.
func FuzzRoundTrip(f *testing.F) {
	f.Add(`{"date": @2024-01-15T10:30:00.000Z, "id": 42n, "tags": Set{"a", "b"}}`)
	f.Add(`Map{[1] => /ab+c/gi, @12:30:00 => b"Zm9v"}`)
	f.Add(`[NaN, Infinity, -Infinity, 0.5, x"0aff", (1, 2)]`)
	f.Fuzz(func(t *testing.T, s string) {
		v, err := rdn.Parse(s)
		if err != nil {
			t.Skip()
		}

		out, err := rdn.Serialize(v)
		if err != nil {
			t.Fatalf("serialize after parse: %v", err)
		}

		v2, err := rdn.Parse(out)
		if err != nil {
			t.Fatalf("reparse %q: %v", out, err)
		}

		if !types.Equal(v, v2) {
			t.Fatalf("round trip changed value: %q became %q", s, out)
		}

		out2, err := rdn.Serialize(v2)
		if err != nil {
			t.Fatalf("serialize reparsed value: %v", err)
		}
		if out2 != out {
			t.Fatalf("serialization not idempotent: %q then %q", out, out2)
		}
	})
}
