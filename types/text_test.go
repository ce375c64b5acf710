package types_test

import (
	"testing"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestQuoteText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"empty", "", `""`},
		{"plain", "hello", `"hello"`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"backspace", "a\bb", `"a\bb"`},
		{"form feed", "a\fb", `"a\fb"`},
		{"control", "a\x02b", `"a\u0002b"`},
		{"control upper bound", "a\x1fb", `"a\u001fb"`},
		{"unicode", "héllo ☃", `"héllo ☃"`},
		{"all specials", "a\\b\nc\t\"d\x02\re", `"a\\b\nc\t\"d\u0002\re"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, types.QuoteText(test.in))
			require.Equal(t, test.expected, types.NewTextValue(test.in).String())
		})
	}
}
