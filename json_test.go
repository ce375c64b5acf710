package rdn_test

import (
	"testing"

	"github.com/rdnlang/rdn"
	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		want  string
		fails bool
	}{
		{"null", `null`, `null`, false},
		{"true", `true`, `true`, false},
		{"number", `42`, `42`, false},
		{"float", `-1.5`, `-1.5`, false},
		{"exponent", `1e3`, `1000`, false},
		{"huge number", `1e999`, `Infinity`, false},
		{"string", `"foo"`, `"foo"`, false},
		{"string escapes", `"a\nb\u0041"`, `"a\nbA"`, false},
		{"empty array", `[]`, `[]`, false},
		{"array", `[1, "x", null]`, `[1, "x", null]`, false},
		{"empty object", `{}`, `{}`, false},
		{"object", `{"a": 1, "b": [true, false]}`, `{"a": 1, "b": [true, false]}`, false},
		{"nested", `{"a": {"b": {"c": []}}}`, `{"a": {"b": {"c": []}}}`, false},
		{"leading whitespace", "\n\t {\"a\": 1}", `{"a": 1}`, false},
		{"trailing whitespace", `{"a": 1}  `, `{"a": 1}`, false},

		{"empty input", ``, "", true},
		{"malformed", `{`, "", true},
		{"trailing content", `{"a": 1} x`, "", true},
		{"two values", `1 2`, "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := rdn.FromJSON([]byte(test.data))
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, rdn.MustSerialize(v))
		})
	}
}

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"null", `null`, `null`},
		{"bool", `true`, `true`},
		{"number", `42`, `42`},
		{"float", `-1.5`, `-1.5`},
		{"NaN", `NaN`, `null`},
		{"Infinity", `Infinity`, `null`},
		{"-Infinity", `-Infinity`, `null`},
		{"bigint", `42n`, `"42"`},
		{"string", `"foo"`, `"foo"`},
		{"string escapes", `"a\nb"`, `"a\nb"`},
		{"date", `@2024-01-15T10:30:00.000Z`, `"2024-01-15T10:30:00.000Z"`},
		{"date only", `@2024-01-15`, `"2024-01-15T00:00:00.000Z"`},
		{"time", `@12:30:00`, `"12:30:00"`},
		{"time with millis", `@23:59:59.999`, `"23:59:59.999"`},
		{"duration", `@P1DT2H`, `"P1DT2H"`},
		{"regexp", `/ab+c/gi`, `"/ab+c/gi"`},
		{"blob", `b"Zm9v"`, `"Zm9v"`},
		{"hex blob", `x"666f6f"`, `"Zm9v"`},
		{"array", `[1, "x", null]`, `[1,"x",null]`},
		{"tuple", `(1, 2)`, `[1,2]`},
		{"object", `{"a": 1, "b": [true, null]}`, `{"a":1,"b":[true,null]}`},
		{"map", `Map{1 => "a", "k" => 2}`, `[[1,"a"],["k",2]]`},
		{"set", `Set{"a", "b"}`, `["a","b"]`},
		{"mixed", `{"id": 42n, "when": @12:30:00}`, `{"id":"42","when":"12:30:00"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := rdn.ToJSON(rdn.MustParse(test.s))
			require.NoError(t, err)
			require.Equal(t, test.want, string(data))
		})
	}
}

// Plain JSON survives the bridge in both directions.
func TestJSONRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`42`,
		`"foo"`,
		`[1,2,3]`,
		`{"a":1,"b":[true,null],"c":"x"}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := rdn.FromJSON([]byte(doc))
			require.NoError(t, err)

			// JSON documents are RDN documents; both readers agree.
			pv, err := rdn.Parse(doc)
			require.NoError(t, err)
			require.True(t, types.Equal(pv, v))

			data, err := rdn.ToJSON(v)
			require.NoError(t, err)
			require.Equal(t, doc, string(data))
		})
	}
}
