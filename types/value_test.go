package types_test

import (
	"math"
	"testing"

	"github.com/rdnlang/rdn/types"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tm := func(h, m, s, ms int) types.TimeValue {
		tv, err := types.NewTimeValue(h, m, s, ms)
		require.NoError(t, err)
		return tv
	}
	bigint := func(digits string) types.BigintValue {
		bv, err := types.NewBigintValue(digits)
		require.NoError(t, err)
		return bv
	}
	re, err := types.NewRegexpValue("ab+c", "gi")
	require.NoError(t, err)
	dur, err := types.NewDurationValue("P1DT2H")
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.NewNullValue(), "null"},
		{"bool", types.NewBooleanValue(true), "true"},
		{"number", types.NewNumberValue(10), "10"},
		{"number zero", types.NewNumberValue(0), "0"},
		{"number decimal", types.NewNumberValue(-12.5), "-12.5"},
		{"number small", types.NewNumberValue(1e-7), "1e-07"},
		{"number big", types.NewNumberValue(1e15), "1e+15"},
		{"number max", types.NewNumberValue(math.MaxFloat64), "1.7976931348623157e+308"},
		{"nan", types.NewNumberValue(math.NaN()), "NaN"},
		{"infinity", types.NewNumberValue(math.Inf(1)), "Infinity"},
		{"neg infinity", types.NewNumberValue(math.Inf(-1)), "-Infinity"},
		{"bigint", bigint("42"), "42n"},
		{"bigint negative", bigint("-7"), "-7n"},
		{"bigint leading zeros", bigint("007"), "007n"},
		{"text", types.NewTextValue("bar"), `"bar"`},
		{"date", types.NewDateValue(1705314600000), "@2024-01-15T10:30:00.000Z"},
		{"date midnight", types.NewDateValue(1705276800000), "@2024-01-15T00:00:00.000Z"},
		{"date min", types.NewDateValue(types.MinUnixMilli), "@0000-01-01T00:00:00.000Z"},
		{"date max", types.NewDateValue(types.MaxUnixMilli), "@9999-12-31T23:59:59.999Z"},
		{"time", tm(12, 30, 0, 0), "@12:30:00"},
		{"time with millis", tm(23, 59, 59, 999), "@23:59:59.999"},
		{"duration", dur, "@P1DT2H"},
		{"regexp", re, "/ab+c/gi"},
		{"blob", types.NewBlobValue([]byte("foo")), `b"Zm9v"`},
		{"blob empty", types.NewBlobValue(nil), `b""`},
		{"array", types.NewArrayValue(types.NewNumberValue(1), types.NewTextValue("x"), types.NewNullValue()), `[1, "x", null]`},
		{"array empty", types.NewArrayValue(), "[]"},
		{"object", types.NewObjectValue().Add("a", types.NewNumberValue(1)).Add("b", types.NewBooleanValue(false)), `{"a": 1, "b": false}`},
		{"object empty", types.NewObjectValue(), "{}"},
		{"map", types.NewMapValue().Add(types.NewNumberValue(1), types.NewTextValue("a")), `Map{1 => "a"}`},
		{"map empty", types.NewMapValue(), "Map{}"},
		{"set", types.NewSetValue(types.NewTextValue("a"), types.NewTextValue("b")), `Set{"a", "b"}`},
		{"set empty", types.NewSetValue(), "Set{}"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.value.String())

			data, err := test.value.MarshalText()
			require.NoError(t, err)
			require.Equal(t, test.expected, string(data))
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	bigint, err := types.NewBigintValue("12345678901234567890")
	require.NoError(t, err)
	tm, err := types.NewTimeValue(12, 30, 0, 500)
	require.NoError(t, err)
	dur, err := types.NewDurationValue("PT5M")
	require.NoError(t, err)
	re, err := types.NewRegexpValue("a.b", "m")
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.NewNullValue(), "null"},
		{"bool", types.NewBooleanValue(false), "false"},
		{"number", types.NewNumberValue(10.1), "10.1"},
		{"nan", types.NewNumberValue(math.NaN()), "null"},
		{"infinity", types.NewNumberValue(math.Inf(1)), "null"},
		{"bigint", bigint, `"12345678901234567890"`},
		{"text", types.NewTextValue("bar"), `"bar"`},
		{"date", types.NewDateValue(1705314600000), `"2024-01-15T10:30:00.000Z"`},
		{"time", tm, `"12:30:00.500"`},
		{"duration", dur, `"PT5M"`},
		{"regexp", re, `"/a.b/m"`},
		{"blob", types.NewBlobValue([]byte("foo")), `"Zm9v"`},
		{"array", types.NewArrayValue(types.NewNumberValue(1), types.NewNullValue()), "[1,null]"},
		{"object", types.NewObjectValue().Add("a", types.NewTextValue("x")), `{"a":"x"}`},
		{"map", types.NewMapValue().Add(types.NewNumberValue(1), types.NewTextValue("a")), `[[1,"a"]]`},
		{"set", types.NewSetValue(types.NewTextValue("a")), `["a"]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := test.value.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, test.expected, string(data))
		})
	}
}

func TestValueTypes(t *testing.T) {
	bigint, err := types.NewBigintValue("1")
	require.NoError(t, err)
	tm, err := types.NewTimeValue(0, 0, 0, 0)
	require.NoError(t, err)
	dur, err := types.NewDurationValue("P1Y")
	require.NoError(t, err)
	re, err := types.NewRegexpValue("x", "")
	require.NoError(t, err)

	tests := []struct {
		value types.Value
		typ   types.Type
		name  string
	}{
		{types.NewNullValue(), types.TypeNull, "null"},
		{types.NewBooleanValue(true), types.TypeBoolean, "boolean"},
		{types.NewNumberValue(1), types.TypeNumber, "number"},
		{bigint, types.TypeBigint, "bigint"},
		{types.NewTextValue(""), types.TypeText, "text"},
		{types.NewDateValue(0), types.TypeDate, "date"},
		{tm, types.TypeTime, "time"},
		{dur, types.TypeDuration, "duration"},
		{re, types.TypeRegexp, "regexp"},
		{types.NewBlobValue(nil), types.TypeBlob, "blob"},
		{types.NewArrayValue(), types.TypeArray, "array"},
		{types.NewObjectValue(), types.TypeObject, "object"},
		{types.NewMapValue(), types.TypeMap, "map"},
		{types.NewSetValue(), types.TypeSet, "set"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.typ, test.value.Type())
			require.Equal(t, test.name, test.value.Type().String())
		})
	}
}
