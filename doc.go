/*
Package rdn implements RDN, a textual data notation that reads as a
superset of JSON.

Any JSON document is a valid RDN document with the same meaning. On top
of JSON, RDN has literals for values JSON cannot carry:

	@2024-01-15T10:30:00.000Z        date (an instant, always UTC)
	@12:30:00                        time of day
	@P1DT2H                          ISO-8601 duration
	42n                              arbitrary precision integer
	/ab+c/gi                         regular expression
	b"Zm9v"  x"666f6f"               binary, base64 or hex
	NaN  Infinity  -Infinity         non-finite numbers
	Map{"k" => 1}                    map with keys of any type
	Set{1, 2, 3}                     set
	(1, 2, 3)                        tuple, parsed as an array

# Parsing and serializing

Parse decodes exactly one value; Serialize renders a value in canonical
form. Canonical text uses ", " between elements, ": " after object keys
and " => " between map keys and values, so for canonical input the two
functions invert each other exactly:

	v, err := rdn.Parse(`{"id": 42n, "tags": Set{"a", "b"}}`)
	if err != nil {
		// a *parser.ParseError with kind, line and char
	}
	out, _ := rdn.Serialize(v)
	// out == `{"id": 42n, "tags": Set{"a", "b"}}`

Values are trees of types.Value; the types package has a constructor and
accessors per variant.

# Dates

A date literal is a calendar form (@2024-01-15, with optional time,
optional millisecond fraction and optional Z) or a bare @ followed by
digits, read as epoch milliseconds. Dates always serialize as a full
UTC instant with three fraction digits.

# JSON bridge

FromJSON decodes plain JSON bytes into the value model. ToJSON renders
any value as plain JSON, downgrading the variants JSON cannot express:
non-finite numbers become null, bigints, dates, times, durations and
regexps become strings, binary becomes a base64 string, maps become
arrays of [key, value] pairs and sets become arrays.
*/
package rdn
