package parser

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rdnlang/rdn/scanner"
	"github.com/rdnlang/rdn/types"
)

// parseNumber converts a number token to its double value.
func (p *Parser) parseNumber(ti scanner.TokenInfo) (types.Value, error) {
	f, err := strconv.ParseFloat(ti.Lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, newParseErrorKind(UnexpectedCharacter, fmt.Sprintf("malformed number %q", ti.Lit), ti.Pos)
	}

	// Out of range literals saturate to an infinity rather than fail.
	return types.NewNumberValue(f), nil
}

// parseTemporal dispatches the body of an @-literal on its shape. A
// leading P is a duration, a bare run of digits is an epoch in
// milliseconds, a body containing a dash is a date and a body containing
// a colon is a time of day.
func (p *Parser) parseTemporal(ti scanner.TokenInfo) (types.Value, error) {
	lit := ti.Lit
	switch {
	case lit[0] == 'P':
		v, err := types.NewDurationValue(lit)
		if err != nil {
			return nil, newParseErrorKind(InvalidTemporalLiteral, err.Error(), ti.Pos)
		}
		return v, nil
	case isDigits(lit):
		ms, _ := strconv.ParseFloat(lit, 64)
		if ms > types.MaxUnixMilli {
			return nil, newParseErrorKind(InvalidDate, fmt.Sprintf("epoch out of range %q", lit), ti.Pos)
		}
		return types.NewDateValue(ms), nil
	case strings.IndexByte(lit, '-') > 0:
		v, err := types.ParseDate(lit)
		if err != nil {
			return nil, newParseErrorKind(InvalidDate, err.Error(), ti.Pos)
		}
		return v, nil
	case strings.IndexByte(lit, ':') > 0:
		return p.parseTimeOnly(ti)
	}

	return nil, newParseErrorKind(InvalidTemporalLiteral, fmt.Sprintf("invalid temporal literal %q", lit), ti.Pos)
}

// parseTimeOnly parses a bare time of day of the shape HH:MM:SS with an
// optional fraction of one to three digits. Component ranges are checked
// by the constructor.
func (p *Parser) parseTimeOnly(ti scanner.TokenInfo) (types.Value, error) {
	base, frac, hasFrac := strings.Cut(ti.Lit, ".")

	if len(base) != 8 || base[2] != ':' || base[5] != ':' ||
		!isDigits(base[:2]) || !isDigits(base[3:5]) || !isDigits(base[6:]) {
		return nil, newParseErrorKind(InvalidTemporalLiteral, fmt.Sprintf("invalid temporal literal %q", ti.Lit), ti.Pos)
	}

	ms := 0
	if hasFrac {
		if len(frac) == 0 || len(frac) > 3 || !isDigits(frac) {
			return nil, newParseErrorKind(InvalidTemporalLiteral, fmt.Sprintf("invalid temporal literal %q", ti.Lit), ti.Pos)
		}
		ms, _ = strconv.Atoi(frac)
		for i := len(frac); i < 3; i++ {
			ms *= 10
		}
	}

	hour, _ := strconv.Atoi(base[:2])
	min, _ := strconv.Atoi(base[3:5])
	sec, _ := strconv.Atoi(base[6:])

	v, err := types.NewTimeValue(hour, min, sec, ms)
	if err != nil {
		return nil, newParseErrorKind(InvalidTimeOnly, err.Error(), ti.Pos)
	}
	return v, nil
}

// parseRegexp splits a raw regexp literal into source and flags. Flags
// cannot contain a slash, so the closing delimiter is the last one in
// the literal.
func (p *Parser) parseRegexp(ti scanner.TokenInfo) (types.Value, error) {
	end := strings.LastIndexByte(ti.Lit, '/')
	source, flags := ti.Lit[1:end], ti.Lit[end+1:]

	v, err := types.NewRegexpValue(source, flags)
	if err != nil {
		return nil, newParseErrorKind(InvalidRegExpFlags, err.Error(), ti.Pos)
	}
	return v, nil
}

// parseBase64 decodes the content of a b"..." literal. The standard
// alphabet is required, padding included.
func (p *Parser) parseBase64(ti scanner.TokenInfo) (types.Value, error) {
	// DecodeString skips CR and LF, the literal grammar does not.
	if strings.ContainsAny(ti.Lit, "\r\n") {
		return nil, newParseErrorKind(InvalidBase64, fmt.Sprintf("invalid base64 content %q", ti.Lit), ti.Pos)
	}

	b, err := base64.StdEncoding.DecodeString(ti.Lit)
	if err != nil {
		return nil, newParseErrorKind(InvalidBase64, fmt.Sprintf("invalid base64 content %q", ti.Lit), ti.Pos)
	}
	return types.NewBlobValue(b), nil
}

// parseHex decodes the content of an x"..." literal. Content must have
// an even number of digits, either case.
func (p *Parser) parseHex(ti scanner.TokenInfo) (types.Value, error) {
	b, err := hex.DecodeString(ti.Lit)
	if err != nil {
		return nil, newParseErrorKind(InvalidHex, fmt.Sprintf("invalid hex content %q", ti.Lit), ti.Pos)
	}
	return types.NewBlobValue(b), nil
}

// isDigits returns true if s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
