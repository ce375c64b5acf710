package parser

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rdnlang/rdn/scanner"
)

// ErrorKind identifies the category of a parse failure.
type ErrorKind int

// All the ways a parse can fail.
const (
	// Lexical errors, detected before any structure is attempted.
	UnexpectedCharacter ErrorKind = iota + 1
	UnterminatedString
	InvalidEscape

	// Syntactic errors, detected during recursive descent.
	UnexpectedToken
	UnexpectedEOF
	TrailingInput
	InvalidObjectKey

	// Validation errors, raised by value constructors and propagated
	// verbatim.
	InvalidBigInt
	InvalidTimeOnly
	InvalidRegExpFlags
	InvalidTemporalLiteral
	InvalidDate
	InvalidBase64
	InvalidHex
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidEscape:
		return "InvalidEscape"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case TrailingInput:
		return "TrailingInput"
	case InvalidObjectKey:
		return "InvalidObjectKey"
	case InvalidBigInt:
		return "InvalidBigInt"
	case InvalidTimeOnly:
		return "InvalidTimeOnly"
	case InvalidRegExpFlags:
		return "InvalidRegExpFlags"
	case InvalidTemporalLiteral:
		return "InvalidTemporalLiteral"
	case InvalidDate:
		return "InvalidDate"
	case InvalidBase64:
		return "InvalidBase64"
	case InvalidHex:
		return "InvalidHex"
	}

	panic(fmt.Sprintf("invalid error kind %d", k))
}

// ParseError represents an error that occurred during parsing.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Found    string
	Expected []string
	Pos      scanner.Pos
}

// newParseError returns a new instance of ParseError. The kind is
// UnexpectedToken unless the offending token is the end of input.
func newParseError(tok scanner.Token, lit string, expected []string, pos scanner.Pos) error {
	kind := UnexpectedToken
	if tok == scanner.EOF {
		kind = UnexpectedEOF
	}
	return errors.WithStack(&ParseError{Kind: kind, Found: scanner.Tokstr(tok, lit), Expected: expected, Pos: pos})
}

// newParseErrorKind returns a ParseError carrying the given kind and a
// ready-made message.
func newParseErrorKind(kind ErrorKind, message string, pos scanner.Pos) error {
	return errors.WithStack(&ParseError{Kind: kind, Message: message, Pos: pos})
}

// lexicalError converts scanner error tokens to their parse error. It
// returns nil for well formed tokens.
func lexicalError(ti scanner.TokenInfo) error {
	switch ti.Tok {
	case scanner.ILLEGAL:
		return newParseErrorKind(UnexpectedCharacter, fmt.Sprintf("unexpected character %q", ti.Lit), ti.Pos)
	case scanner.BADSTRING:
		return newParseErrorKind(UnterminatedString, "unterminated string", ti.Pos)
	case scanner.BADESCAPE:
		return newParseErrorKind(InvalidEscape, fmt.Sprintf("invalid escape sequence %q", ti.Lit), ti.Pos)
	case scanner.BADNUMBER:
		return newParseErrorKind(UnexpectedCharacter, fmt.Sprintf("malformed number %q", ti.Lit), ti.Pos)
	case scanner.BADREGEXP:
		return newParseErrorKind(UnterminatedString, "unterminated regular expression", ti.Pos)
	}
	return nil
}

// KindOf extracts the error kind from err. It returns 0 when err is not
// a parse error.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Pos.Line+1, e.Pos.Char+1)
	}
	return fmt.Sprintf("found %s, expected %s at line %d, char %d", e.Found, strings.Join(e.Expected, ", "), e.Pos.Line+1, e.Pos.Char+1)
}
