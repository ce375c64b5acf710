package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode"
	"unicode/utf16"
)

// Code heavily inspired by the influxdata/influxql repository
// https://github.com/influxdata/influxql/blob/57f403b00b124eb900835c0c944e9b60d848db5e/scanner.go#L12

// Scanner represents a lexical scanner for RDN.
type Scanner struct {
	r *reader
}

// NewScanner returns a new instance of Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: &reader{r: bufio.NewReaderSize(r, 128)}}
}

// Scan returns the next token and position from the underlying reader.
// Also returns the literal text read for strings, numbers, bigints,
// temporals, regexps and binary blobs since these token types can have
// different literal representations.
func (s *Scanner) Scan() TokenInfo {
	// Read next code point.
	ch0, pos := s.r.read()

	// If we see whitespace then consume all contiguous whitespace.
	// A 'b' or 'x' immediately followed by a double quote starts a
	// binary literal, any other letter starts an ident or keyword.
	if isWhitespace(ch0) {
		return s.scanWhitespace()
	} else if ch0 == 'b' || ch0 == 'x' {
		if ch1, _ := s.r.read(); ch1 == '"' {
			return s.scanBlob(pos, ch0 == 'x')
		}
		s.r.unread()
		s.r.unread()
		return s.scanIdent()
	} else if isLetter(ch0) {
		s.r.unread()
		return s.scanIdent()
	} else if isDigit(ch0) {
		s.r.unread()
		return s.scanNumber()
	}

	// Otherwise parse individual characters.
	switch ch0 {
	case eof:
		return TokenInfo{EOF, pos, ""}
	case '"':
		return s.scanString()
	case '-':
		ch1, _ := s.r.read()
		if isDigit(ch1) {
			s.r.unread()
			s.r.unread()
			return s.scanNumber()
		}
		if isLetter(ch1) {
			s.r.unread()
			ti := s.scanIdent()
			if ti.Tok == INFINITY {
				return TokenInfo{NEGINFINITY, pos, ""}
			}
			return TokenInfo{ILLEGAL, pos, "-" + Tokstr(ti.Tok, ti.Lit)}
		}
		s.r.unread()
		return TokenInfo{ILLEGAL, pos, "-"}
	case '@':
		return s.scanTemporal()
	case '/':
		return s.scanRegexp()
	case '=':
		if ch1, _ := s.r.read(); ch1 == '>' {
			return TokenInfo{ARROW, pos, ""}
		}
		s.r.unread()
		return TokenInfo{ILLEGAL, pos, "="}
	case '[':
		return TokenInfo{LBRACKET, pos, ""}
	case ']':
		return TokenInfo{RBRACKET, pos, ""}
	case '{':
		return TokenInfo{LBRACE, pos, ""}
	case '}':
		return TokenInfo{RBRACE, pos, ""}
	case '(':
		return TokenInfo{LPAREN, pos, ""}
	case ')':
		return TokenInfo{RPAREN, pos, ""}
	case ',':
		return TokenInfo{COMMA, pos, ""}
	case ':':
		return TokenInfo{COLON, pos, ""}
	}

	return TokenInfo{ILLEGAL, pos, string(ch0)}
}

// scanWhitespace consumes the current rune and all contiguous whitespace.
func (s *Scanner) scanWhitespace() TokenInfo {
	// Create a buffer and read the current character into it.
	var buf bytes.Buffer
	ch, pos := s.r.curr()
	_, _ = buf.WriteRune(ch)

	// Read every subsequent whitespace character into the buffer.
	// Non-whitespace characters and EOF will cause the loop to exit.
	for {
		ch, _ = s.r.read()
		if ch == eof {
			break
		} else if !isWhitespace(ch) {
			s.r.unread()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}

	return TokenInfo{WS, pos, buf.String()}
}

func (s *Scanner) scanIdent() TokenInfo {
	// Save the starting position of the identifier.
	_, pos := s.r.read()
	s.r.unread()

	lit := ScanBareIdent(s.r)

	// If the literal matches a keyword then return that keyword.
	if tok := Lookup(lit); tok != IDENT {
		return TokenInfo{tok, pos, ""}
	}
	return TokenInfo{IDENT, pos, lit}
}

// scanString consumes a double quoted string, decoding its escape
// sequences. The literal holds the decoded text.
func (s *Scanner) scanString() TokenInfo {
	_, pos := s.r.curr()
	s.r.unread()

	lit, err := ScanString(s.r)
	if err == errBadString {
		return TokenInfo{BADSTRING, pos, lit}
	} else if err == errBadEscape {
		_, pos = s.r.curr()
		return TokenInfo{BADESCAPE, pos, lit}
	} else if err == errBadChar {
		_, pos = s.r.curr()
		return TokenInfo{ILLEGAL, pos, lit}
	}
	return TokenInfo{STRING, pos, lit}
}

// scanNumber consumes anything that looks like the start of a number.
// Numbers follow the JSON grammar. An integer literal immediately
// followed by 'n' is a bigint, whose literal keeps the digits and sign
// but drops the suffix.
func (s *Scanner) scanNumber() TokenInfo {
	var buf bytes.Buffer

	ch, pos := s.r.read()
	if ch == '-' {
		_, _ = buf.WriteRune(ch)
		ch, _ = s.r.read()
	}

	// Integer part. The caller guarantees at least one digit.
	intLen := 0
	leadingZero := ch == '0'
	for isDigit(ch) {
		_, _ = buf.WriteRune(ch)
		intLen++
		ch, _ = s.r.read()
	}

	// Fractional part.
	isDecimal := false
	if ch == '.' {
		_, _ = buf.WriteRune(ch)
		isDecimal = true
		n := 0
		for ch, _ = s.r.read(); isDigit(ch); ch, _ = s.r.read() {
			_, _ = buf.WriteRune(ch)
			n++
		}
		if n == 0 {
			s.r.unread()
			return TokenInfo{BADNUMBER, pos, buf.String()}
		}
	}

	// Exponent part.
	hasExponent := false
	if ch == 'e' || ch == 'E' {
		_, _ = buf.WriteRune(ch)
		hasExponent = true
		ch, _ = s.r.read()
		if ch == '+' || ch == '-' {
			_, _ = buf.WriteRune(ch)
			ch, _ = s.r.read()
		}
		n := 0
		for ; isDigit(ch); ch, _ = s.r.read() {
			_, _ = buf.WriteRune(ch)
			n++
		}
		if n == 0 {
			s.r.unread()
			return TokenInfo{BADNUMBER, pos, buf.String()}
		}
	}

	// Bigints keep their leading zeros, numbers must not have any.
	if !isDecimal && !hasExponent && ch == 'n' {
		return TokenInfo{BIGINT, pos, buf.String()}
	}
	s.r.unread()

	if leadingZero && intLen > 1 {
		return TokenInfo{BADNUMBER, pos, buf.String()}
	}
	return TokenInfo{NUMBER, pos, buf.String()}
}

// scanTemporal consumes the body of a temporal literal after its '@'
// marker. The body is returned raw, validation is left to the parser.
func (s *Scanner) scanTemporal() TokenInfo {
	_, pos := s.r.curr()

	var buf bytes.Buffer
	for {
		ch, _ := s.r.read()
		if !isTemporalChar(ch) {
			s.r.unread()
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	if buf.Len() == 0 {
		return TokenInfo{ILLEGAL, pos, "@"}
	}
	return TokenInfo{TEMPORAL, pos, buf.String()}
}

// scanRegexp consumes a regular expression literal and its flags. The
// literal is kept raw, delimiters included. A slash inside a character
// class does not close the expression.
func (s *Scanner) scanRegexp() TokenInfo {
	_, pos := s.r.curr()

	var buf bytes.Buffer
	_, _ = buf.WriteRune('/')

	inClass := false
	for {
		ch, _ := s.r.read()
		if ch == eof || ch == '\n' {
			return TokenInfo{BADREGEXP, pos, buf.String()}
		}
		if ch == '\\' {
			ch1, _ := s.r.read()
			if ch1 == eof || ch1 == '\n' {
				return TokenInfo{BADREGEXP, pos, buf.String()}
			}
			_, _ = buf.WriteRune(ch)
			_, _ = buf.WriteRune(ch1)
			continue
		}
		_, _ = buf.WriteRune(ch)
		if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			break
		}
	}

	// Flags.
	for {
		ch, _ := s.r.read()
		if !isLetter(ch) {
			s.r.unread()
			break
		}
		_, _ = buf.WriteRune(ch)
	}
	return TokenInfo{REGEXP, pos, buf.String()}
}

// scanBlob consumes the raw content of a binary literal. The marker and
// opening quote have already been read. Decoding is left to the parser.
func (s *Scanner) scanBlob(pos Pos, hexForm bool) TokenInfo {
	tok := B64BLOB
	if hexForm {
		tok = HEXBLOB
	}

	var buf bytes.Buffer
	for {
		ch, _ := s.r.read()
		if ch == eof {
			return TokenInfo{BADSTRING, pos, buf.String()}
		}
		if ch == '"' {
			return TokenInfo{tok, pos, buf.String()}
		}
		_, _ = buf.WriteRune(ch)
	}
}

// isWhitespace returns true if the rune is a space, tab, or newline.
func isWhitespace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' }

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool { return (ch >= '0' && ch <= '9') }

// isIdentChar returns true if the rune can be used in an identifier.
func isIdentChar(ch rune) bool { return isLetter(ch) || isDigit(ch) || ch == '_' }

// isTemporalChar returns true if the rune can appear in the body of a
// temporal literal: dates, times of day, epochs and ISO 8601 durations.
func isTemporalChar(ch rune) bool {
	if isDigit(ch) {
		return true
	}
	switch ch {
	case '-', ':', '.', 'T', 'Z', 'P', 'Y', 'M', 'D', 'H', 'S':
		return true
	}
	return false
}

// BufScanner represents a wrapper for scanner to add a buffer.
// It provides a fixed-length circular buffer that can be unread.
type BufScanner struct {
	s   *Scanner
	i   int // buffer index
	n   int // buffer size
	buf [3]TokenInfo
}

// NewBufScanner returns a new buffered scanner for a reader.
func NewBufScanner(r io.Reader) *BufScanner {
	return &BufScanner{s: NewScanner(r)}
}

// Scan reads the next token from the scanner.
func (s *BufScanner) Scan() TokenInfo {
	// If we have unread tokens then read them off the buffer first.
	if s.n > 0 {
		s.n--
		return s.curr()
	}

	// Move buffer position forward and save the token.
	s.i = (s.i + 1) % len(s.buf)
	s.buf[s.i] = s.s.Scan()

	return s.curr()
}

// Unscan pushes the previously read token back onto the buffer.
func (s *BufScanner) Unscan() { s.n++ }

// curr returns the last read token.
func (s *BufScanner) curr() TokenInfo {
	return s.buf[(s.i-s.n+len(s.buf))%len(s.buf)]
}

// reader represents a buffered rune reader used by the scanner.
// It provides a fixed-length circular buffer that can be unread.
type reader struct {
	r   io.RuneScanner
	i   int // buffer index
	n   int // buffer char count
	pos Pos // last read rune position
	buf [3]struct {
		ch  rune
		pos Pos
	}
	eof bool // true if reader has ever seen eof.
}

// ReadRune reads the next rune from the reader.
// This is a wrapper function to implement the io.RuneReader interface.
// Note that this function does not return size.
func (r *reader) ReadRune() (ch rune, size int, err error) {
	ch, _ = r.read()
	if ch == eof {
		err = io.EOF
	}
	return
}

// UnreadRune pushes the previously read rune back onto the buffer.
// This is a wrapper function to implement the io.RuneScanner interface.
func (r *reader) UnreadRune() error {
	r.unread()
	return nil
}

// read reads the next rune from the reader.
func (r *reader) read() (ch rune, pos Pos) {
	// If we have unread characters then read them off the buffer first.
	if r.n > 0 {
		r.n--
		return r.curr()
	}

	// Read next rune from underlying reader.
	// Any error (including io.EOF) should return as EOF.
	ch, w, err := r.r.ReadRune()
	if err != nil {
		ch, w = eof, 0
	} else if ch == '\r' {
		if ch, _, err := r.r.ReadRune(); err != nil {
			// nop
		} else if ch != '\n' {
			_ = r.r.UnreadRune()
		} else {
			w = 2
		}
		ch = '\n'
	}

	// Save character and position to the buffer.
	r.i = (r.i + 1) % len(r.buf)
	buf := &r.buf[r.i]
	buf.ch, buf.pos = ch, r.pos

	// Update position.
	// Only count EOF once.
	if ch == '\n' {
		r.pos.Line++
		r.pos.Char = 0
	} else if !r.eof {
		r.pos.Char++
	}
	r.pos.Offset += w

	// Mark the reader as EOF.
	// This is used so we don't double count EOF characters.
	if ch == eof {
		r.eof = true
	}

	return r.curr()
}

// unread pushes the previously read rune back onto the buffer.
func (r *reader) unread() {
	r.n++
}

// curr returns the last read character and position.
func (r *reader) curr() (ch rune, pos Pos) {
	i := (r.i - r.n + len(r.buf)) % len(r.buf)
	buf := &r.buf[i]
	return buf.ch, buf.pos
}

// eof is a marker code point to signify that the reader can't read any more.
const eof = rune(0)

// ScanString reads a double quoted string from a rune reader, decoding
// escape sequences as it goes. Unpaired surrogate escapes decode to
// U+FFFD the same way encoding/json decodes them.
func ScanString(r io.RuneScanner) (string, error) {
	if ch, _, err := r.ReadRune(); err != nil || ch != '"' {
		return "", errBadString
	}

	var buf bytes.Buffer
	for {
		ch0, _, err := r.ReadRune()
		if err != nil {
			return buf.String(), errBadString
		}
		switch {
		case ch0 == '"':
			return buf.String(), nil
		case ch0 < 0x20:
			// Control characters, including newlines, must be escaped.
			return string(ch0), errBadChar
		case ch0 == '\\':
			ch1, _, err := r.ReadRune()
			if err != nil {
				return buf.String(), errBadString
			}
			switch ch1 {
			case '"', '\\', '/':
				_, _ = buf.WriteRune(ch1)
			case 'b':
				_ = buf.WriteByte('\b')
			case 'f':
				_ = buf.WriteByte('\f')
			case 'n':
				_ = buf.WriteByte('\n')
			case 'r':
				_ = buf.WriteByte('\r')
			case 't':
				_ = buf.WriteByte('\t')
			case 'u':
				c, err := scanHex4(r)
				if err != nil {
					return `\u`, errBadEscape
				}
				for utf16.IsSurrogate(c) {
					if !scanUnicodePrefix(r) {
						c = unicode.ReplacementChar
						break
					}
					c2, err := scanHex4(r)
					if err != nil {
						return `\u`, errBadEscape
					}
					if dec := utf16.DecodeRune(c, c2); dec != unicode.ReplacementChar {
						c = dec
						break
					}
					// Unpaired surrogate. Emit a replacement character
					// and give the next escape its own chance to pair.
					_, _ = buf.WriteRune(unicode.ReplacementChar)
					c = c2
				}
				_, _ = buf.WriteRune(c)
			default:
				return `\` + string(ch1), errBadEscape
			}
		default:
			_, _ = buf.WriteRune(ch0)
		}
	}
}

// scanHex4 reads the four hex digits of a \uXXXX escape.
func scanHex4(r io.RuneScanner) (rune, error) {
	var n rune
	for i := 0; i < 4; i++ {
		ch, _, err := r.ReadRune()
		if err != nil {
			return 0, errBadEscape
		}
		switch {
		case ch >= '0' && ch <= '9':
			n = n<<4 | (ch - '0')
		case ch >= 'a' && ch <= 'f':
			n = n<<4 | (ch - 'a' + 10)
		case ch >= 'A' && ch <= 'F':
			n = n<<4 | (ch - 'A' + 10)
		default:
			return 0, errBadEscape
		}
	}
	return n, nil
}

// scanUnicodePrefix consumes the two characters of a \u escape prefix if
// they are next in the input. Otherwise nothing is consumed.
func scanUnicodePrefix(r io.RuneScanner) bool {
	ch, _, err := r.ReadRune()
	if err != nil {
		return false
	}
	if ch != '\\' {
		_ = r.UnreadRune()
		return false
	}
	ch, _, err = r.ReadRune()
	if err != nil {
		return false
	}
	if ch != 'u' {
		_ = r.UnreadRune()
		_ = r.UnreadRune()
		return false
	}
	return true
}

var errBadString = errors.New("bad string")
var errBadEscape = errors.New("bad escape")
var errBadChar = errors.New("bad character")

// ScanBareIdent reads bare identifier from a rune reader.
func ScanBareIdent(r io.RuneScanner) string {
	// Read every ident character into the buffer.
	// Non-ident characters and EOF will cause the loop to exit.
	var buf bytes.Buffer
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			break
		} else if !isIdentChar(ch) {
			_ = r.UnreadRune()
			break
		} else {
			_, _ = buf.WriteRune(ch)
		}
	}
	return buf.String()
}

// TokenInfo holds information about a token.
type TokenInfo struct {
	Tok Token
	Pos Pos
	Lit string
}
