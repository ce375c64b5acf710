package scanner

// Token is a lexical token of the RDN language.
type Token int

// These are a comprehensive list of RDN tokens.
const (
	// ILLEGAL Token, EOF, WS are special RDN tokens.
	ILLEGAL Token = iota
	EOF
	WS

	literalBeg
	// IDENT and the following are RDN literal tokens.
	IDENT     // main
	NUMBER    // 12345.67
	STRING    // "abc"
	BIGINT    // 42n
	REGEXP    // /ab+c/gi
	TEMPORAL  // 2024-01-15T10:30:00.000Z
	B64BLOB   // b"Zm9v"
	HEXBLOB   // x"0aff"
	BADSTRING // "abc
	BADESCAPE // \q
	BADNUMBER // 1.
	BADREGEXP // /ab
	literalEnd

	keywordBeg
	// TRUE and the following are RDN keywords.
	TRUE     // true
	FALSE    // false
	NULL     // null
	NAN      // NaN
	INFINITY // Infinity
	MAP      // Map
	SET      // Set
	keywordEnd

	// NEGINFINITY is produced by the scanner itself, never by keyword
	// lookup, since its spelling starts with a minus sign.
	NEGINFINITY // -Infinity

	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	LPAREN   // (
	RPAREN   // )
	COMMA    // ,
	COLON    // :
	ARROW    // =>
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",

	IDENT:     "IDENT",
	NUMBER:    "NUMBER",
	STRING:    "STRING",
	BIGINT:    "BIGINT",
	REGEXP:    "REGEXP",
	TEMPORAL:  "TEMPORAL",
	B64BLOB:   "B64BLOB",
	HEXBLOB:   "HEXBLOB",
	BADSTRING: "BADSTRING",
	BADESCAPE: "BADESCAPE",
	BADNUMBER: "BADNUMBER",
	BADREGEXP: "BADREGEXP",

	TRUE:     "true",
	FALSE:    "false",
	NULL:     "null",
	NAN:      "NaN",
	INFINITY: "Infinity",
	MAP:      "Map",
	SET:      "Set",

	NEGINFINITY: "-Infinity",

	LBRACKET: "[",
	RBRACKET: "]",
	LBRACE:   "{",
	RBRACE:   "}",
	LPAREN:   "(",
	RPAREN:   ")",
	COMMA:    ",",
	COLON:    ":",
	ARROW:    "=>",
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for tok := keywordBeg + 1; tok < keywordEnd; tok++ {
		keywords[tokens[tok]] = tok
	}
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// Tokstr returns a literal if provided, otherwise returns the token string.
func Tokstr(tok Token, lit string) string {
	if lit != "" {
		return lit
	}
	return tok.String()
}

// Lookup returns the token associated with a given string. RDN keywords
// are case sensitive, so "True" or "NULL" stay plain identifiers.
func Lookup(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Pos specifies the position of a token in the input. Line and Char are
// both zero-based indexes, Offset is the byte offset from the start.
type Pos struct {
	Line   int
	Char   int
	Offset int
}
