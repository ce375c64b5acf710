package parser

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rdnlang/rdn/scanner"
	"github.com/rdnlang/rdn/types"
)

// Parser represents an RDN parser.
type Parser struct {
	s *scanner.BufScanner
}

// NewParser returns a new instance of Parser.
func NewParser(r io.Reader) *Parser {
	return &Parser{s: scanner.NewBufScanner(r)}
}

// Parse parses a document and returns the value it contains.
func Parse(s string) (types.Value, error) {
	return NewParser(strings.NewReader(s)).Parse()
}

// MustParse calls Parse and panics if it returns an error.
func MustParse(s string) types.Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}

	return v
}

// Parse parses exactly one value and requires the input to end after it.
func (p *Parser) Parse() (types.Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	ti := p.ScanIgnoreWhitespace()
	if ti.Tok != scanner.EOF {
		return nil, newParseErrorKind(TrailingInput, fmt.Sprintf("unexpected content after value: %s", scanner.Tokstr(ti.Tok, ti.Lit)), ti.Pos)
	}
	return v, nil
}

// parseValue parses a single value of any type.
func (p *Parser) parseValue() (types.Value, error) {
	ti := p.ScanIgnoreWhitespace()
	if err := lexicalError(ti); err != nil {
		return nil, err
	}

	switch ti.Tok {
	case scanner.NULL:
		return types.NewNullValue(), nil
	case scanner.TRUE:
		return types.NewBooleanValue(true), nil
	case scanner.FALSE:
		return types.NewBooleanValue(false), nil
	case scanner.NAN:
		return types.NewNumberValue(math.NaN()), nil
	case scanner.INFINITY:
		return types.NewNumberValue(math.Inf(1)), nil
	case scanner.NEGINFINITY:
		return types.NewNumberValue(math.Inf(-1)), nil
	case scanner.NUMBER:
		return p.parseNumber(ti)
	case scanner.BIGINT:
		v, err := types.NewBigintValue(ti.Lit)
		if err != nil {
			return nil, newParseErrorKind(InvalidBigInt, err.Error(), ti.Pos)
		}
		return v, nil
	case scanner.STRING:
		return types.NewTextValue(ti.Lit), nil
	case scanner.TEMPORAL:
		return p.parseTemporal(ti)
	case scanner.REGEXP:
		return p.parseRegexp(ti)
	case scanner.B64BLOB:
		return p.parseBase64(ti)
	case scanner.HEXBLOB:
		return p.parseHex(ti)
	case scanner.LBRACKET:
		return p.parseArray()
	case scanner.LPAREN:
		return p.parseTuple()
	case scanner.LBRACE:
		return p.parseBrace()
	case scanner.MAP:
		// Map is a keyword only when a brace follows it directly.
		if raw := p.Scan(); raw.Tok != scanner.LBRACE {
			p.Unscan()
			return nil, newParseError(scanner.IDENT, "Map", []string{"value"}, ti.Pos)
		}
		return p.parseMap()
	case scanner.SET:
		// Same rule as Map.
		if raw := p.Scan(); raw.Tok != scanner.LBRACE {
			p.Unscan()
			return nil, newParseError(scanner.IDENT, "Set", []string{"value"}, ti.Pos)
		}
		return p.parseSet()
	}

	return nil, newParseError(ti.Tok, ti.Lit, []string{"value"}, ti.Pos)
}

// Scan returns the next token from the underlying scanner.
func (p *Parser) Scan() scanner.TokenInfo { return p.s.Scan() }

// ScanIgnoreWhitespace scans the next non-whitespace token.
func (p *Parser) ScanIgnoreWhitespace() scanner.TokenInfo {
	for {
		ti := p.Scan()
		if ti.Tok == scanner.WS {
			continue
		}
		return ti
	}
}

// Unscan pushes the previously read token back onto the buffer.
func (p *Parser) Unscan() {
	p.s.Unscan()
}

// parseToken scans the next non-whitespace token and requires it to be
// tok.
func (p *Parser) parseToken(tok scanner.Token) error {
	if ti := p.ScanIgnoreWhitespace(); ti.Tok != tok {
		if err := lexicalError(ti); err != nil {
			return err
		}
		return newParseError(ti.Tok, ti.Lit, []string{tok.String()}, ti.Pos)
	}
	return nil
}

// peekPos returns the position of the next non-whitespace token without
// consuming it.
func (p *Parser) peekPos() scanner.Pos {
	ti := p.ScanIgnoreWhitespace()
	p.Unscan()
	return ti.Pos
}
