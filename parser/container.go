package parser

import (
	"fmt"

	"github.com/rdnlang/rdn/scanner"
	"github.com/rdnlang/rdn/types"
)

// parseValueList parses comma separated values until the closing token.
// The opening token has already been consumed. Trailing commas are
// rejected because a closing token is not a value.
func (p *Parser) parseValueList(closing scanner.Token) ([]types.Value, error) {
	ti := p.ScanIgnoreWhitespace()
	if ti.Tok == closing {
		return nil, nil
	}
	p.Unscan()

	var values []types.Value
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		ti := p.ScanIgnoreWhitespace()
		switch ti.Tok {
		case scanner.COMMA:
		case closing:
			return values, nil
		default:
			p.Unscan()
			return nil, newParseError(ti.Tok, ti.Lit, []string{",", closing.String()}, ti.Pos)
		}
	}
}

func (p *Parser) parseArray() (types.Value, error) {
	values, err := p.parseValueList(scanner.RBRACKET)
	if err != nil {
		return nil, err
	}
	return types.NewArrayValue(values...), nil
}

// parseTuple parses parenthesized values into an array. The data model
// has no tuple variant.
func (p *Parser) parseTuple() (types.Value, error) {
	values, err := p.parseValueList(scanner.RPAREN)
	if err != nil {
		return nil, err
	}
	return types.NewArrayValue(values...), nil
}

// parseSet parses the elements of a Set{...} literal. The keyword and
// brace have already been consumed.
func (p *Parser) parseSet() (types.Value, error) {
	values, err := p.parseValueList(scanner.RBRACE)
	if err != nil {
		return nil, err
	}
	return types.NewSetValue(values...), nil
}

// parseMap parses the entries of a Map{...} literal. The keyword and
// brace have already been consumed. Keys are full values, not just
// strings.
func (p *Parser) parseMap() (types.Value, error) {
	mv := types.NewMapValue()

	ti := p.ScanIgnoreWhitespace()
	if ti.Tok == scanner.RBRACE {
		return mv, nil
	}
	p.Unscan()

	key, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.parseToken(scanner.ARROW); err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	mv.Add(key, value)

	return p.parseMapPairs(mv)
}

// parseMapPairs parses `key => value` pairs until the closing brace.
// Any pairs parsed by the caller are already in mv.
func (p *Parser) parseMapPairs(mv *types.MapValue) (types.Value, error) {
	for {
		ti := p.ScanIgnoreWhitespace()
		switch ti.Tok {
		case scanner.RBRACE:
			return mv, nil
		case scanner.COMMA:
		default:
			p.Unscan()
			return nil, newParseError(ti.Tok, ti.Lit, []string{",", "}"}, ti.Pos)
		}

		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.parseToken(scanner.ARROW); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		mv.Add(key, value)
	}
}

// parseSetTail parses the remaining elements of a bare-brace set. The
// first element and the comma after it have already been consumed.
func (p *Parser) parseSetTail(sv *types.SetValue) (types.Value, error) {
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		sv.Append(v)

		ti := p.ScanIgnoreWhitespace()
		switch ti.Tok {
		case scanner.COMMA:
		case scanner.RBRACE:
			return sv, nil
		default:
			p.Unscan()
			return nil, newParseError(ti.Tok, ti.Lit, []string{",", "}"}, ti.Pos)
		}
	}
}

// parseBrace parses the container forms a bare brace can open. The brace
// alone does not identify the container: {} is an empty object, a first
// element followed by ':' starts an object, by '=>' a map, and by ',' or
// '}' a set.
func (p *Parser) parseBrace() (types.Value, error) {
	ti := p.ScanIgnoreWhitespace()
	if ti.Tok == scanner.RBRACE {
		return types.NewObjectValue(), nil
	}
	p.Unscan()

	keyPos := p.peekPos()
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	ti = p.ScanIgnoreWhitespace()
	switch ti.Tok {
	case scanner.COLON:
		return p.parseObjectRest(first, keyPos)
	case scanner.ARROW:
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		mv := types.NewMapValue()
		mv.Add(first, value)
		return p.parseMapPairs(mv)
	case scanner.COMMA:
		return p.parseSetTail(types.NewSetValue(first))
	case scanner.RBRACE:
		return types.NewSetValue(first), nil
	}

	p.Unscan()
	return nil, newParseError(ti.Tok, ti.Lit, []string{":", "=>", ",", "}"}, ti.Pos)
}

// parseObjectRest parses an object whose first key and colon have been
// consumed by the brace disambiguation.
func (p *Parser) parseObjectRest(first types.Value, keyPos scanner.Pos) (types.Value, error) {
	key, err := objectKey(first, keyPos)
	if err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	ov := types.NewObjectValue()
	ov.Add(key, value)

	for {
		ti := p.ScanIgnoreWhitespace()
		switch ti.Tok {
		case scanner.RBRACE:
			return ov, nil
		case scanner.COMMA:
		default:
			p.Unscan()
			return nil, newParseError(ti.Tok, ti.Lit, []string{",", "}"}, ti.Pos)
		}

		keyPos := p.peekPos()
		keyVal, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		key, err := objectKey(keyVal, keyPos)
		if err != nil {
			return nil, err
		}
		if err := p.parseToken(scanner.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ov.Add(key, value)
	}
}

// objectKey requires a freshly parsed object key to be a string.
func objectKey(v types.Value, pos scanner.Pos) (string, error) {
	if v.Type() != types.TypeText {
		return "", newParseErrorKind(InvalidObjectKey, fmt.Sprintf("object keys must be strings, found %s", v.Type()), pos)
	}
	return types.AsString(v), nil
}
