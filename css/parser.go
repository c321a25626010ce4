package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/wren/scan"
)

// ErrUnrecognizedUnit flags a length unit other than "px" or "%".
var ErrUnrecognizedUnit = errors.New("unrecognized unit")

// ErrInvalidHex flags a color hex byte-pair that fails to parse.
var ErrInvalidHex = errors.New("invalid hex pair")

// ErrInvalidNumber flags a length literal that fails to parse as a number.
var ErrInvalidNumber = errors.New("invalid number")

// Parse parses stylesheet text into a StyleSheet.
//
// Parse is a pure function of its input and fails fast: the first
// malformed construct aborts the parse with a positioned error.
func Parse(source string) (*StyleSheet, error) {
	p := &parser{c: scan.New(source)}
	rules, err := p.parseRules()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("stylesheet with %d rules", len(rules))
	return &StyleSheet{Rules: rules}, nil
}

// ParseDeclarationList parses a bare sequence of declarations, e.g.
//
//	color: red; margin: 10px;
//
// with no enclosing braces. This is the entry point for inline
// per-element style attributes, independently callable without any
// selector context. The list ends at end-of-input (or at an unconsumed
// '}', which rule bodies rely on).
func ParseDeclarationList(source string) ([]Declaration, error) {
	p := &parser{c: scan.New(source)}
	return p.parseDeclarations()
}

// ParseSelector parses a single simple selector, e.g. "div#main.note".
// Trailing non-whitespace input is flagged as an error; in particular,
// combinator syntax is rejected.
func ParseSelector(source string) (Selector, error) {
	p := &parser{c: scan.New(source)}
	p.c.SkipWhitespace()
	sel := p.parseSimpleSelector()
	p.c.SkipWhitespace()
	if !p.c.AtEnd() {
		r, _ := p.c.Peek()
		return nil, scan.ErrorAt(p.c.Pos(), scan.ErrUnexpectedChar,
			"%q after simple selector", r)
	}
	return sel, nil
}

// ParseValue parses a single declaration value, e.g. "10px", "#ff0000"
// or "auto". Trailing non-whitespace input is flagged as an error.
func ParseValue(source string) (Value, error) {
	p := &parser{c: scan.New(source)}
	p.c.SkipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.c.SkipWhitespace()
	if !p.c.AtEnd() {
		r, _ := p.c.Peek()
		return nil, scan.ErrorAt(p.c.Pos(), scan.ErrUnexpectedChar,
			"%q after value", r)
	}
	return v, nil
}

// parser is the mutable state of a stylesheet parse: a cursor over the
// input, passed by reference through the recursive-descent routines.
type parser struct {
	c *scan.Cursor
}

func (p *parser) parseRules() ([]Rule, error) {
	var rules []Rule
	for {
		p.c.SkipWhitespace()
		if p.c.AtEnd() {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// parseRule parses `selector-list '{' declaration-list '}'`. The '{' is
// consumed by parseSelectors as the list terminator, the '}' by
// parseDeclarations.
func (p *parser) parseRule() (Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := p.parseDeclarations()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors parses a comma-separated selector list terminated by
// '{', which is consumed. The resulting selectors are sorted descending
// by specificity, most specific first.
func (p *parser) parseSelectors() ([]Selector, error) {
	var selectors []Selector
	for {
		selectors = append(selectors, p.parseSimpleSelector())
		p.c.SkipWhitespace()
		pos := p.c.Pos()
		r, err := p.c.Advance()
		if err != nil {
			return nil, err // EOF in the middle of a selector list
		}
		if r == ',' {
			p.c.SkipWhitespace()
			continue
		}
		if r == '{' {
			break
		}
		return nil, scan.ErrorAt(pos, scan.ErrUnexpectedChar, "%q in selector list", r)
	}
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[j].Specificity().Less(selectors[i].Specificity())
	})
	return selectors, nil
}

// parseSimpleSelector parses an optional tag name and any mixture of
// '#id', '.class' and '*' fragments. It cannot fail; an empty fragment
// sequence yields the universal selector.
func (p *parser) parseSimpleSelector() SimpleSelector {
	sel := NewSimpleSelector()
	for {
		r, ok := p.c.Peek()
		if !ok {
			break
		}
		switch {
		case r == '#':
			p.c.Advance()
			sel.ID = maybe.Just(p.parseIdentifier())
		case r == '.':
			p.c.Advance()
			sel.Classes = append(sel.Classes, p.parseIdentifier())
		case r == '*':
			// universal: matches everything, sets no condition
			p.c.Advance()
		case isIdentifierChar(r):
			sel.Tag = maybe.Just(p.parseIdentifier())
		default:
			return sel
		}
	}
	return sel
}

// parseDeclarations parses a sequence of declarations up to a closing
// '}' (consumed) or end-of-input. Keeping end-of-input as a regular
// terminator is what makes the routine reusable for brace-less inline
// style strings.
func (p *parser) parseDeclarations() ([]Declaration, error) {
	var declarations []Declaration
	for {
		p.c.SkipWhitespace()
		r, ok := p.c.Peek()
		if !ok {
			break
		}
		if r == '}' {
			p.c.Advance()
			break
		}
		d, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	return declarations, nil
}

// parseDeclaration parses `identifier ':' value ';'`.
func (p *parser) parseDeclaration() (Declaration, error) {
	pos := p.c.Pos()
	name := p.parseIdentifier()
	if name == "" {
		r, _ := p.c.Peek()
		return Declaration{}, scan.ErrorAt(pos, scan.ErrUnexpectedChar,
			"%q where a declaration was expected", r)
	}
	p.c.SkipWhitespace()
	if err := p.c.Expect(':'); err != nil {
		return Declaration{}, err
	}
	p.c.SkipWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return Declaration{}, err
	}
	if err := p.c.Expect(';'); err != nil {
		return Declaration{}, err
	}
	tracer().P("property", name).Debugf("declaration %s: %v", name, value)
	return Declaration{Name: name, Value: value}, nil
}

// parseValue dispatches on the first character: digits start a length,
// '#' a color, anything else is collected as a keyword.
func (p *parser) parseValue() (Value, error) {
	r, ok := p.c.Peek()
	if !ok {
		return nil, scan.ErrorAt(p.c.Pos(), scan.ErrUnexpectedEOF, "expected a value")
	}
	switch {
	case r >= '0' && r <= '9':
		return p.parseLength()
	case r == '#':
		return p.parseColor()
	}
	return Keyword(p.parseIdentifier()), nil
}

func (p *parser) parseLength() (Value, error) {
	pos := p.c.Pos()
	literal := p.c.ConsumeWhile(func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.'
	})
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, scan.ErrorAt(pos, ErrInvalidNumber, "%q", literal)
	}
	unit, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	return Length{N: n, Unit: unit}, nil
}

func (p *parser) parseUnit() (Unit, error) {
	pos := p.c.Pos()
	switch strings.ToLower(p.parseIdentifier()) {
	case "px":
		return UnitPx, nil
	case "%":
		return UnitPercent, nil
	default:
		return 0, scan.ErrorAt(pos, ErrUnrecognizedUnit, "")
	}
}

// parseColor parses '#' followed by exactly three hex byte-pairs.
// The alpha channel is fixed at 255; a fourth pair is not supported.
func (p *parser) parseColor() (Value, error) {
	if err := p.c.Expect('#'); err != nil {
		return nil, err
	}
	var rgb [3]uint8
	for i := range rgb {
		b, err := p.parseHexPair()
		if err != nil {
			return nil, err
		}
		rgb[i] = b
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func (p *parser) parseHexPair() (uint8, error) {
	pos := p.c.Pos()
	var pair strings.Builder
	for i := 0; i < 2; i++ {
		r, err := p.c.Advance()
		if err != nil {
			return 0, err
		}
		pair.WriteRune(r)
	}
	b, err := strconv.ParseUint(pair.String(), 16, 8)
	if err != nil {
		return 0, scan.ErrorAt(pos, ErrInvalidHex, "%q", pair.String())
	}
	return uint8(b), nil
}

func (p *parser) parseIdentifier() string {
	return p.c.ConsumeWhile(isIdentifierChar)
}

// isIdentifierChar is the identifier alphabet [A-Za-z0-9_%-].
func isIdentifierChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '%':
		return true
	}
	return false
}
