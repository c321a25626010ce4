package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/wren/scan"
)

// ErrMismatchedTag flags a closing tag whose name differs from the name of
// the element it is supposed to close.
var ErrMismatchedTag = errors.New("mismatched closing tag")

// Parse parses markup text into a document tree and returns its root node.
//
// If the document contains exactly one top-level node, that node is
// returned as the root. Otherwise (zero or two-and-more top-level nodes)
// an implicit "html" element is synthesized, wrapping the top-level nodes
// in source order, so that Parse always returns a single root.
//
// Parse is a pure function of its input. Malformed input is not
// recovered from; the first offending construct aborts the parse with an
// error identifying its position.
func Parse(source string) (*Node, error) {
	p := &parser{c: scan.New(source)}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	tracer().Debugf("markup: %d top-level nodes, synthesizing root element", len(nodes))
	return Element("html", nil, nodes...), nil
}

// parser is the mutable state of a markup parse: a cursor over the input.
// It is passed by reference through the recursive-descent routines.
type parser struct {
	c *scan.Cursor
}

// parseNodes parses a sequence of sibling nodes, skipping whitespace
// in between, until end-of-input or a closing-tag lookahead.
func (p *parser) parseNodes() ([]*Node, error) {
	var nodes []*Node
	for {
		p.c.SkipWhitespace()
		if p.c.AtEnd() || p.c.StartsWith("</") {
			break
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (p *parser) parseNode() (*Node, error) {
	if r, _ := p.c.Peek(); r == '<' {
		return p.parseElement()
	}
	return p.parseText(), nil
}

// parseText collects a run of characters up to the next tag opener.
func (p *parser) parseText() *Node {
	return Text(p.c.ConsumeWhile(func(r rune) bool {
		return r != '<'
	}))
}

// parseElement parses '<name attr="val" …>' children '</name>'.
// The closing tag name must equal the opening tag name exactly.
func (p *parser) parseElement() (*Node, error) {
	if err := p.c.Expect('<'); err != nil {
		return nil, err
	}
	pos := p.c.Pos()
	name := p.parseTagName()
	if name == "" {
		return nil, scan.ErrorAt(pos, scan.ErrUnexpectedChar, "expected a tag name")
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.c.Expect('>'); err != nil {
		return nil, err
	}
	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if err := p.c.Expect('<'); err != nil {
		return nil, err
	}
	if err := p.c.Expect('/'); err != nil {
		return nil, err
	}
	pos = p.c.Pos()
	closing := p.parseTagName()
	if closing != name {
		return nil, scan.ErrorAt(pos, ErrMismatchedTag, "<%s> closed by </%s>", name, closing)
	}
	if err := p.c.Expect('>'); err != nil {
		return nil, err
	}
	return Element(name, attrs, children...), nil
}

func (p *parser) parseTagName() string {
	return p.c.ConsumeWhile(func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		}
		return false
	})
}

// parseAttributes accumulates 'name="value"' pairs up to the closing '>'
// of the opening tag. On duplicate attribute names the last occurrence
// wins.
func (p *parser) parseAttributes() (map[string]string, error) {
	attrs := map[string]string{}
	for {
		p.c.SkipWhitespace()
		r, ok := p.c.Peek()
		if !ok {
			return nil, scan.ErrorAt(p.c.Pos(), scan.ErrUnexpectedEOF, "inside opening tag")
		}
		if r == '>' {
			break
		}
		name, value, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs[name] = value
	}
	return attrs, nil
}

func (p *parser) parseAttribute() (string, string, error) {
	name := p.parseTagName()
	if err := p.c.Expect('='); err != nil {
		return "", "", err
	}
	value, err := p.parseAttrValue()
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

// parseAttrValue parses a quoted attribute value. The closing quote has to
// match the opening quote; both single and double quotes are accepted.
func (p *parser) parseAttrValue() (string, error) {
	pos := p.c.Pos()
	quote, err := p.c.Advance()
	if err != nil {
		return "", err
	}
	if quote != '"' && quote != '\'' {
		return "", scan.ErrorAt(pos, scan.ErrUnexpectedChar, "expected a quoted attribute value")
	}
	value := p.c.ConsumeWhile(func(r rune) bool {
		return r != quote
	})
	if err := p.c.Expect(quote); err != nil {
		return "", err // unterminated value
	}
	return value, nil
}
