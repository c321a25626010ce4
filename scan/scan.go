/*
Package scan provides a character-level cursor over an immutable input
string. It is the shared scanning substrate for the markup parser
(package dom) and the stylesheet parser (package css).

The cursor is deliberately minimal: it peeks, advances, and greedily
consumes runs of characters. Both parsers build their recursive-descent
grammars on top of these few operations. The cursor advances by full
UTF-8 runes, never by raw bytes, so multi-byte characters are treated
as atomic units.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor is a read-cursor over an immutable input string, tracking a byte
// offset. The zero Cursor is a cursor over the empty string; usually
// clients will call New.
//
// Cursors carry mutable position state and are passed by reference through
// recursive-descent parsing routines. They are not safe for concurrent use,
// nor do they need to be: a parse is a synchronous pure function of its
// input.
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor positioned at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset into the input.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd is a predicate for the cursor having exhausted its input.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Peek returns the rune at the current position without advancing.
// The boolean return is false at end-of-input.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// Advance returns the rune at the current position and moves the cursor
// past it, by the rune's full byte width. Advancing at end-of-input is
// flagged as ErrUnexpectedEOF.
func (c *Cursor) Advance() (rune, error) {
	if c.AtEnd() {
		return 0, ErrorAt(c.pos, ErrUnexpectedEOF, "")
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += w
	return r, nil
}

// ConsumeWhile greedily collects characters satisfying a predicate,
// stopping at the first non-matching character or at end-of-input.
// It never fails; the result may be empty.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.pos
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.pos += utf8.RuneLen(r)
	}
	return c.input[start:c.pos]
}

// SkipWhitespace consumes a (possibly empty) run of whitespace characters.
func (c *Cursor) SkipWhitespace() {
	c.ConsumeWhile(unicode.IsSpace)
}

// StartsWith is a predicate for the remaining input beginning with a
// given literal. The cursor does not advance.
func (c *Cursor) StartsWith(literal string) bool {
	return strings.HasPrefix(c.input[c.pos:], literal)
}

// Expect consumes the next character and requires it to equal r.
// A mismatch is flagged as ErrUnexpectedChar, end-of-input as
// ErrUnexpectedEOF.
func (c *Cursor) Expect(r rune) error {
	pos := c.pos
	ch, err := c.Advance()
	if err != nil {
		return err
	}
	if ch != r {
		return ErrorAt(pos, ErrUnexpectedChar, "expected %q, have %q", r, ch)
	}
	return nil
}
