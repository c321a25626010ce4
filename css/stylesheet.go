package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// StyleSheet is an ordered sequence of rules. It is built once by the
// parser and immutable thereafter.
type StyleSheet struct {
	Rules []Rule
}

// AppendRules appends the rules of another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// Empty is a predicate for a stylesheet containing no rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// Rule pairs a list of selectors with a list of declarations. The parser
// sorts Selectors most-specific first; match lookup (package style)
// relies on that order to find a rule's most specific matching selector
// by taking the first hit.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// --- Selectors -------------------------------------------------------------

// Selector is a match condition for elements of a document tree. It is a
// closed sum type: today the single variant is SimpleSelector. Match
// logic dispatches over the variants exhaustively (see package style), so
// future variants (combinators, pseudo-classes) extend the switch rather
// than an open subtype hierarchy.
type Selector interface {
	Specificity() Specificity
	String() string
	selector() // seals the sum
}

// SimpleSelector selects elements by an optional tag name, an optional id
// and a set of class names. Every present field is a separate match
// condition; all of them must hold. Absent fields are wildcards.
type SimpleSelector struct {
	Tag     maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string
}

// NewSimpleSelector creates a simple selector with all fields absent,
// i.e. a universal selector.
func NewSimpleSelector() SimpleSelector {
	return SimpleSelector{
		Tag: maybe.Nothing[string](),
		ID:  maybe.Nothing[string](),
	}
}

// Specificity returns the (id, class, tag) specificity of the selector.
func (s SimpleSelector) Specificity() Specificity {
	var spec Specificity
	var id, tag string
	switch m := s.ID.Match(); m {
	case m.Just(&id):
		spec[0] = 1
	case m.Nothing():
	}
	spec[1] = len(s.Classes)
	switch m := s.Tag.Match(); m {
	case m.Just(&tag):
		spec[2] = 1
	case m.Nothing():
	}
	return spec
}

func (s SimpleSelector) String() string {
	var b strings.Builder
	var tag, id string
	switch m := s.Tag.Match(); m {
	case m.Just(&tag):
		b.WriteString(tag)
	case m.Nothing():
	}
	switch m := s.ID.Match(); m {
	case m.Just(&id):
		b.WriteString("#")
		b.WriteString(id)
	case m.Nothing():
	}
	for _, c := range s.Classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

func (s SimpleSelector) selector() {}

var _ Selector = SimpleSelector{}

// Specificity scores a selector for the cascade: index 0 counts id
// conditions, index 1 class conditions, index 2 tag conditions.
// Specificities are ordered lexicographically; a higher score wins. This
// is the cascade's sole tie-break besides source order.
type Specificity [3]int

// Less is a strict lexicographic comparison of specificities.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// --- Declarations and values -----------------------------------------------

// Declaration sets a named property to a value, as in "width: 10px".
type Declaration struct {
	Name  string
	Value Value
}

// Value is the typed value of a declaration, a closed sum type with
// variants Keyword, Length and Color.
type Value interface {
	String() string
	value() // seals the sum
}

// Keyword is a bare identifier value, e.g. "auto" or "powderblue".
type Keyword string

func (k Keyword) String() string {
	return string(k)
}

func (k Keyword) value() {}

// Unit is a length unit.
type Unit int8

const (
	UnitPx Unit = iota
	UnitPercent
)

func (u Unit) String() string {
	if u == UnitPercent {
		return "%"
	}
	return "px"
}

// Length is a numeric value with a unit, e.g. "10px" or "50%".
type Length struct {
	N    float64
	Unit Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(l.N, 'f', -1, 64) + l.Unit.String()
}

func (l Length) value() {}

// Color is an RGBA color value. Colors parsed from "#rrggbb" notation
// carry an alpha of 255.
type Color color.RGBA

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) value() {}

// RGBA makes Color usable wherever the standard library expects a
// color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

var (
	_ Value       = Keyword("")
	_ Value       = Length{}
	_ Value       = Color{}
	_ color.Color = Color{}
)
