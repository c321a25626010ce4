/*
Package douceuradapter ingests stylesheets parsed by the third-party
douceur CSS parser into the native rule model of package css.

The native parser (css.Parse) covers only the miniature grammar of this
module. Real-world stylesheets — embedded in <style> elements of
arbitrary HTML, say — are better left to a full CSS parser; douceur
handles the heavy lifting, and this adapter distills its output down to
the native model: selector preludes are re-parsed with the native simple
selector grammar, declaration values with the native value grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceuradapter

import (
	"sort"
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/wren/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Wrap converts a douceur stylesheet into a native css.StyleSheet.
//
// At-rules are skipped, as are rules whose selectors use syntax outside
// the native simple-selector grammar (combinators, pseudo-classes).
// Declaration values that the native value grammar cannot make sense of
// are kept verbatim as keywords rather than dropped, so that layout may
// still see them. Selector lists come out sorted most-specific first,
// exactly as the native parser produces them.
func Wrap(sheet *dcss.Stylesheet) *css.StyleSheet {
	out := &css.StyleSheet{}
	for _, r := range sheet.Rules {
		if r.Kind != dcss.QualifiedRule {
			continue
		}
		if rule, ok := convertRule(r); ok {
			out.Rules = append(out.Rules, rule)
		}
	}
	return out
}

// ParseAndWrap runs douceur over stylesheet text and wraps the result.
func ParseAndWrap(source string) (*css.StyleSheet, error) {
	parsed, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Wrap(parsed), nil
}

func convertRule(r *dcss.Rule) (css.Rule, bool) {
	rule := css.Rule{}
	for _, selstr := range r.Selectors {
		sel, err := css.ParseSelector(strings.TrimSpace(selstr))
		if err != nil {
			// selector outside the simple-selector grammar; skip the rule
			return css.Rule{}, false
		}
		rule.Selectors = append(rule.Selectors, sel)
	}
	if len(rule.Selectors) == 0 {
		return css.Rule{}, false
	}
	sortSelectors(rule.Selectors)
	for _, d := range r.Declarations {
		value, err := css.ParseValue(d.Value)
		if err != nil {
			value = css.Keyword(d.Value)
		}
		rule.Declarations = append(rule.Declarations, css.Declaration{
			Name:  d.Property,
			Value: value,
		})
	}
	return rule, true
}

// sortSelectors orders a selector list most-specific first, matching the
// invariant the native parser establishes for rule selector lists.
func sortSelectors(selectors []css.Selector) {
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[j].Specificity().Less(selectors[i].Specificity())
	})
}

// ExtractStyleElements visits <head> and <body> elements in an HTML
// parse tree and searches for embedded <style>s. It returns the content
// of style-elements as native stylesheets.
func ExtractStyleElements(htmldoc *html.Node) ([]*css.StyleSheet, error) {
	var sheets []*css.StyleSheet
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		section := findElement(a, htmldoc)
		if section == nil {
			continue
		}
		extracted, err := extractStyles(section)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, extracted...)
	}
	return sheets, nil
}

func extractStyles(h *html.Node) ([]*css.StyleSheet, error) {
	var sheets []*css.StyleSheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := ParseAndWrap(ch.FirstChild.Data)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
