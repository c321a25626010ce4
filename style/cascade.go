package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/wren/css"
	"github.com/npillmayer/wren/dom"
)

// Tree resolves the cascade for a whole document tree, returning the
// root of the resulting styled tree. Children are resolved independently
// of each other and of their parent; the styled tree mirrors the source
// tree's structure node for node.
//
// Tree fails only if an inline "style" attribute fails to parse; the
// error propagates and no partial tree is returned.
func Tree(root *dom.Node, sheet *css.StyleSheet) (*StyledNode, error) {
	sn := newStyledNode(root)
	if root.Type == dom.ElementNode {
		values, err := specifiedValues(root, sheet)
		if err != nil {
			return nil, err
		}
		sn.specifiedValues = values
	} else {
		sn.specifiedValues = PropertyMap{}
	}
	for _, ch := range root.Children {
		styledChild, err := Tree(ch, sheet)
		if err != nil {
			return nil, err
		}
		sn.AddChild(&styledChild.Node)
	}
	return sn, nil
}

// matchedRule pairs a rule with the specificity it matched at.
type matchedRule struct {
	spec css.Specificity
	rule *css.Rule
}

// specifiedValues resolves the property values for a single element:
// matching rules are merged in ascending specificity order (stable, so
// source order breaks ties), then inline styles overwrite the result
// unconditionally.
func specifiedValues(elem *dom.Node, sheet *css.StyleSheet) (PropertyMap, error) {
	values := PropertyMap{}
	matches := matchingRules(elem, sheet)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].spec.Less(matches[j].spec)
	})
	for _, match := range matches {
		for _, d := range match.rule.Declarations {
			values[d.Name] = d.Value
		}
	}
	if inline, ok := elem.Attr("style"); ok {
		declarations, err := css.ParseDeclarationList(inline)
		if err != nil {
			return nil, err
		}
		for _, d := range declarations {
			values[d.Name] = d.Value
		}
	}
	tracer().P("elem", elem.Data).Debugf("resolved %d properties", len(values))
	return values, nil
}

// matchingRules collects every rule of the stylesheet with at least one
// selector matching the element.
func matchingRules(elem *dom.Node, sheet *css.StyleSheet) []matchedRule {
	var matches []matchedRule
	if sheet.Empty() {
		return matches
	}
	for i := range sheet.Rules {
		if match, ok := matchRule(elem, &sheet.Rules[i]); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// matchRule finds the first matching selector of a rule. As the rule's
// selectors are sorted most-specific first, the first hit is the most
// specific one; its specificity represents the rule in the match set.
// A rule is represented at most once.
func matchRule(elem *dom.Node, rule *css.Rule) (matchedRule, bool) {
	for _, sel := range rule.Selectors {
		if Matches(sel, elem) {
			return matchedRule{spec: sel.Specificity(), rule: rule}, true
		}
	}
	return matchedRule{}, false
}

// Matches tests a selector against an element. Dispatch over the
// selector variants is exhaustive; non-element nodes never match.
func Matches(sel css.Selector, elem *dom.Node) bool {
	if elem.Type != dom.ElementNode {
		return false
	}
	switch s := sel.(type) {
	case css.SimpleSelector:
		return matchesSimpleSelector(s, elem)
	}
	return false
}

// matchesSimpleSelector checks all present selector fields against the
// element; absent fields are wildcards. All of the selector's classes
// must be present on the element.
func matchesSimpleSelector(s css.SimpleSelector, elem *dom.Node) bool {
	var tag, id string
	switch m := s.Tag.Match(); m {
	case m.Just(&tag):
		if elem.Data != tag {
			return false
		}
	case m.Nothing():
	}
	switch m := s.ID.Match(); m {
	case m.Just(&id):
		elemID, ok := elem.ID()
		if !ok || elemID != id {
			return false
		}
	case m.Nothing():
	}
	for _, class := range s.Classes {
		if !elem.HasClass(class) {
			return false
		}
	}
	return true
}
