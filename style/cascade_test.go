package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wren/css"
	"github.com/npillmayer/wren/dom"
)

func mustParse(t *testing.T, markup, stylesheet string) (*dom.Node, *css.StyleSheet) {
	t.Helper()
	root, err := dom.Parse(markup)
	if err != nil {
		t.Fatalf("markup should parse, doesn't: %v", err)
	}
	sheet, err := css.Parse(stylesheet)
	if err != nil {
		t.Fatalf("stylesheet should parse, doesn't: %v", err)
	}
	return root, sheet
}

func TestCascadeSpecificityWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t,
		`<div class="cls">x</div>`,
		`div {color: red;} .cls {color: blue;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	if v, ok := styled.Style("color"); !ok || v != css.Keyword("blue") {
		t.Errorf("expected higher-specificity blue to win, have %v", v)
	}

	// declaration order in source must not matter
	root, sheet = mustParse(t,
		`<div class="cls">x</div>`,
		`.cls {color: blue;} div {color: red;}`)
	styled, err = Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	if v, _ := styled.Style("color"); v != css.Keyword("blue") {
		t.Errorf("expected blue regardless of source order, have %v", v)
	}
}

func TestCascadeSourceOrderBreaksTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t,
		`<p>x</p>`,
		`p {color: red;} p {color: green;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	if v, _ := styled.Style("color"); v != css.Keyword("green") {
		t.Errorf("expected last rule to win among equal specificities, have %v", v)
	}
}

func TestCascadeInlineStyleWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t,
		`<div id="d" style="color:red;">x</div>`,
		`#d {color: blue;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	if v, _ := styled.Style("color"); v != css.Keyword("red") {
		t.Errorf("expected inline style to win unconditionally, have %v", v)
	}
}

func TestCascadeRuleRepresentedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	// Both selectors match; the rule's specificity is that of the first
	// (most specific) matching selector, and the rule merges once.
	root, sheet := mustParse(t,
		`<div class="cls">x</div>`,
		`div, .cls {margin: 10px;} .cls {margin: 20px;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	// first rule matches at class specificity (0,1,0), tying with the
	// second rule; source order decides
	if v, _ := styled.Style("margin"); v != (css.Length{N: 20, Unit: css.UnitPx}) {
		t.Errorf("expected margin 20px, have %v", v)
	}
}

func TestCascadeStructuralMirroring(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t,
		`<div><p>one</p><p>two</p>and text</div>`,
		`p {color: red;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	var check func(sn *StyledNode)
	check = func(sn *StyledNode) {
		domChildren := sn.DOMNode().Children
		styledChildren := sn.StyledChildren()
		if len(domChildren) != len(styledChildren) {
			t.Fatalf("expected %d styled children, have %d",
				len(domChildren), len(styledChildren))
		}
		for i, ch := range styledChildren {
			if ch.DOMNode() != domChildren[i] {
				t.Errorf("expected styled child %d to mirror dom child, doesn't", i)
			}
			check(ch)
		}
	}
	check(styled)
}

func TestCascadeTextNodesUnstyled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t, `<p>some text</p>`, `p {color: red;}`)
	styled, err := Tree(root, sheet)
	if err != nil {
		t.Fatalf("expected cascade to succeed, have %v", err)
	}
	text := styled.StyledChildren()[0]
	if text.DOMNode().Type != dom.TextNode {
		t.Fatalf("expected a text child, have %v", text.DOMNode())
	}
	if len(text.Styles()) != 0 {
		t.Errorf("expected text node to carry an empty property map, have %v", text.Styles())
	}
}

func TestCascadeSelectorMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	elem := dom.Element("div", map[string]string{"id": "main", "class": "a b"})
	cases := []struct {
		selector string
		match    bool
	}{
		{"div", true},
		{"span", false},
		{"#main", true},
		{"#other", false},
		{".a", true},
		{".a.b", true},
		{".a.c", false},
		{"div#main.a.b", true},
		{"*", true},
	}
	for _, c := range cases {
		sel, err := css.ParseSelector(c.selector)
		if err != nil {
			t.Fatalf("selector %q should parse, doesn't: %v", c.selector, err)
		}
		if Matches(sel, elem) != c.match {
			t.Errorf("expected match(%q) = %v, isn't", c.selector, c.match)
		}
	}
	if Matches(mustSelector(t, "*"), dom.Text("x")) {
		t.Errorf("expected text nodes never to match")
	}
}

func mustSelector(t *testing.T, s string) css.Selector {
	t.Helper()
	sel, err := css.ParseSelector(s)
	if err != nil {
		t.Fatalf("selector %q should parse, doesn't: %v", s, err)
	}
	return sel
}

func TestCascadeInlineStyleErrorPropagates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.style")
	defer teardown()
	//
	root, sheet := mustParse(t, `<div style="width: 10xx;">x</div>`, "")
	_, err := Tree(root, sheet)
	if !errors.Is(err, css.ErrUnrecognizedUnit) {
		t.Errorf("expected inline style parse error to propagate, have %v", err)
	}
}
