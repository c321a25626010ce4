package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wren/scan"
)

func TestParseSingleRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	root, err := Parse("<html><body>Hello, world!</body></html>")
	if err != nil {
		t.Fatalf("expected parse to succeed, have %v", err)
	}
	if root.Type != ElementNode || root.Data != "html" {
		t.Fatalf("expected root element <html>, have %v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child of root, have %d", len(root.Children))
	}
	body := root.Children[0]
	if body.Data != "body" || len(body.Children) != 1 {
		t.Fatalf("expected <body> with one child, have %v", body)
	}
	text := body.Children[0]
	if text.Type != TextNode || text.Data != "Hello, world!" {
		t.Errorf("expected text node \"Hello, world!\", have %v", text)
	}
}

func TestParseUnwrapsSingleTopLevelElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	root, err := Parse("<div></div>")
	if err != nil {
		t.Fatalf("expected parse to succeed, have %v", err)
	}
	if root.Data != "div" {
		t.Errorf("expected single top-level element to be returned unwrapped, have <%s>", root.Data)
	}
}

func TestParseSynthesizesRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	root, err := Parse("<p>one</p><p>two</p>")
	if err != nil {
		t.Fatalf("expected parse to succeed, have %v", err)
	}
	if root.Data != "html" {
		t.Fatalf("expected synthetic <html> root, have <%s>", root.Data)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children under synthetic root, have %d", len(root.Children))
	}
	if root.Children[0].Children[0].Data != "one" || root.Children[1].Children[0].Data != "two" {
		t.Errorf("expected children in source order, have %v", root.Children)
	}

	empty, err := Parse("   ")
	if err != nil {
		t.Fatalf("expected empty parse to succeed, have %v", err)
	}
	if empty.Data != "html" || len(empty.Children) != 0 {
		t.Errorf("expected empty synthetic root for empty input, have %v", empty)
	}
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	root, err := Parse(`<a x="1" y='2'>t</a>`)
	if err != nil {
		t.Fatalf("expected parse to succeed, have %v", err)
	}
	if v, _ := root.Attr("x"); v != "1" {
		t.Errorf("expected x=\"1\", have %q", v)
	}
	if v, _ := root.Attr("y"); v != "2" {
		t.Errorf("expected y=\"2\", have %q", v)
	}
	if len(root.Children) != 1 || root.Children[0].Data != "t" {
		t.Errorf("expected one text child \"t\", have %v", root.Children)
	}
}

func TestParseDuplicateAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	root, err := Parse(`<a x="1" x="2"></a>`)
	if err != nil {
		t.Fatalf("expected parse to succeed, have %v", err)
	}
	if v, _ := root.Attr("x"); v != "2" {
		t.Errorf("expected last duplicate attribute to win, have x=%q", v)
	}
}

func TestParseMismatchedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	_, err := Parse("<a>text</b>")
	if !errors.Is(err, ErrMismatchedTag) {
		t.Errorf("expected ErrMismatchedTag, have %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.dom")
	defer teardown()
	//
	if _, err := Parse("<a>text"); !errors.Is(err, scan.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for unclosed element, have %v", err)
	}
	if _, err := Parse(`<a x=1></a>`); !errors.Is(err, scan.ErrUnexpectedChar) {
		t.Errorf("expected ErrUnexpectedChar for unquoted attribute, have %v", err)
	}
	if _, err := Parse(`<a x="1></a>`); !errors.Is(err, scan.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for unterminated attribute value, have %v", err)
	}
}

func TestNodeHelpers(t *testing.T) {
	n := Element("div", map[string]string{"id": "main", "class": "note warn"})
	if id, ok := n.ID(); !ok || id != "main" {
		t.Errorf("expected id \"main\", have %q", id)
	}
	classes := n.Classes()
	if len(classes) != 2 || classes[0] != "note" || classes[1] != "warn" {
		t.Errorf("expected classes [note warn], have %v", classes)
	}
	if !n.HasClass("warn") || n.HasClass("error") {
		t.Errorf("expected HasClass to match \"warn\" only")
	}
	if Text("x").NodeName() != "#text" {
		t.Errorf("expected node name #text for text nodes")
	}
}
