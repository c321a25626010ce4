package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// NodeType discriminates the kinds of document nodes.
type NodeType int8

const (
	// TextNode is a node holding a run of text.
	TextNode NodeType = iota
	// ElementNode is a node for a markup element, possibly with
	// attributes and children.
	ElementNode
)

// Node is a node of the document tree. A node is either a text node or an
// element node; Type discriminates between the two. Data holds the text
// content for text nodes and the tag name for element nodes.
//
// A node owns its children exclusively: document trees share no nodes and
// contain no cycles.
type Node struct {
	Type       NodeType
	Data       string
	Attributes map[string]string
	Children   []*Node
}

// Text creates a text node.
func Text(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Element creates an element node with a given tag name, attributes and
// children. attrs may be nil.
func Element(name string, attrs map[string]string, children ...*Node) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Node{
		Type:       ElementNode,
		Data:       name,
		Attributes: attrs,
		Children:   children,
	}
}

// NodeName returns the tag name for element nodes and "#text" for
// text nodes.
func (n *Node) NodeName() string {
	if n.Type == TextNode {
		return "#text"
	}
	return n.Data
}

// Attr returns the value of an attribute, together with a flag for its
// presence. Text nodes have no attributes.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attributes[key]
	return v, ok
}

// ID returns the value of the "id" attribute, if present.
func (n *Node) ID() (string, bool) {
	return n.Attr("id")
}

// Classes returns the whitespace-separated entries of the "class"
// attribute, or nil if the attribute is absent.
func (n *Node) Classes() []string {
	cls, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(cls)
}

// HasClass is a predicate for a node carrying a given class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	if n.Type == TextNode {
		return fmt.Sprintf("(#text %q)", n.Data)
	}
	return fmt.Sprintf("(<%s> #ch=%d)", n.Data, len(n.Children))
}
