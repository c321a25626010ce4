package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/fp/tree"
	"github.com/npillmayer/wren/css"
	"github.com/npillmayer/wren/dom"
)

// PropertyMap is the resolved name→value mapping of properties for one
// element, the cascade's output unit. Keys are unique; merging is
// last-write-wins. Layout reads named properties (e.g. "width", "color")
// from it with its own default-value policy for absent keys — no
// defaulting happens here.
type PropertyMap map[string]css.Value

// StyledNode is a node of the styled tree, the building block of the
// cascade's output. It references its originating document node without
// owning it: the styled tree's lifetime is tied to the source tree, which
// is never cloned.
type StyledNode struct {
	tree.Node[*StyledNode] // we build on top of a general purpose tree
	domNode         *dom.Node
	specifiedValues PropertyMap
}

// newStyledNode creates a styled node linked to a document node.
func newStyledNode(domnode *dom.Node) *StyledNode {
	sn := &StyledNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = domnode
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyledNode]) *StyledNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyledNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the specified property values of a styled node.
// Text nodes always carry an empty map.
func (sn *StyledNode) Styles() PropertyMap {
	return sn.specifiedValues
}

// Style returns the specified value for a single property key, together
// with a flag for its presence.
func (sn *StyledNode) Style(key string) (css.Value, bool) {
	v, ok := sn.specifiedValues[key]
	return v, ok
}

// StyledChildren returns the children of a styled node, in document
// order. The child list mirrors the source node's child list in length
// and order.
func (sn *StyledNode) StyledChildren() []*StyledNode {
	children := sn.Children(false)
	styled := make([]*StyledNode, len(children))
	for i, ch := range children {
		styled[i] = Node(ch)
	}
	return styled
}
