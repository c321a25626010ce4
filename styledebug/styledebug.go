/*
Package styledebug implements helpers to debug document trees and styled
trees: it renders them as indented ASCII trees, suitable for test logs
and terminal output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledebug

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/wren/dom"
	"github.com/npillmayer/wren/style"
	tp "github.com/xlab/treeprint"
)

// DomToString renders a document tree as an indented ASCII tree.
func DomToString(root *dom.Node) string {
	printer := tp.New()
	printDomNode(printer, root)
	return printer.String()
}

func printDomNode(printer tp.Tree, n *dom.Node) {
	if n == nil {
		return
	}
	if n.Type == dom.TextNode {
		printer.AddNode(fmt.Sprintf("%q", n.Data))
		return
	}
	branch := printer.AddBranch(elemLabel(n))
	for _, ch := range n.Children {
		printDomNode(branch, ch)
	}
}

// TreeToString renders a styled tree as an indented ASCII tree, each
// element annotated with its resolved property values.
func TreeToString(root *style.StyledNode) string {
	printer := tp.New()
	printStyledNode(printer, root)
	return printer.String()
}

func printStyledNode(printer tp.Tree, sn *style.StyledNode) {
	if sn == nil {
		return
	}
	n := sn.DOMNode()
	if n.Type == dom.TextNode {
		printer.AddNode(fmt.Sprintf("%q", n.Data))
		return
	}
	label := elemLabel(n)
	if props := propsLabel(sn.Styles()); props != "" {
		label += "  " + props
	}
	branch := printer.AddBranch(label)
	for _, ch := range sn.StyledChildren() {
		printStyledNode(branch, ch)
	}
}

func elemLabel(n *dom.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Data)
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic output
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.Attributes[k])
	}
	b.WriteString(">")
	return b.String()
}

func propsLabel(props style.PropertyMap) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%s: %v", k, props[k]))
	}
	return "{ " + strings.Join(entries, "; ") + " }"
}
