package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// FromHTML converts a parse tree of golang.org/x/net/html into a document
// tree of this package. This is the ingestion path for real-world HTML:
// the error-tolerant x/net parser handles the mess, we keep the
// distilled element/text structure.
//
// Comments, doctypes and whitespace-only text nodes are dropped. For a
// DocumentNode the conversion descends to the document's root element.
// FromHTML returns nil if n converts to nothing at all.
func FromHTML(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return Text(n.Data)
	case html.ElementNode:
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		elem := Element(n.Data, attrs)
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if converted := FromHTML(ch); converted != nil {
				elem.Children = append(elem.Children, converted)
			}
		}
		return elem
	case html.DocumentNode:
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return FromHTML(ch)
			}
		}
	}
	return nil
}
