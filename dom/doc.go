/*
Package dom implements a minimal document object model and a parser for a
tiny markup language, a strict subset of HTML. A document is a tree of
nodes, where a node is either an element (with a tag name, attributes and
children) or a run of text.

The parser is a hand-written recursive-descent parser over a scan.Cursor.
It is intentionally strict: there is no error recovery, and constructs
like comments, CDATA sections or character escapes are not part of the
grammar. Real-world, error-tolerant HTML may be ingested through
FromHTML, which converts a parse tree of golang.org/x/net/html into a
dom.Node tree.

Trees produced by this package are immutable by convention: the parser
is their only producer, and downstream stages (styling, layout) borrow
them read-only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'wren.dom'.
func tracer() tracing.Trace {
	return tracing.Select("wren.dom")
}
