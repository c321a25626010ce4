/*
Package wren is the front end of a minimal document-rendering pipeline.
It turns raw markup text into a document tree (package dom), raw
stylesheet text into a list of style rules (package css), and resolves
which declarations apply to which node (package style), producing a
styled tree ready for a layout stage.

This root package ties the stages together for the common case; clients
with more involved needs — ingesting real-world HTML, or stylesheets
parsed by a third-party CSS parser — use the sub-packages directly
(dom.FromHTML, css/douceuradapter).

Loading of source text is out of scope: all entry points accept
already-materialized strings. Parsing and styling are pure synchronous
functions of their inputs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wren

import (
	"github.com/npillmayer/wren/css"
	"github.com/npillmayer/wren/dom"
	"github.com/npillmayer/wren/style"
)

// StyleDocument parses markup and stylesheet text and resolves the
// cascade, returning the root of the styled tree.
//
// Any parse failure aborts the pipeline; there is no partial result.
func StyleDocument(markup string, stylesheet string) (*style.StyledNode, error) {
	root, err := dom.Parse(markup)
	if err != nil {
		return nil, err
	}
	sheet, err := css.Parse(stylesheet)
	if err != nil {
		return nil, err
	}
	return style.Tree(root, sheet)
}
