/*
Package css implements a parser for a small CSS-like stylesheet language
and the object model it produces: a stylesheet is a list of rules, a rule
pairs a selector list with a declaration list, and declaration values are
typed (keywords, lengths with units, colors).

The grammar is a strict miniature: simple selectors only (tag, #id,
.class, *), no combinators, no pseudo-classes, no at-rules, no comments.
Parsing is fail-fast; a malformed construct aborts the whole parse with a
positioned error. Stylesheets parsed by richer third-party parsers can be
ingested through package css/douceuradapter instead.

Two entry points exist: Parse for complete stylesheets, and
ParseDeclarationList for bare, brace-less declaration sequences. The
latter is what inline per-element style attributes are made of, and the
cascade (package style) calls it directly on their content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'wren.css'.
func tracer() tracing.Trace {
	return tracing.Select("wren.css")
}
