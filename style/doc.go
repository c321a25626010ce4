/*
Package style resolves the CSS cascade: given a document tree (package
dom) and a stylesheet (package css), it builds a styled tree. Each styled
node borrows a reference to its originating document node and carries the
specified property values the cascade resolved for it.

Resolution per element works in three steps: collect every rule with at
least one matching selector, sort the matches by ascending specificity,
and merge their declarations name-by-name so that later (more specific)
rules overwrite earlier ones. An inline "style" attribute, if present, is
overlaid last and wins unconditionally.

The styled tree is built on top of the general purpose tree type of
github.com/npillmayer/fp/tree, with each node's Payload referencing the
styled node itself. Downstream stages (layout) traverse it read-only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'wren.style'.
func tracer() tracing.Trace {
	return tracing.Select("wren.style")
}
