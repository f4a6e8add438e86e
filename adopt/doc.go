/*
Package adopt assigns stylesheets to the adopted-stylesheet list of a document,
an element, or an element's shadow root.

Overview

Rules are described as typed data (package css), serialized to CSS text,
loaded into constructable stylesheets (package cssom), and finally assigned
to a target. By default the target is the shadow root of the host:

    err := adopt.StyleSheet(factory, host, []css.Rule{
        css.R(":host", css.Create("display", "block")),
    })

StyleSheet merges all rules into a single stylesheet. StyleSheets adopts a
list of existing stylesheets, followed by one stylesheet per extra rule,
which lets clients later identify or replace the stylesheet of an individual
rule:

    snap := factory.FromDocument()
    err := adopt.StyleSheets(factory, host, snap.Sheets(), adopt.WithRules(r1, r2))

Attention: Adoption Overwrites

Both functions replace the target's adopted-stylesheet list. They never
append to it. Styles adopted earlier are gone after the call, unless the
caller includes them in the new list. In particular, adopting an empty set
of rules installs an empty stylesheet and removes all previously adopted
stylesheets of the target. For additive adoption use

    adopt.StyleSheets(factory, host, target.AdoptedStyleSheets(), adopt.WithRules(…))

Adoption is all-or-nothing: if a stylesheet cannot be created or the target
cannot be resolved, the call fails and the target is left untouched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adopt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shadowcss.adopt'.
func tracer() tracing.Trace {
	return tracing.Select("shadowcss.adopt")
}
