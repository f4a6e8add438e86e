/*
Package css describes CSS rules as typed data and serializes them to CSS source text.

Overview

A Property is a single declaration, e.g.

    color: red;

and a Rule groups an ordered list of properties under a selector:

    .warning { color: red;font-weight: bold; }

Properties and rules are immutable values. Serialization is a pure function:
the same sequence of rules will always result in byte-identical CSS text, with
declaration order preserved exactly as given. No escaping or validation is
performed; keys, values and selectors are treated as opaque strings.

This package does not parse CSS. Going from text to stylesheet objects is the
business of package cssom and its platform adapters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shadowcss.css'.
func tracer() tracing.Trace {
	return tracing.Select("shadowcss.css")
}
