/*
Package dom provides a minimal host tree for stylesheet adoption: a document,
its elements, and the shadow roots attached to them.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A Document wraps an HTML parse tree (package golang.org/x/net/html). Elements
are located with CSS selectors (package github.com/andybalholm/cascadia) and
may get a shadow root attached, which is an isolated style scope. Documents,
elements and shadow roots each carry an adopted-stylesheet list.

    doc, _ := dom.Parse(strings.NewReader(page))
    host, _ := doc.QuerySelector("my-card")
    root := host.AttachShadow()
    root.SetAdoptedStyleSheets(sheets)

Adopted-stylesheet lists hold references to stylesheets; the same stylesheet
may be adopted by any number of targets. Setting a list replaces the previous
one.

A document and its elements are not safe for concurrent use. As with a
browser's main thread, all mutation is expected to happen from a single
goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shadowcss.dom'
func tracer() tracing.Trace {
	return tracing.Select("shadowcss.dom")
}
