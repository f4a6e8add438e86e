/*
Package w3cdom defines interface types for the parts of W3C Document Object Models
stylesheet adoption is concerned with.

See also https://developer.mozilla.org/en-US/docs/Web/API/Document/adoptedStyleSheets

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/shadowcss/dom/style/cssom"
)

// StyleableTarget is anything with an adopted-stylesheet list, i.e. documents
// and shadow roots.
type StyleableTarget interface {
	AdoptedStyleSheets() []cssom.StyleSheet        // get the adopted-stylesheet list
	SetAdoptedStyleSheets(list []cssom.StyleSheet) // replace the adopted-stylesheet list
}

// ShadowHost is an element which may carry a shadow root.
type ShadowHost interface {
	ShadowRoot() (StyleableTarget, bool) // get the shadow root, if attached
}
