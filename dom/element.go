package dom

import (
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/w3cdom"
	"golang.org/x/net/html"
)

// Element is an element of a document. Besides its own adopted-stylesheet
// list it may carry a shadow root.
type Element struct {
	doc     *Document
	node    *html.Node
	adopted []cssom.StyleSheet
	shadow  *ShadowRoot
}

// HTMLNode gets the HTML node of this element.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// TagName returns the element's tag, e.g. "div".
func (e *Element) TagName() string {
	return e.node.Data
}

// AdoptedStyleSheets returns the element's own adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (e *Element) AdoptedStyleSheets() []cssom.StyleSheet {
	return clone(e.adopted)
}

// SetAdoptedStyleSheets replaces the element's own adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (e *Element) SetAdoptedStyleSheets(list []cssom.StyleSheet) {
	tracer().Debugf("<%s> adopts %d stylesheets", e.TagName(), len(list))
	e.adopted = clone(list)
}

// AttachShadow attaches a shadow root to the element. If a shadow root is
// already attached, it is returned.
func (e *Element) AttachShadow() *ShadowRoot {
	if e.shadow == nil {
		tracer().Debugf("attaching shadow root to <%s>", e.TagName())
		e.shadow = &ShadowRoot{host: e}
	}
	return e.shadow
}

// ShadowRoot returns the element's shadow root, if one is attached.
//
// Interface w3cdom.ShadowHost
func (e *Element) ShadowRoot() (w3cdom.StyleableTarget, bool) {
	if e.shadow == nil {
		return nil, false
	}
	return e.shadow, true
}

var _ w3cdom.StyleableTarget = &Element{}
var _ w3cdom.ShadowHost = &Element{}

// ShadowRoot is the isolated style scope of an element.
type ShadowRoot struct {
	host    *Element
	adopted []cssom.StyleSheet
}

// Host returns the element the shadow root is attached to.
func (sr *ShadowRoot) Host() *Element {
	return sr.host
}

// AdoptedStyleSheets returns the shadow root's adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (sr *ShadowRoot) AdoptedStyleSheets() []cssom.StyleSheet {
	return clone(sr.adopted)
}

// SetAdoptedStyleSheets replaces the shadow root's adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (sr *ShadowRoot) SetAdoptedStyleSheets(list []cssom.StyleSheet) {
	tracer().Debugf("shadow root of <%s> adopts %d stylesheets", sr.host.TagName(), len(list))
	sr.adopted = clone(list)
}

var _ w3cdom.StyleableTarget = &ShadowRoot{}
