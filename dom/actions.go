package dom

import (
	"golang.org/x/net/html"
)

// ShadowHosts returns all elements of the document with a shadow root
// attached, in document order.
func (doc *Document) ShadowHosts() []*Element {
	var hosts []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if e, ok := doc.elements[n]; ok && e.shadow != nil {
			hosts = append(hosts, e)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if doc.root != nil {
		walk(doc.root)
	}
	return hosts
}
