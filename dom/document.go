package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/w3cdom"
	"golang.org/x/net/html"
)

// ErrNoMatch is returned if a selector does not match any element.
var ErrNoMatch = errors.New("no element matches selector")

// Document is the root of a host tree.
type Document struct {
	root     *html.Node
	adopted  []cssom.StyleSheet
	elements map[*html.Node]*Element
}

// NewDocument creates a document for an HTML parse tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// HTML returns the HTML parse tree of the document.
func (doc *Document) HTML() *html.Node {
	return doc.root
}

// AdoptedStyleSheets returns the document's adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (doc *Document) AdoptedStyleSheets() []cssom.StyleSheet {
	return clone(doc.adopted)
}

// SetAdoptedStyleSheets replaces the document's adopted-stylesheet list.
//
// Interface w3cdom.StyleableTarget
func (doc *Document) SetAdoptedStyleSheets(list []cssom.StyleSheet) {
	tracer().Debugf("document adopts %d stylesheets", len(list))
	doc.adopted = clone(list)
}

var _ w3cdom.StyleableTarget = &Document{}

// Element returns the element for an HTML element node. Calling Element
// repeatedly for the same node returns the same element.
func (doc *Document) Element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if e, ok := doc.elements[n]; ok {
		return e
	}
	e := &Element{doc: doc, node: n}
	doc.elements[n] = e
	return e
}

// QuerySelector returns the first element in document order matching a
// selector. It returns ErrNoMatch if no element matches.
func (doc *Document) QuerySelector(selector string) (*Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	n := cascadia.Query(doc.root, sel)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, selector)
	}
	return doc.Element(n), nil
}

// QuerySelectorAll returns all elements matching a selector, in document order.
func (doc *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := cascadia.QueryAll(doc.root, sel)
	elements := make([]*Element, len(nodes))
	for i, n := range nodes {
		elements[i] = doc.Element(n)
	}
	return elements, nil
}

func clone(list []cssom.StyleSheet) []cssom.StyleSheet {
	if list == nil {
		return nil
	}
	c := make([]cssom.StyleSheet, len(list))
	copy(c, list)
	return c
}
