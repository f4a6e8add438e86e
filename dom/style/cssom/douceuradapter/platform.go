package douceuradapter

import (
	"io/fs"
	"net/url"
	"strings"

	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Platform implements cssom.Platform on top of an HTML parse tree.
type Platform struct {
	props
	doc *html.Node
}

type props struct {
	origin string // scheme://host of the document
	files  fs.FS  // same-origin linked stylesheets are loaded from here
}

// NewPlatform creates a platform for an HTML document. doc may be nil,
// resulting in a document without stylesheets.
func NewPlatform(doc *html.Node, opts ...Option) *Platform {
	p := &Platform{doc: doc}
	for _, option := range opts {
		p.props = option.config(p.props)
	}
	return p
}

// Option is a type to help initializing platforms at creation time.
type Option struct {
	config func(props) props
}

// Origin sets the origin of the document, e.g. "https://example.com".
// Linked stylesheets with an absolute URL of a different origin deny
// access to their rules.
//
// Without an origin, every absolute URL is treated as cross-origin.
func Origin(origin string) Option {
	conf := func(p props) props {
		p.origin = strings.TrimSuffix(origin, "/")
		return p
	}
	return Option{config: conf}
}

// Files sets the file system same-origin linked stylesheets are read from.
// Link paths are interpreted relative to the root of fsys.
//
// Without a file system, linked stylesheets deny access to their rules.
func Files(fsys fs.FS) Option {
	conf := func(p props) props {
		p.files = fsys
		return p
	}
	return Option{config: conf}
}

// CreateStyleSheet creates an empty constructable stylesheet.
//
// Interface cssom.Platform
func (p *Platform) CreateStyleSheet() cssom.StyleSheet {
	return NewStyleSheet()
}

// DocumentStyleSheets returns a stylesheet for every <style> and
// <link rel="stylesheet"> element of the document, in document order.
// Content of <template> elements is not considered.
//
// Interface cssom.Platform
func (p *Platform) DocumentStyleSheets() []cssom.StyleSheet {
	styles := ExtractStyleElements(p.doc, p.load)
	sheets := make([]cssom.StyleSheet, len(styles))
	for i, s := range styles {
		sheets[i] = s
	}
	return sheets
}

var _ cssom.Platform = &Platform{}

// load reads the content of a linked stylesheet.
func (p *Platform) load(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", &cssom.AccessError{Href: href, Reason: err.Error()}
	}
	if u.IsAbs() && u.Scheme+"://"+u.Host != p.origin {
		return "", &cssom.AccessError{Href: href, Reason: "cross-origin"}
	}
	if p.files == nil {
		return "", &cssom.AccessError{Href: href, Reason: "no file system to load from"}
	}
	content, err := fs.ReadFile(p.files, strings.TrimPrefix(u.Path, "/"))
	if err != nil {
		return "", &cssom.AccessError{Href: href, Reason: err.Error()}
	}
	return string(content), nil
}

// ExtractStyleElements visits all elements of an HTML parse tree and searches
// for embedded <style>s and linked stylesheets. It returns them as style
// sheets, in document order. Linked stylesheets are loaded with load.
//
// Stylesheets which cannot be loaded or parsed are returned as well, but will
// return an error from CSSRules.
func ExtractStyleElements(htmldoc *html.Node, load func(href string) (string, error)) []*CSSStyles {
	var css []*CSSStyles
	walk(htmldoc, func(n *html.Node) {
		switch n.DataAtom {
		case atom.Style:
			css = append(css, styleSheetFrom(textContent(n), ""))
		case atom.Link:
			if !isStylesheetLink(n) {
				return
			}
			href := attr(n, "href")
			text, err := load(href)
			if err != nil {
				tracer().Debugf("linked stylesheet %s denies access: %v", href, err)
				css = append(css, &CSSStyles{href: href, denied: err})
				return
			}
			css = append(css, styleSheetFrom(text, href))
		}
	})
	return css
}

func styleSheetFrom(text, href string) *CSSStyles {
	sheet := NewStyleSheet()
	sheet.href = href
	if err := sheet.ReplaceSync(text); err != nil {
		sheet.denied = err
	}
	return sheet
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		if n.DataAtom == atom.Template {
			return
		}
		visit(n)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch, visit)
	}
}

func isStylesheetLink(n *html.Node) bool {
	for _, rel := range strings.Fields(attr(n, "rel")) {
		if strings.EqualFold(rel, "stylesheet") {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}
