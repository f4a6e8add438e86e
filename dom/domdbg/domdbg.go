/*
Package domdbg implements helpers to debug stylesheet adoption in a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/shadowcss/dom"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Tree builds a printable tree of the adopted stylesheets of a document.
// It shows the document, every element with adopted stylesheets or a
// shadow root, and the stylesheets adopted by each of them, down to the
// text of the individual rules.
//
// Example output:
//
//     document
//     └── <my-card id="first">
//         └── #shadow-root
//             └── sheet[0] (1 rule)
//                 └── .a { color: red; }
//
func Tree(doc *dom.Document) treeprint.Tree {
	root := treeprint.New()
	root.SetValue("document")
	addSheets(root, doc.AdoptedStyleSheets())
	elements, _ := doc.QuerySelectorAll("*")
	for _, e := range elements {
		shadow, hasShadow := e.ShadowRoot()
		own := e.AdoptedStyleSheets()
		if !hasShadow && len(own) == 0 {
			continue
		}
		branch := root.AddBranch(elementLabel(e.HTMLNode()))
		addSheets(branch, own)
		if hasShadow {
			addSheets(branch.AddBranch("#shadow-root"), shadow.AdoptedStyleSheets())
		}
	}
	return root
}

// String returns the tree of adopted stylesheets of a document as text.
func String(doc *dom.Document) string {
	return Tree(doc).String()
}

// Log is a helper for testing. It logs the tree of adopted stylesheets of
// a document.
func Log(doc *dom.Document, t testing.TB) {
	t.Helper()
	t.Logf("adopted stylesheets:\n%s", String(doc))
}

func addSheets(branch treeprint.Tree, sheets []cssom.StyleSheet) {
	for i, sheet := range sheets {
		rules, err := sheet.CSSRules()
		if err != nil {
			branch.AddNode(fmt.Sprintf("sheet[%d] (%v)", i, err))
			continue
		}
		s := branch.AddBranch(fmt.Sprintf("sheet[%d] (%s)", i, plural(len(rules), "rule")))
		for _, r := range rules {
			s.AddNode(oneLine(r))
		}
	}
}

func elementLabel(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		if a.Key == "id" || a.Key == "class" {
			fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
		}
	}
	b.WriteString(">")
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
