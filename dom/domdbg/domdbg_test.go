package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shadowcss/dom"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/style/cssom/douceuradapter"
)

func TestTreeOfAdoptedSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<body><my-card id="c1"></my-card><p></p></body>`))
	if err != nil {
		t.Fatal(err)
	}
	f := cssom.NewFactory(douceuradapter.NewPlatform(doc.HTML()))
	sheet, err := f.FromString(".a { color: red; }\n.b {\n  color: blue;\n}")
	if err != nil {
		t.Fatal(err)
	}
	card, _ := doc.QuerySelector("my-card")
	card.AttachShadow().SetAdoptedStyleSheets([]cssom.StyleSheet{sheet})
	Log(doc, t)
	out := String(doc)
	for _, expected := range []string{
		"document",
		`<my-card id="c1">`,
		"#shadow-root",
		"sheet[0] (2 rules)",
		".a { color: red; }",
		".b { color: blue; }",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected tree to contain %q, doesn't:\n%s", expected, out)
		}
	}
	if strings.Contains(out, "<p>") {
		t.Errorf("expected elements without stylesheets to be left out:\n%s", out)
	}
}
