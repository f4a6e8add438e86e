package adopt_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shadowcss/adopt"
	"github.com/npillmayer/shadowcss/css"
	"github.com/npillmayer/shadowcss/dom"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<html><head><style>body { margin: 0; }</style></head>
<body><my-card></my-card><p>plain</p></body></html>`

func setup(t *testing.T) (*cssom.Factory, *dom.Document) {
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return cssom.NewFactory(douceuradapter.NewPlatform(doc.HTML())), doc
}

func rulesOf(t *testing.T, sheet cssom.StyleSheet) []string {
	rules, err := sheet.CSSRules()
	require.NoError(t, err)
	return rules
}

func TestAdoptIntoOwnList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	rules := []css.Rule{css.R(".a", css.Create("color", "red"))}
	err := adopt.StyleSheet(f, host, rules, adopt.InShadow(false))
	require.NoError(t, err)
	adopted := host.AdoptedStyleSheets()
	require.Len(t, adopted, 1)
	assert.Equal(t, []string{".a { color: red; }"}, rulesOf(t, adopted[0]))
}

func TestAdoptMergesRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	root := host.AttachShadow()
	r1 := css.R(":host", css.Create("display", "block"))
	r2 := css.R("p", css.Create("color", "gray"))
	require.NoError(t, adopt.StyleSheet(f, host, []css.Rule{r1, r2}))
	adopted := root.AdoptedStyleSheets()
	require.Len(t, adopted, 1)
	assert.Equal(t, []string{r1.AsString(), r2.AsString()}, rulesOf(t, adopted[0]))
	assert.Empty(t, host.AdoptedStyleSheets())
}

func TestAdoptEmptyRulesOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	root := host.AttachShadow()
	r := css.R(".a", css.Create("color", "red"))
	require.NoError(t, adopt.StyleSheets(f, host, nil, adopt.WithRules(r, r)))
	require.Len(t, root.AdoptedStyleSheets(), 2)
	require.NoError(t, adopt.StyleSheet(f, host, nil))
	adopted := root.AdoptedStyleSheets()
	require.Len(t, adopted, 1)
	assert.Empty(t, rulesOf(t, adopted[0]))
}

func TestAdoptStyleSheetsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	root := host.AttachShadow()
	sheetA, err := f.FromString(".a { color: red; }")
	require.NoError(t, err)
	sheetB, err := f.FromString(".b { color: blue; }")
	require.NoError(t, err)
	ruleX := css.R(".x", css.Create("margin", "0"))
	ruleY := css.R(".y", css.Create("padding", "0"), css.Create("border", "none"))
	err = adopt.StyleSheets(f, host, []cssom.StyleSheet{sheetA, sheetB}, adopt.WithRules(ruleX, ruleY))
	require.NoError(t, err)
	adopted := root.AdoptedStyleSheets()
	require.Len(t, adopted, 4)
	assert.Same(t, sheetA, adopted[0])
	assert.Same(t, sheetB, adopted[1])
	assert.Equal(t, []string{ruleX.AsString()}, rulesOf(t, adopted[2]))
	assert.Equal(t, []string{ruleY.AsString()}, rulesOf(t, adopted[3]))
}

func TestAdoptWithoutShadowRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("p")
	before, err := f.FromString(".keep { color: black; }")
	require.NoError(t, err)
	host.SetAdoptedStyleSheets([]cssom.StyleSheet{before})
	rule := css.R(".a", css.Create("color", "red"))
	err = adopt.StyleSheet(f, host, []css.Rule{rule})
	assert.ErrorIs(t, err, adopt.ErrNoShadowScope)
	err = adopt.StyleSheets(f, host, nil, adopt.WithRules(rule))
	assert.ErrorIs(t, err, adopt.ErrNoShadowScope)
	adopted := host.AdoptedStyleSheets()
	require.Len(t, adopted, 1)
	assert.Same(t, before, adopted[0])
	// documents never have a shadow root
	err = adopt.StyleSheet(f, doc, []css.Rule{rule})
	assert.ErrorIs(t, err, adopt.ErrNoShadowScope)
}

func TestAdoptFailureLeavesTargetUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	root := host.AttachShadow()
	good := css.R(".a", css.Create("color", "red"))
	require.NoError(t, adopt.StyleSheet(f, host, []css.Rule{good}))
	previous := root.AdoptedStyleSheets()
	bad := css.R(".b {", css.Create("color", "red"))
	err := adopt.StyleSheets(f, host, nil, adopt.WithRules(good, bad))
	assert.ErrorIs(t, err, cssom.ErrStylesheetParse)
	err = adopt.StyleSheet(f, host, []css.Rule{good, bad})
	assert.ErrorIs(t, err, cssom.ErrStylesheetParse)
	assert.Equal(t, previous, root.AdoptedStyleSheets())
}

func TestAdoptDocumentSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	host, _ := doc.QuerySelector("my-card")
	root := host.AttachShadow()
	snap := f.FromDocument()
	extra := css.R(":host", css.Create("display", "block"))
	require.NoError(t, adopt.StyleSheets(f, host, snap.Sheets(), adopt.WithRules(extra)))
	adopted := root.AdoptedStyleSheets()
	require.Len(t, adopted, 2)
	assert.Equal(t, []string{"body { margin: 0; }"}, rulesOf(t, adopted[0]))
	// additive adoption, including what has been adopted before
	more := css.R("p", css.Create("color", "gray"))
	require.NoError(t, adopt.StyleSheets(f, host, root.AdoptedStyleSheets(), adopt.WithRules(more)))
	assert.Len(t, root.AdoptedStyleSheets(), 3)
	// the document itself is a target as well
	require.NoError(t, adopt.StyleSheets(f, doc, snap.Sheets(), adopt.InShadow(false)))
	assert.Len(t, doc.AdoptedStyleSheets(), 1)
}

func TestAdoptNilHost(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.adopt")
	defer teardown()
	//
	f, doc := setup(t)
	p, _ := doc.QuerySelector("p")
	text := doc.Element(p.HTMLNode().FirstChild) // text node => nil element
	require.Nil(t, text)
	rule := css.R(".a", css.Create("color", "red"))
	assert.ErrorIs(t, adopt.StyleSheet(f, text, []css.Rule{rule}), adopt.ErrNilHost)
	assert.ErrorIs(t, adopt.StyleSheets(f, text, nil, adopt.InShadow(false)), adopt.ErrNilHost)
	assert.ErrorIs(t, adopt.StyleSheet(f, nil, []css.Rule{rule}), adopt.ErrNilHost)
}
