package rulefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shadowcss/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlRules = `
- selector: ":host"
  properties:
    display: block
    margin: 0
    color: "#333"
- selector: "p"
  properties:
    color: gray
- selector: ".empty"
`

func TestReadYAMLKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.rulefile")
	defer teardown()
	//
	rules, err := Read(strings.NewReader(yamlRules), YAML)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, ":host { display: block;margin: 0;color: #333; }", rules[0].AsString())
	assert.Equal(t, "p { color: gray; }", rules[1].AsString())
	assert.Equal(t, 0, rules[2].Len())
}

func TestReadYAMLMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.rulefile")
	defer teardown()
	//
	for _, text := range []string{
		"- selector: p\n  properties: [a, b]\n",
		"- properties:\n    color: red\n",
		"- selector: p\n  properties:\n    margin:\n      top: 0\n",
		"selector: p",
	} {
		_, err := Read(strings.NewReader(text), YAML)
		assert.ErrorIs(t, err, ErrFormat, "input: %q", text)
	}
}

func TestReadJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.rulefile")
	defer teardown()
	//
	text := `[{"selector": ".a", "properties": [
		{"key": "margin", "value": "0"}, {"key": "color", "value": "red"}]}]`
	rules, err := Read(strings.NewReader(text), JSON)
	require.NoError(t, err)
	assert.Equal(t, []css.Rule{css.R(".a", css.Create("margin", "0"), css.Create("color", "red"))}, rules)
	_, err = Read(strings.NewReader(`{"selector": ".a"}`), JSON)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadByExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowcss.rulefile")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"selector": "h1", "properties": []}]`), 0o644))
	rules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "h1", rules[0].Selector())
	assert.Equal(t, YAML, FormatOf("rules.yml"))
}
