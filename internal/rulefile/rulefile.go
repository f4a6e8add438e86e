/*
Package rulefile reads CSS rules from YAML or JSON files.

A YAML rule file is a list of rules, each with a selector and a mapping of
properties. Mapping order is declaration order:

    - selector: ":host"
      properties:
        display: block
        margin: 0
    - selector: "p"
      properties:
        color: gray

The same in JSON, where properties are a list of key/value objects:

    [ {"selector": ":host", "properties": [
        {"key": "display", "value": "block"},
        {"key": "margin", "value": "0"} ]},
      {"selector": "p", "properties": [ {"key": "color", "value": "gray"} ]} ]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rulefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/npillmayer/shadowcss/css"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for rule files which do not follow the expected format.
var ErrFormat = errors.New("malformed rule file")

// Format is the encoding of a rule file.
type Format int

// Rule file formats.
const (
	YAML Format = iota
	JSON
)

// FormatOf guesses the format of a rule file from its file extension.
// Everything not ending in ".json" is taken to be YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Load reads rules from a file.
func Load(path string) ([]css.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, FormatOf(path))
}

// Read reads rules in the given format.
func Read(r io.Reader, format Format) ([]css.Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch format {
	case JSON:
		return readJSON(data)
	default:
		return readYAML(data)
	}
}

type yamlRule struct {
	Selector   string    `yaml:"selector"`
	Properties yaml.Node `yaml:"properties"`
}

func readYAML(data []byte) ([]css.Rule, error) {
	var yrules []yamlRule
	if err := yaml.Unmarshal(data, &yrules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	rules := make([]css.Rule, 0, len(yrules))
	for i, yr := range yrules {
		if yr.Selector == "" {
			return nil, fmt.Errorf("%w: rule #%d has no selector", ErrFormat, i)
		}
		node := yr.Properties
		if node.Kind == 0 { // no properties given
			rules = append(rules, css.R(yr.Selector))
			continue
		}
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: properties of %q must be a mapping", ErrFormat,
				node.Line, yr.Selector)
		}
		props := make([]css.Property, 0, len(node.Content)/2)
		for j := 0; j+1 < len(node.Content); j += 2 {
			k, v := node.Content[j], node.Content[j+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: value of %q must be a scalar", ErrFormat,
					v.Line, k.Value)
			}
			props = append(props, css.Create(k.Value, v.Value))
		}
		rules = append(rules, css.NewRule(yr.Selector, props))
	}
	return rules, nil
}

type jsonRule struct {
	Selector   string `json:"selector"`
	Properties []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"properties"`
}

func readJSON(data []byte) ([]css.Rule, error) {
	var jrules []jsonRule
	if err := json.Unmarshal(data, &jrules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	rules := make([]css.Rule, 0, len(jrules))
	for i, jr := range jrules {
		if jr.Selector == "" {
			return nil, fmt.Errorf("%w: rule #%d has no selector", ErrFormat, i)
		}
		props := make([]css.Property, 0, len(jr.Properties))
		for _, p := range jr.Properties {
			if p.Key == "" {
				return nil, fmt.Errorf("%w: rule %q has a property without key", ErrFormat, jr.Selector)
			}
			props = append(props, css.Create(p.Key, p.Value))
		}
		rules = append(rules, css.NewRule(jr.Selector, props))
	}
	return rules, nil
}
