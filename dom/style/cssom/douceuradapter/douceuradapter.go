/*
Package douceuradapter is a concrete implementation of interfaces cssom.StyleSheet
and cssom.Platform.

CSS text is checked and split into rules with the scanner of package
github.com/gorilla/css, then parsed with github.com/aymerick/douceur.
Rule text is kept verbatim, i.e. re-reading the rules of a stylesheet
reproduces the text of each rule exactly as it was loaded.

Document stylesheets are taken from an HTML parse tree: every <style> element
and every <link rel="stylesheet"> element contributes one stylesheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
)

// tracer traces with key 'shadowcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("shadowcss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css    *css.Stylesheet
	rules  []string // verbatim text of each rule
	href   string   // for linked stylesheets
	denied error    // non-nil if rules may not be read
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet() *CSSStyles {
	return &CSSStyles{css: css.NewStylesheet()}
}

// ReplaceSync replaces the content of the stylesheet with the rules of
// cssText. If cssText is malformed, the stylesheet is left unchanged and an
// error of type *cssom.ParseError is returned.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) ReplaceSync(cssText string) error {
	rules, err := splitRules(cssText)
	if err != nil {
		return err
	}
	parsed, err := parser.Parse(cssText)
	if err != nil {
		return &cssom.ParseError{Msg: err.Error()}
	}
	sheet.css = parsed
	sheet.rules = rules
	tracer().Debugf("stylesheet loaded with %d rules", len(rules))
	return nil
}

// CSSRules returns the text of every rule of the stylesheet, in order.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) CSSRules() ([]string, error) {
	if sheet.denied != nil {
		return nil, sheet.denied
	}
	rules := make([]string, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules, nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// Href returns the location a linked stylesheet has been loaded from. It is
// empty for all other stylesheets.
func (sheet *CSSStyles) Href() string {
	return sheet.href
}

// Rules returns all the parsed rules of a stylesheet.
func (sheet *CSSStyles) Rules() []Rule {
	if sheet.css == nil {
		return nil
	}
	rules := make([]Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is a read-only view of a parsed douceur rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// IsAtRule returns true for at-rules, e.g. @media.
func (r Rule) IsAtRule() bool {
	return r.Kind == css.AtRule
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) string {
	value := ""
	for _, d := range r.Declarations {
		if d.Property == key {
			value = d.Value
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}
