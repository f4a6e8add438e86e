package cssom

import "strings"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple adoption of stylesheets from a concrete CSS engine
// we introduce an interface for stylesheet objects. Clients will have to
// provide a concrete implementation of this interface by way of a Platform
// (e.g., see package douceuradapter).
//
// A StyleSheet value is a handle: adopted-stylesheet lists hold references,
// never copies.
//
// See interface Platform.
type StyleSheet interface {
	ReplaceSync(cssText string) error // replace the sheet's content, fails for malformed text
	CSSRules() ([]string, error)      // text of every rule, in order; may deny access
}

// Platform is the native capability layer stylesheets are created from.
type Platform interface {
	CreateStyleSheet() StyleSheet      // create an empty constructable stylesheet
	DocumentStyleSheets() []StyleSheet // all stylesheets attached to the document, in document order
}

// Text re-reads the complete rule text of a stylesheet, i.e. the
// concatenation of the cssText of each of its rules in order.
//
// Rules are joined without separator. Platforms usually drop whitespace
// between rules, thus Text does not reproduce the newlines of css.Serialize;
// compare rule by rule (CSSRules) for a verbatim round trip.
func Text(sheet StyleSheet) (string, error) {
	rules, err := sheet.CSSRules()
	if err != nil {
		return "", err
	}
	return strings.Join(rules, ""), nil
}
