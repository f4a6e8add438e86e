package css

import (
	"strings"
)

// Rule is a CSS rule block: a selector and an ordered list of properties.
//
// The order of properties is significant and is preserved into the
// serialized text. Conflicting declarations resolve to the last one, as
// usual with CSS, so re-ordering would change the computed style.
type Rule struct {
	selector   string
	properties []Property
}

// NewRule creates a rule for a selector. The selector is not validated.
// The properties are copied; later changes to the caller's slice do not
// affect the rule.
func NewRule(selector string, properties []Property) Rule {
	props := make([]Property, len(properties))
	copy(props, properties)
	return Rule{selector: selector, properties: props}
}

// R is shorthand for NewRule, taking properties as variadic arguments:
//
//     r := css.R(".a", css.Create("color", "red"), css.Create("margin", "0"))
//
func R(selector string, properties ...Property) Rule {
	return NewRule(selector, properties)
}

// Selector returns the selector (prelude) of the rule.
func (r Rule) Selector() string {
	return r.selector
}

// Properties returns a copy of the rule's properties, in declaration order.
func (r Rule) Properties() []Property {
	props := make([]Property, len(r.properties))
	copy(props, r.properties)
	return props
}

// Len returns the number of properties of the rule.
func (r Rule) Len() int {
	return len(r.properties)
}

// AsString serializes a rule to a CSS rule block,
// "selector { key: value;key: value; }".
// Declarations are concatenated without separators beyond their own
// trailing semicolon.
func (r Rule) AsString() string {
	var b strings.Builder
	b.WriteString(r.selector)
	b.WriteString(" { ")
	for _, p := range r.properties {
		b.WriteString(p.AsString())
	}
	b.WriteString(" }")
	return b.String()
}

func (r Rule) String() string {
	return r.AsString()
}

// Serialize folds a sequence of rules into CSS text, one rule per line,
// in sequence order. An empty sequence results in the empty string.
//
// The result contains no trailing newline:
//
//     Serialize(r1, r2) == r1.AsString() + "\n" + r2.AsString()
//
func Serialize(rules ...Rule) string {
	if len(rules) == 0 {
		return ""
	}
	lines := make([]string, len(rules))
	for i, r := range rules {
		lines[i] = r.AsString()
	}
	tracer().Debugf("serialized %d CSS rules", len(rules))
	return strings.Join(lines, "\n")
}
