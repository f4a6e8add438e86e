package adopt

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/npillmayer/shadowcss/css"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
	"github.com/npillmayer/shadowcss/dom/w3cdom"
)

// ErrNoShadowScope is returned if stylesheets are to be adopted into the
// shadow root of a host which has none.
var ErrNoShadowScope = errors.New("host has no shadow root")

// ErrNilHost is returned if the host is nil, including typed nil pointers.
var ErrNilHost = errors.New("cannot adopt stylesheets for nil host")

// props configures a single adoption call.
type props struct {
	inShadow   bool
	extraRules []css.Rule
}

func defaults() props {
	return props{inShadow: true}
}

// Option is a type to configure an adoption call.
type Option struct {
	config func(props) props
}

// InShadow selects the adoption target. With true (the default) stylesheets
// are adopted into the host's shadow root; with false into the host's own
// adopted-stylesheet list.
func InShadow(inShadow bool) Option {
	conf := func(p props) props {
		p.inShadow = inShadow
		return p
	}
	return Option{config: conf}
}

// WithRules adds extra rules to StyleSheets. Each rule results in a
// stylesheet of its own, appended to the list of stylesheets in rule order.
// StyleSheet ignores this option.
func WithRules(rules ...css.Rule) Option {
	conf := func(p props) props {
		p.extraRules = append(p.extraRules, rules...)
		return p
	}
	return Option{config: conf}
}

func configure(opts []Option) props {
	p := defaults()
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}

// StyleSheet serializes rules into a single stylesheet and sets the target's
// adopted-stylesheet list to exactly this stylesheet, replacing any list
// adopted before. An empty set of rules results in an empty stylesheet.
//
// The target is the shadow root of host, unless option InShadow(false) is
// given. If host has no shadow root, ErrNoShadowScope is returned.
// Errors from creating the stylesheet match cssom.ErrStylesheetParse.
// On error, nothing is changed.
func StyleSheet(f *cssom.Factory, host w3cdom.StyleableTarget, rules []css.Rule, opts ...Option) error {
	p := configure(opts)
	target, err := resolve(host, p.inShadow)
	if err != nil {
		return err
	}
	sheet, err := f.FromString(css.Serialize(rules...))
	if err != nil {
		return err
	}
	tracer().Debugf("adopting 1 stylesheet with %d rules (shadow=%v)", len(rules), p.inShadow)
	target.SetAdoptedStyleSheets([]cssom.StyleSheet{sheet})
	return nil
}

// StyleSheets sets the target's adopted-stylesheet list to sheets, followed by
// one new stylesheet for every extra rule given with option WithRules. Order
// of sheets and of extra rules is preserved. Any list adopted before is
// replaced.
//
// The target is resolved as with StyleSheet. On error, nothing is changed.
func StyleSheets(f *cssom.Factory, host w3cdom.StyleableTarget, sheets []cssom.StyleSheet, opts ...Option) error {
	p := configure(opts)
	target, err := resolve(host, p.inShadow)
	if err != nil {
		return err
	}
	list := make([]cssom.StyleSheet, 0, len(sheets)+len(p.extraRules))
	list = append(list, sheets...)
	for i, rule := range p.extraRules {
		sheet, err := f.FromString(css.Serialize(rule))
		if err != nil {
			return fmt.Errorf("extra rule #%d (%s): %w", i, rule.Selector(), err)
		}
		list = append(list, sheet)
	}
	tracer().Debugf("adopting %d stylesheets, %d from extra rules (shadow=%v)",
		len(list), len(p.extraRules), p.inShadow)
	target.SetAdoptedStyleSheets(list)
	return nil
}

// resolve finds the adoption target: either host itself or its shadow root.
func resolve(host w3cdom.StyleableTarget, inShadow bool) (w3cdom.StyleableTarget, error) {
	if isNil(host) {
		return nil, ErrNilHost
	}
	if !inShadow {
		return host, nil
	}
	sh, ok := host.(w3cdom.ShadowHost)
	if !ok {
		return nil, ErrNoShadowScope
	}
	root, ok := sh.ShadowRoot()
	if !ok || isNil(root) {
		return nil, ErrNoShadowScope
	}
	return root, nil
}

// isNil catches nil interfaces as well as interfaces holding a nil pointer,
// e.g. a *dom.Element returned for a non-element node.
func isNil(target w3cdom.StyleableTarget) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
