package douceuradapter

import (
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/shadowcss/dom/style/cssom"
)

// splitRules scans CSS text and splits it into the verbatim text of its
// top-level rules. Whitespace, comments and HTML comment delimiters
// between rules are dropped. A rule ends with its closing brace or, for
// statement at-rules like @import, with a semicolon. A semicolon at top
// level is accepted for at-rules only; empty statements and selectors
// containing semicolons are rejected.
//
// Malformed input results in a *cssom.ParseError, positioned at the
// offending token.
func splitRules(text string) ([]string, error) {
	var rules []string
	var b strings.Builder
	depth := 0
	var start *scanner.Token
	s := scanner.New(text)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenError:
			return nil, parseError(tok, tok.Value)
		case scanner.TokenEOF:
			if depth > 0 {
				return nil, parseError(start, "unclosed block")
			}
			if b.Len() > 0 {
				return nil, parseError(start, "incomplete rule")
			}
			return rules, nil
		}
		if b.Len() == 0 && depth == 0 && isFiller(tok) {
			continue
		}
		if b.Len() == 0 {
			start = tok
			if depth == 0 && tok.Type == scanner.TokenChar && tok.Value == "{" {
				return nil, parseError(tok, "block without prelude")
			}
		}
		b.WriteString(tok.Value)
		if tok.Type != scanner.TokenChar {
			continue
		}
		switch tok.Value {
		case "{":
			depth++
		case "}":
			depth--
			if depth < 0 {
				return nil, parseError(tok, "unexpected '}'")
			}
			if depth == 0 {
				rules = append(rules, strings.TrimSpace(b.String()))
				b.Reset()
			}
		case ";":
			if depth == 0 && start.Type != scanner.TokenAtKeyword {
				return nil, parseError(tok, "unexpected ';'")
			}
			if depth == 0 {
				rules = append(rules, strings.TrimSpace(b.String()))
				b.Reset()
			}
		}
	}
}

func isFiller(tok *scanner.Token) bool {
	switch tok.Type {
	case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC:
		return true
	}
	return false
}

func parseError(tok *scanner.Token, msg string) *cssom.ParseError {
	if tok == nil {
		return &cssom.ParseError{Msg: msg}
	}
	return &cssom.ParseError{Line: tok.Line, Column: tok.Column, Msg: msg}
}
