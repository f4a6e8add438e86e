package cssom

import (
	"errors"
	"fmt"
)

// ErrStylesheetParse is flagged if the platform rejects CSS text while
// loading it into a stylesheet.
var ErrStylesheetParse = errors.New("cannot parse stylesheet")

// ErrStylesheetAccess is flagged if the rules of a stylesheet may not be read,
// e.g. for stylesheets loaded from a different origin.
var ErrStylesheetAccess = errors.New("cannot access stylesheet rules")

// ParseError describes where a platform rejected CSS text.
// Line and Column are 1-based; they are 0 if the platform cannot tell.
//
// ParseError matches ErrStylesheetParse with errors.Is.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %d:%d: %s", ErrStylesheetParse, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrStylesheetParse, e.Msg)
}

// Is lets errors.Is(err, ErrStylesheetParse) succeed.
func (e *ParseError) Is(target error) bool {
	return target == ErrStylesheetParse
}

// AccessError is returned by StyleSheet.CSSRules for stylesheets which deny
// access to their rules.
//
// AccessError matches ErrStylesheetAccess with errors.Is.
type AccessError struct {
	Href   string
	Reason string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrStylesheetAccess, e.Href, e.Reason)
}

// Is lets errors.Is(err, ErrStylesheetAccess) succeed.
func (e *AccessError) Is(target error) bool {
	return target == ErrStylesheetAccess
}
