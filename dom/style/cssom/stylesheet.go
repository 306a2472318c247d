package cssom

import "github.com/npillmayer/adoptcss/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// A StyleSheet is the handle which gets adopted by a document or a shadow
// root. Handles are compared by identity; clients will never see the
// concrete type (e.g., see package douceuradapter).
//
// Once constructed and installed, a stylesheet is treated as immutable by
// this module.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	IsQualified() bool           // false for at-rules like @media
}

// Target is an object holding an ordered list of adopted stylesheets, i.e.
// a document or a shadow root. The list is owned by the target; setting it
// replaces the previous list as a whole.
type Target interface {
	AdoptedStyleSheets() []StyleSheet
	SetAdoptedStyleSheets([]StyleSheet)
}
