/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It uses the CSS parser of github.com/aymerick/douceur to compile CSS source
text into stylesheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/adoptcss/dom/style"
	"github.com/npillmayer/adoptcss/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'adoptcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("adoptcss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// New creates an empty stylesheet.
func New() *CSSStyles {
	return &CSSStyles{}
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Replace parses CSS source text and replaces the rules of the stylesheet.
// If the text does not parse, Replace returns a *cssom.CompilationError and
// the stylesheet keeps its current rules.
func (sheet *CSSStyles) Replace(text string) error {
	parsed, err := parser.Parse(text)
	if err != nil {
		return &cssom.CompilationError{Index: -1, Source: text, Err: err}
	}
	sheet.css = *parsed
	tracer().Debugf("stylesheet replaced with %d rules", len(sheet.css.Rules))
	return nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return sheet == nil || len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil || other.Empty() {
		return
	}
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, ruleFrom(r))
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

func (sheet *CSSStyles) String() string {
	if sheet == nil {
		return ""
	}
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// --- Compiler --------------------------------------------------------------

// Compiler compiles CSS source text into stylesheets of type *CSSStyles.
type Compiler struct{}

// Compile creates a new stylesheet from CSS source text.
//
// Interface cssom.Compiler
func (Compiler) Compile(text string) (cssom.StyleSheet, error) {
	sheet := New()
	if err := sheet.Replace(text); err != nil {
		return nil, err
	}
	return sheet, nil
}

var _ cssom.Compiler = Compiler{}

// --- Rules -----------------------------------------------------------------

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top". Keys declared more than once are listed once.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if !seen[d.Property] {
			seen[d.Property] = true
			props = append(props, d.Property)
		}
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last important declaration wins,
// otherwise the last one.
func (r Rule) Value(key string) style.Property {
	if d := r.declaration(key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	d := r.declaration(key)
	return d != nil && d.Important
}

// declaration finds the effective declaration for key.
func (r Rule) declaration(key string) *css.Declaration {
	var last *css.Declaration
	for _, d := range r.Declarations {
		if d.Property != key {
			continue
		}
		if d.Important || last == nil || !last.Important {
			last = d
		}
	}
	return last
}

// IsQualified is false for at-rules.
func (r Rule) IsQualified() bool {
	return r.Kind == css.QualifiedRule
}

var _ cssom.Rule = &Rule{}

// ruleFrom converts a foreign rule into a douceur rule.
func ruleFrom(r cssom.Rule) *css.Rule {
	if dr, ok := r.(Rule); ok {
		cp := css.Rule(dr)
		return &cp
	}
	rule := css.NewRule(css.QualifiedRule)
	if !r.IsQualified() {
		rule.Kind = css.AtRule
	}
	rule.Prelude = r.Selector()
	for _, key := range r.Properties() {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property:  key,
			Value:     r.Value(key).String(),
			Important: r.IsImportant(key),
		})
	}
	return rule
}

// --- Embedded styles -------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := ExtractScopedStyles(head)
	css = append(css, ExtractScopedStyles(body)...)
	return css
}

// ExtractScopedStyles returns the content of <style> children of an element
// as style sheets. Style elements with malformed content are skipped.
func ExtractScopedStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		sheet := New()
		if ch.FirstChild != nil {
			if err := sheet.Replace(ch.FirstChild.Data); err != nil {
				tracer().Errorf("skipping embedded <style>: %v", err)
				continue
			}
		}
		css = append(css, sheet)
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
