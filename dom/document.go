package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/adoptcss/dom/style"
	"github.com/npillmayer/adoptcss/dom/style/cssom"
	"github.com/npillmayer/adoptcss/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// ErrShadowHost is returned if a node is not able to host a shadow root.
var ErrShadowHost = errors.New("dom: node cannot host a shadow root")

// scope holds the stylesheets of a document or of a shadow root.
type scope struct {
	root    *html.Node
	sheets  []cssom.StyleSheet // from <style> elements
	adopted []cssom.StyleSheet
}

// StyleSheets returns the stylesheets from embedded <style> elements.
func (s *scope) StyleSheets() []cssom.StyleSheet {
	return s.sheets
}

// AdoptedStyleSheets returns the adopted stylesheets.
//
// Interface cssom.Target
func (s *scope) AdoptedStyleSheets() []cssom.StyleSheet {
	return s.adopted
}

// SetAdoptedStyleSheets replaces the adopted stylesheets.
//
// Interface cssom.Target
func (s *scope) SetAdoptedStyleSheets(sheets []cssom.StyleSheet) {
	tracer().Debugf("%s adopts %d stylesheets, dropping %d", nodeName(s.root), len(sheets), len(s.adopted))
	s.adopted = sheets
}

// ActiveStyleSheets returns the stylesheets in cascade order: embedded
// stylesheets first, followed by adopted ones.
func (s *scope) ActiveStyleSheets() []cssom.StyleSheet {
	active := make([]cssom.StyleSheet, 0, len(s.sheets)+len(s.adopted))
	active = append(active, s.sheets...)
	return append(active, s.adopted...)
}

// --- Document --------------------------------------------------------------

// Document is a style target for an HTML document.
type Document struct {
	scope
	shadows map[*html.Node]*ShadowRoot
}

var _ cssom.Target = &Document{}

// NewDocument creates a document for an HTML parse tree. Stylesheets
// embedded with <style> elements in <head> or <body> are collected.
func NewDocument(root *html.Node) *Document {
	doc := &Document{
		scope:   scope{root: root},
		shadows: make(map[*html.Node]*ShadowRoot),
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(root) {
		doc.sheets = append(doc.sheets, sheet)
	}
	tracer().Debugf("document with %d embedded stylesheets", len(doc.sheets))
	return doc
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	return NewDocument(root), nil
}

// Root returns the root node of the document's parse tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// AttachShadow attaches a new shadow root to host. host has to be an
// element of the document which is not already hosting a shadow root.
// <style> children of host become the stylesheets of the shadow root.
func (d *Document) AttachShadow(host *html.Node) (*ShadowRoot, error) {
	if host == nil || host.Type != html.ElementNode {
		return nil, fmt.Errorf("%w: not an element", ErrShadowHost)
	}
	if !isDescendant(d.root, host) {
		return nil, fmt.Errorf("%w: <%s> is not part of the document", ErrShadowHost, host.Data)
	}
	if _, exists := d.shadows[host]; exists {
		return nil, fmt.Errorf("%w: <%s> already hosts a shadow root", ErrShadowHost, host.Data)
	}
	sr := &ShadowRoot{scope: scope{root: host}, doc: d}
	for _, sheet := range douceuradapter.ExtractScopedStyles(host) {
		sr.sheets = append(sr.sheets, sheet)
	}
	d.shadows[host] = sr
	tracer().Infof("attached shadow root to <%s>", host.Data)
	return sr, nil
}

// ShadowRoot returns the shadow root attached to host, or nil.
func (d *Document) ShadowRoot(host *html.Node) *ShadowRoot {
	return d.shadows[host]
}

// MatchingRules returns the rules of the document's active stylesheets
// which apply to n, in cascade order. Nodes inside a shadow host are
// not styled by the document.
func (d *Document) MatchingRules(n *html.Node) []MatchedRule {
	if !isDescendant(d.root, n) || d.shadowHostOf(n) != nil {
		return nil
	}
	return matchingRules(d.ActiveStyleSheets(), n)
}

// ComputedStyles returns the style properties the document's stylesheets
// set for n.
func (d *Document) ComputedStyles(n *html.Node) *style.PropertyMap {
	return computedStyles(d.MatchingRules(n))
}

// shadowHostOf finds the nearest ancestor of n hosting a shadow root.
func (d *Document) shadowHostOf(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if _, ok := d.shadows[p]; ok {
			return p
		}
	}
	return nil
}

// --- Shadow Root -----------------------------------------------------------

// ShadowRoot is a style target for the subtree below a host element.
type ShadowRoot struct {
	scope
	doc *Document
}

var _ cssom.Target = &ShadowRoot{}

// Host returns the element the shadow root is attached to.
func (sr *ShadowRoot) Host() *html.Node {
	return sr.root
}

// MatchingRules returns the rules of the shadow root's active stylesheets
// which apply to n, in cascade order. Only descendants of the host are
// styled by a shadow root.
func (sr *ShadowRoot) MatchingRules(n *html.Node) []MatchedRule {
	if n == nil || sr.doc.shadowHostOf(n) != sr.root {
		return nil
	}
	return matchingRules(sr.ActiveStyleSheets(), n)
}

// ComputedStyles returns the style properties the shadow root's stylesheets
// set for n.
func (sr *ShadowRoot) ComputedStyles(n *html.Node) *style.PropertyMap {
	return computedStyles(sr.MatchingRules(n))
}

// ---------------------------------------------------------------------------

// isDescendant is true if n is below root (or root itself).
func isDescendant(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

func nodeName(n *html.Node) string {
	switch {
	case n == nil:
		return "<nil>"
	case n.Type == html.DocumentNode:
		return "#document"
	case n.Type == html.ElementNode:
		return "<" + n.Data + ">"
	}
	return "#node"
}
