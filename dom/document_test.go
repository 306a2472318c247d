package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/adoptcss"
	"github.com/npillmayer/adoptcss/dom/style"
	"github.com/npillmayer/adoptcss/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var myhtml = `
<!DOCTYPE html>
<html>
<head>
  <style>p { color: red; margin: 1px } .lead { color: green }</style>
</head>
<body>
  <h1>My First Heading</h1>
  <p id="first" class="lead">My <b>first</b> paragraph.</p>
  <div id="widget"><style>p { color: purple }</style><p id="inner">Inside</p></div>
</body>
</html>
`

func TestDocumentEmbeddedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoptcss.dom")
	defer teardown()
	//
	doc := parse(t)
	require.Len(t, doc.StyleSheets(), 1)
	assert.Empty(t, doc.AdoptedStyleSheets())
	assert.Len(t, doc.ActiveStyleSheets(), 1)
}

func TestDocumentAdoptedComeLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoptcss.dom")
	defer teardown()
	//
	doc := parse(t)
	b, err := adoptcss.New(doc, ".lead { color: blue }")
	require.NoError(t, err)
	require.Len(t, b.AdoptedStyleSheets(), 1)
	active := doc.ActiveStyleSheets()
	require.Len(t, active, 2)
	assert.Same(t, b.AdoptedStyleSheets()[0], active[1])
	//
	p := byID(doc.Root(), "first")
	styles := doc.ComputedStyles(p)
	color, _ := styles.Property("color")
	assert.Equal(t, style.Property("blue"), color)
	margin, _ := styles.Property("margin-left")
	assert.Equal(t, style.Property("1px"), margin)
	//
	require.NoError(t, b.SetAdoptedStyleSheets())
	color, _ = doc.ComputedStyles(p).Property("color")
	assert.Equal(t, style.Property("green"), color)
}

func TestDocumentFailedAdoptionKeepsStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoptcss.dom")
	defer teardown()
	//
	doc := parse(t)
	b, err := adoptcss.New(doc, "h1 { color: orange }")
	require.NoError(t, err)
	err = b.SetAdoptedStyleSheets("h1 { color: black }", "}")
	var cerr *cssom.CompilationError
	require.True(t, errors.As(err, &cerr))
	h1 := firstElement(doc.Root(), atom.H1)
	color, _ := doc.ComputedStyles(h1).Property("color")
	assert.Equal(t, style.Property("orange"), color)
}

func TestShadowRootScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoptcss.dom")
	defer teardown()
	//
	doc := parse(t)
	host := byID(doc.Root(), "widget")
	sr, err := doc.AttachShadow(host)
	require.NoError(t, err)
	assert.Same(t, host, sr.Host())
	assert.Same(t, sr, doc.ShadowRoot(host))
	require.Len(t, sr.StyleSheets(), 1)
	//
	inner := byID(doc.Root(), "inner")
	assert.Empty(t, doc.MatchingRules(inner), "document styles must not reach into shadow host")
	color, _ := sr.ComputedStyles(inner).Property("color")
	assert.Equal(t, style.Property("purple"), color)
	//
	_, err = adoptcss.New(sr, "p { color: teal }")
	require.NoError(t, err)
	color, _ = sr.ComputedStyles(inner).Property("color")
	assert.Equal(t, style.Property("teal"), color)
	// shadow styles do not leak out
	first := byID(doc.Root(), "first")
	assert.Empty(t, sr.MatchingRules(first))
	assert.Empty(t, sr.MatchingRules(host))
}

func TestAttachShadowErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoptcss.dom")
	defer teardown()
	//
	doc := parse(t)
	_, err := doc.AttachShadow(nil)
	assert.ErrorIs(t, err, ErrShadowHost)
	foreign := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	_, err = doc.AttachShadow(foreign)
	assert.ErrorIs(t, err, ErrShadowHost)
	host := byID(doc.Root(), "widget")
	_, err = doc.AttachShadow(host)
	require.NoError(t, err)
	_, err = doc.AttachShadow(host)
	assert.ErrorIs(t, err, ErrShadowHost)
}

// ---------------------------------------------------------------------------

func parse(t *testing.T) *Document {
	doc, err := Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	return doc
}

func byID(n *html.Node, id string) *html.Node {
	return find(n, func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return true
			}
		}
		return false
	})
}

func firstElement(n *html.Node, a atom.Atom) *html.Node {
	return find(n, func(n *html.Node) bool { return n.DataAtom == a })
}

func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := find(ch, pred); r != nil {
			return r
		}
	}
	return nil
}
