package landing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"
)

func testPage(menu MenuState) Page {
	return NewPage(menu, DefaultLinks(), "picsum.photos")
}

// parsePage renders p and parses the result back into a DOM tree.
func parsePage(t *testing.T, p Page) *xhtml.Node {
	t.Helper()
	out, err := p.HTML()
	require.NoError(t, err)
	doc, err := xhtml.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	return doc
}

func findAll(n *xhtml.Node, match func(*xhtml.Node) bool) []*xhtml.Node {
	var found []*xhtml.Node
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func findByID(n *xhtml.Node, id string) *xhtml.Node {
	nodes := findAll(n, func(n *xhtml.Node) bool { return attr(n, "id") == id })
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func byTag(tag string) func(*xhtml.Node) bool {
	return func(n *xhtml.Node) bool { return n.Data == tag }
}

func byClass(class string) func(*xhtml.Node) bool {
	return func(n *xhtml.Node) bool { return hasClass(n, class) }
}

func attr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *xhtml.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func hasClass(n *xhtml.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *xhtml.Node) string {
	var b strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func elementChildren(n *xhtml.Node) []*xhtml.Node {
	var children []*xhtml.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode {
			children = append(children, c)
		}
	}
	return children
}
