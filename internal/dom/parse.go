package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Parse reads an HTML document and builds the node arena. Nodes are
// stored in document order (pre-order). Doctype declarations are skipped.
//
// x/net/html does not distinguish a valueless attribute from an
// empty-valued one, so parsed attributes always carry a (possibly empty)
// value. Trees assembled through Builder keep the distinction.
func Parse(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	b := NewBuilder(opts)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		convert(b, c, nil)
	}
	return b.Document(), nil
}

func convert(b *Builder, n *html.Node, parent *NodeHandle) {
	switch n.Type {
	case html.ElementNode:
		var attrs Attributes
		for _, a := range n.Attr {
			attrs.Set(a.Key, a.Val)
		}
		h := b.AppendTag(n.Data, parent, attrs)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			convert(b, c, &h)
		}
	case html.TextNode:
		b.AppendText(n.Data, parent)
	case html.CommentNode:
		b.AppendComment(n.Data, parent)
	}
}
