package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// voidElements render without children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// InnerText returns the concatenated text content of the subtree rooted
// at h, in document order. Comments contribute nothing.
func (d *Document) InnerText(h NodeHandle) string {
	var sb strings.Builder
	d.innerText(h, &sb)
	return sb.String()
}

func (d *Document) innerText(h NodeHandle, sb *strings.Builder) {
	n := d.Resolve(h)
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindText:
		sb.WriteString(n.Raw())
	case KindTag:
		for _, c := range n.AsTag().Children() {
			d.innerText(c, sb)
		}
	}
}

// OuterHTML serializes the subtree rooted at h, including the node
// itself. Attributes are emitted in lexical order.
func (d *Document) OuterHTML(h NodeHandle) string {
	var sb strings.Builder
	d.render(h, &sb)
	return sb.String()
}

// InnerHTML serializes the children of h. It returns the empty string
// for text and comment nodes.
func (d *Document) InnerHTML(h NodeHandle) string {
	n := d.Resolve(h)
	if n == nil {
		return ""
	}
	tag := n.AsTag()
	if tag == nil {
		return ""
	}
	var sb strings.Builder
	for _, c := range tag.Children() {
		d.render(c, &sb)
	}
	return sb.String()
}

func (d *Document) render(h NodeHandle, sb *strings.Builder) {
	n := d.Resolve(h)
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindText:
		sb.WriteString(html.EscapeString(n.Raw()))
	case KindComment:
		sb.WriteString("<!--")
		sb.WriteString(n.Raw())
		sb.WriteString("-->")
	case KindTag:
		tag := n.AsTag()
		sb.WriteByte('<')
		sb.WriteString(tag.Name())
		attrs := tag.Attributes()
		for _, name := range attrs.Names() {
			value, _ := attrs.Get(name)
			sb.WriteByte(' ')
			sb.WriteString(name)
			if value != nil {
				sb.WriteString(`="`)
				sb.WriteString(html.EscapeString(*value))
				sb.WriteByte('"')
			}
		}
		sb.WriteByte('>')
		if voidElements[tag.Name()] {
			return
		}
		for _, c := range tag.Children() {
			d.render(c, sb)
		}
		sb.WriteString("</")
		sb.WriteString(tag.Name())
		sb.WriteByte('>')
	}
}
