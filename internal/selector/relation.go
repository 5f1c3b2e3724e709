package selector

import (
	"strings"

	"github.com/clovexx/tl/internal/dom"
)

// checkAttribute resolves the named attribute on the node and applies
// rel to the decoded attribute value and selector literal. False when
// the node is not an element or the attribute is absent or valueless.
func checkAttribute(node *dom.Node, name, literal string, rel func(value, literal string) bool) bool {
	tag := node.AsTag()
	if tag == nil {
		return false
	}
	value, ok := tag.Attributes().Get(name)
	if !ok || value == nil {
		return false
	}
	return rel(decodeLossy(*value), decodeLossy(literal))
}

// decodeLossy replaces invalid UTF-8 with the replacement character.
// Both sides of every relation go through it, so malformed sequences
// compare by their decoded form.
func decodeLossy(s string) string {
	return strings.ToValidUTF8(s, "�")
}

func relEquals(value, literal string) bool { return value == literal }

// relWhitespacedContains reports whether literal occurs as a
// whitespace-separated token of value.
func relWhitespacedContains(value, literal string) bool {
	for _, token := range strings.Fields(value) {
		if token == literal {
			return true
		}
	}
	return false
}
