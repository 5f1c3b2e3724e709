// Package selector implements a CSS-subset selector language evaluated
// against dom node arenas.
package selector

import (
	"strings"

	"github.com/clovexx/tl/internal/dom"
)

// Resolver resolves node handles during matching. *dom.Document
// implements it; matching treats the tree as a read-only capability and
// never mutates it.
type Resolver interface {
	Resolve(dom.NodeHandle) *dom.Node
}

// Selector is one node of a parsed selector expression. The concrete
// types below form a closed set; Matches switches over them
// exhaustively. Selectors are immutable and may be shared across any
// number of Matches calls.
type Selector interface {
	selector()
}

// Tag matches elements by tag name: foo.
type Tag string

// ID matches elements by id attribute: #foo.
type ID string

// Class matches elements carrying a class token: .foo.
type Class string

// All matches every node: *.
type All struct{}

// Attribute matches elements carrying the named attribute,
// with or without a value: [foo].
type Attribute string

// AttributeValue matches an exact attribute value: [foo=bar].
type AttributeValue struct{ Name, Value string }

// AttributeValueStartsWith matches an attribute value prefix: [foo^=bar].
type AttributeValueStartsWith struct{ Name, Value string }

// AttributeValueEndsWith matches an attribute value suffix: [foo$=bar].
type AttributeValueEndsWith struct{ Name, Value string }

// AttributeValueSubstring matches an attribute value substring: [foo*=bar].
type AttributeValueSubstring struct{ Name, Value string }

// AttributeValueWhitespacedContains matches a whitespace-separated token
// of the attribute value: [foo~=bar].
type AttributeValueWhitespacedContains struct{ Name, Value string }

// And requires both sub-selectors on the same node: .foo.bar.
type And struct{ Left, Right Selector }

// Or requires either sub-selector: .foo, .bar.
type Or struct{ Left, Right Selector }

// Descendant requires Target on the node and Ancestor on some strict
// ancestor: .foo .bar.
type Descendant struct{ Ancestor, Target Selector }

// Parent requires Target on the node and Parent on its immediate
// parent: .foo > .bar.
type Parent struct{ Parent, Target Selector }

func (Tag) selector()                               {}
func (ID) selector()                                {}
func (Class) selector()                             {}
func (All) selector()                               {}
func (Attribute) selector()                         {}
func (AttributeValue) selector()                    {}
func (AttributeValueStartsWith) selector()          {}
func (AttributeValueEndsWith) selector()            {}
func (AttributeValueSubstring) selector()           {}
func (AttributeValueWhitespacedContains) selector() {}
func (And) selector()                               {}
func (Or) selector()                                {}
func (Descendant) selector()                        {}
func (Parent) selector()                            {}

// Matches reports whether the node satisfies the selector. It is a pure
// read-only traversal, safe for concurrent use against an immutable
// tree. Leaf predicates are false for non-element nodes, and absent
// attributes or unresolvable parents degrade to false rather than
// erroring.
//
// Matches panics when it detects a cyclic parent chain: a cycle means
// the tree-building collaborator is broken and must not degrade into an
// endless walk.
func Matches(s Selector, node *dom.Node, r Resolver) bool {
	switch s := s.(type) {
	case Tag:
		tag := node.AsTag()
		return tag != nil && tag.Name() == string(s)
	case ID:
		tag := node.AsTag()
		if tag == nil {
			return false
		}
		id, ok := tag.Attributes().ID()
		return ok && id == string(s)
	case Class:
		tag := node.AsTag()
		return tag != nil && tag.Attributes().IsClassMember(string(s))
	case All:
		return true
	case Attribute:
		tag := node.AsTag()
		if tag == nil {
			return false
		}
		_, ok := tag.Attributes().Get(string(s))
		return ok
	case AttributeValue:
		return checkAttribute(node, s.Name, s.Value, relEquals)
	case AttributeValueStartsWith:
		return checkAttribute(node, s.Name, s.Value, strings.HasPrefix)
	case AttributeValueEndsWith:
		return checkAttribute(node, s.Name, s.Value, strings.HasSuffix)
	case AttributeValueSubstring:
		return checkAttribute(node, s.Name, s.Value, strings.Contains)
	case AttributeValueWhitespacedContains:
		return checkAttribute(node, s.Name, s.Value, relWhitespacedContains)
	case And:
		return Matches(s.Left, node, r) && Matches(s.Right, node, r)
	case Or:
		return Matches(s.Left, node, r) || Matches(s.Right, node, r)
	case Parent:
		if !Matches(s.Target, node, r) {
			return false
		}
		parent := parentOf(node, r)
		return parent != nil && Matches(s.Parent, parent, r)
	case Descendant:
		if !Matches(s.Target, node, r) {
			return false
		}
		return matchAncestor(s.Ancestor, node, r)
	}
	return false
}

// matchAncestor walks strictly upward from node, nearest ancestor first,
// until the selector matches or the chain ends. A trailing cursor
// advancing at half speed detects cycles in a corrupted tree.
func matchAncestor(s Selector, node *dom.Node, r Resolver) bool {
	slow := node
	curr := node
	for i := 0; ; i++ {
		ancestor := parentOf(curr, r)
		if ancestor == nil {
			return false
		}
		if Matches(s, ancestor, r) {
			return true
		}
		curr = ancestor
		if i%2 == 1 {
			slow = parentOf(slow, r)
		}
		if curr == slow {
			panic("selector: cyclic parent chain")
		}
	}
}

// parentOf resolves the node's parent, nil for roots, detached nodes and
// non-elements.
func parentOf(node *dom.Node, r Resolver) *dom.Node {
	tag := node.AsTag()
	if tag == nil {
		return nil
	}
	h, ok := tag.Parent()
	if !ok {
		return nil
	}
	return r.Resolve(h)
}
