// Package dom provides a handle-based HTML node arena.
//
// Nodes reference each other only through NodeHandle values resolved via
// their owning Document, never through direct pointers. This keeps the
// arena flat and lets callers hold on to handles across queries.
package dom

// NodeHandle is an opaque reference to a node in a Document.
// It is only meaningful to the Document that produced it.
type NodeHandle uint32

// NodeKind discriminates the node variants stored in the arena.
type NodeKind uint8

const (
	KindTag NodeKind = iota
	KindText
	KindComment
)

// Node is a single entry in the document arena.
type Node struct {
	kind NodeKind
	tag  *Tag   // set when kind == KindTag
	raw  string // text or comment content otherwise
}

// Kind returns the node variant.
func (n *Node) Kind() NodeKind { return n.kind }

// AsTag returns the element view of the node, or nil for text and
// comment nodes.
func (n *Node) AsTag() *Tag {
	if n.kind != KindTag {
		return nil
	}
	return n.tag
}

// Raw returns the textual content of a text or comment node.
func (n *Node) Raw() string { return n.raw }

// Tag is the element view of a node.
type Tag struct {
	name       string
	attributes Attributes
	parent     int64 // arena index, -1 when root or detached
	children   []NodeHandle
}

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// Attributes returns the tag's attribute set.
func (t *Tag) Attributes() *Attributes { return &t.attributes }

// Parent returns the handle of the tag's parent node.
// ok is false for root and detached nodes.
func (t *Tag) Parent() (NodeHandle, bool) {
	if t.parent < 0 {
		return 0, false
	}
	return NodeHandle(t.parent), true
}

// Children returns the tag's child handles in document order.
func (t *Tag) Children() []NodeHandle { return t.children }
