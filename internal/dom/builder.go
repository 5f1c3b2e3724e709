package dom

import "strings"

// Builder assembles a Document node by node. Parents must be appended
// before their children; a nil parent makes the node a root. The builder
// must not be used after Document is called.
type Builder struct {
	doc *Document
}

// NewBuilder returns a Builder for an empty document with the given
// options.
func NewBuilder(opts Options) *Builder {
	return &Builder{doc: &Document{options: opts}}
}

// AppendTag appends an element node and returns its handle.
func (b *Builder) AppendTag(name string, parent *NodeHandle, attrs Attributes) NodeHandle {
	t := &Tag{name: name, attributes: attrs, parent: -1}
	if parent != nil {
		t.parent = int64(*parent)
	}
	h := b.append(Node{kind: KindTag, tag: t}, parent)
	b.track(h, t)
	return h
}

// AppendText appends a text node and returns its handle.
func (b *Builder) AppendText(text string, parent *NodeHandle) NodeHandle {
	return b.append(Node{kind: KindText, raw: text}, parent)
}

// AppendComment appends a comment node and returns its handle.
func (b *Builder) AppendComment(text string, parent *NodeHandle) NodeHandle {
	return b.append(Node{kind: KindComment, raw: text}, parent)
}

// SetParent moves a tag under a new parent, detaching it from its old
// parent's child list (or from the root list). The caller is
// responsible for keeping the tree acyclic.
func (b *Builder) SetParent(child, parent NodeHandle) {
	n := b.doc.Resolve(child)
	if n == nil {
		return
	}
	tag := n.AsTag()
	if tag == nil {
		return
	}

	if tag.parent < 0 {
		b.doc.roots = removeHandle(b.doc.roots, child)
	} else if p := b.doc.Resolve(NodeHandle(tag.parent)); p != nil {
		if pt := p.AsTag(); pt != nil {
			pt.children = removeHandle(pt.children, child)
		}
	}
	if p := b.doc.Resolve(parent); p != nil {
		if pt := p.AsTag(); pt != nil {
			pt.children = append(pt.children, child)
		}
	}
	tag.parent = int64(parent)
}

func removeHandle(handles []NodeHandle, h NodeHandle) []NodeHandle {
	for i, v := range handles {
		if v == h {
			return append(handles[:i], handles[i+1:]...)
		}
	}
	return handles
}

// Document returns the built document.
func (b *Builder) Document() *Document { return b.doc }

func (b *Builder) append(n Node, parent *NodeHandle) NodeHandle {
	h := NodeHandle(len(b.doc.nodes))
	b.doc.nodes = append(b.doc.nodes, n)
	if parent == nil {
		b.doc.roots = append(b.doc.roots, h)
	} else if p := b.doc.Resolve(*parent); p != nil {
		if tag := p.AsTag(); tag != nil {
			tag.children = append(tag.children, h)
		}
	}
	return h
}

// track records the tag in the ID/class tables per the document options.
func (b *Builder) track(h NodeHandle, t *Tag) {
	if b.doc.options.IsTrackingIDs() {
		if id, ok := t.attributes.ID(); ok {
			if b.doc.ids == nil {
				b.doc.ids = make(map[string]NodeHandle)
			}
			// first occurrence wins
			if _, exists := b.doc.ids[id]; !exists {
				b.doc.ids[id] = h
			}
		}
	}
	if b.doc.options.IsTrackingClasses() {
		if list, ok := t.attributes.Class(); ok {
			if b.doc.classes == nil {
				b.doc.classes = make(map[string][]NodeHandle)
			}
			for _, class := range strings.Fields(list) {
				handles := b.doc.classes[class]
				if len(handles) > 0 && handles[len(handles)-1] == h {
					continue // duplicate token on the same tag
				}
				b.doc.classes[class] = append(handles, h)
			}
		}
	}
}
