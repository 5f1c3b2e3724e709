package dom

// Document owns a flat arena of nodes in document order. Handles index
// into the arena and are resolved through the document.
type Document struct {
	nodes   []Node
	roots   []NodeHandle
	options Options
	ids     map[string]NodeHandle   // populated when tracking IDs
	classes map[string][]NodeHandle // populated when tracking classes
}

// Resolve returns the node for a handle, or nil when the handle does not
// belong to this document.
func (d *Document) Resolve(h NodeHandle) *Node {
	if int(h) >= len(d.nodes) {
		return nil
	}
	return &d.nodes[h]
}

// Len returns the number of nodes in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// Roots returns the handles of the top-level nodes in document order.
func (d *Document) Roots() []NodeHandle { return d.roots }

// Options returns the options the document was built with.
func (d *Document) Options() Options { return d.options }

// GetElementByID returns the first tag in document order whose id
// attribute equals id. Answered from the ID table when the document
// tracks IDs, otherwise by scanning the arena.
func (d *Document) GetElementByID(id string) (NodeHandle, bool) {
	if d.options.IsTrackingIDs() {
		h, ok := d.ids[id]
		return h, ok
	}
	for i := range d.nodes {
		tag := d.nodes[i].AsTag()
		if tag == nil {
			continue
		}
		if v, ok := tag.Attributes().ID(); ok && v == id {
			return NodeHandle(i), true
		}
	}
	return 0, false
}

// GetElementsByClassName returns all tags carrying class as a class
// token, in document order.
func (d *Document) GetElementsByClassName(class string) []NodeHandle {
	if d.options.IsTrackingClasses() {
		return append([]NodeHandle(nil), d.classes[class]...)
	}
	var out []NodeHandle
	for i := range d.nodes {
		tag := d.nodes[i].AsTag()
		if tag == nil {
			continue
		}
		if tag.Attributes().IsClassMember(class) {
			out = append(out, NodeHandle(i))
		}
	}
	return out
}
