package selector

import "github.com/clovexx/tl/internal/dom"

// QueryAll returns the handles of all nodes matching sel, in document
// order. It always scans the arena, even for a plain ID selector: the
// ID table only records the first occurrence of a duplicated id, and
// the result set must not depend on the tracking flags.
func QueryAll(doc *dom.Document, sel Selector) []dom.NodeHandle {
	var out []dom.NodeHandle
	for i := 0; i < doc.Len(); i++ {
		h := dom.NodeHandle(i)
		if Matches(sel, doc.Resolve(h), doc) {
			out = append(out, h)
		}
	}
	return out
}

// Query returns the first node matching sel in document order.
func Query(doc *dom.Document, sel Selector) (dom.NodeHandle, bool) {
	if id, ok := sel.(ID); ok && doc.Options().IsTrackingIDs() {
		return doc.GetElementByID(string(id))
	}

	for i := 0; i < doc.Len(); i++ {
		h := dom.NodeHandle(i)
		if Matches(sel, doc.Resolve(h), doc) {
			return h, true
		}
	}
	return 0, false
}
