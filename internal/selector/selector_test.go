package selector

import (
	"testing"

	"github.com/clovexx/tl/internal/dom"
)

// fixture is html > body > div#main.card > span.label with a text child
// under span and an anchor with assorted attributes under body.
type fixture struct {
	doc  *dom.Document
	html dom.NodeHandle
	body dom.NodeHandle
	div  dom.NodeHandle
	span dom.NodeHandle
	text dom.NodeHandle
	link dom.NodeHandle
}

func newFixture() *fixture {
	b := dom.NewBuilder(dom.NewOptions())

	htmlH := b.AppendTag("html", nil, dom.Attributes{})
	bodyH := b.AppendTag("body", &htmlH, dom.Attributes{})

	var divAttrs dom.Attributes
	divAttrs.Set("id", "main")
	divAttrs.Set("class", "card")
	divH := b.AppendTag("div", &bodyH, divAttrs)

	var spanAttrs dom.Attributes
	spanAttrs.Set("class", "label")
	spanH := b.AppendTag("span", &divH, spanAttrs)
	textH := b.AppendText("hello", &spanH)

	var aAttrs dom.Attributes
	aAttrs.Set("href", "https://example.com/page")
	aAttrs.Set("data-role", "nav menu")
	aAttrs.SetFlag("hidden")
	linkH := b.AppendTag("a", &bodyH, aAttrs)

	return &fixture{
		doc:  b.Document(),
		html: htmlH,
		body: bodyH,
		div:  divH,
		span: spanH,
		text: textH,
		link: linkH,
	}
}

func (f *fixture) node(h dom.NodeHandle) *dom.Node { return f.doc.Resolve(h) }

func TestMatchesLeaves(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		sel  Selector
		node dom.NodeHandle
		want bool
	}{
		{"tag match", Tag("div"), f.div, true},
		{"tag mismatch", Tag("div"), f.span, false},
		{"tag on text node", Tag("div"), f.text, false},
		{"all on tag", All{}, f.div, true},
		{"all on text", All{}, f.text, true},
		{"id match", ID("main"), f.div, true},
		{"id wrong node", ID("main"), f.span, false},
		{"id wrong value", ID("other"), f.div, false},
		{"id on text node", ID("main"), f.text, false},
		{"class match", Class("card"), f.div, true},
		{"class mismatch", Class("label"), f.div, false},
		{"class on text node", Class("card"), f.text, false},
		{"attribute present", Attribute("href"), f.link, true},
		{"attribute valueless present", Attribute("hidden"), f.link, true},
		{"attribute absent", Attribute("src"), f.link, false},
		{"attribute on text node", Attribute("href"), f.text, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.sel, f.node(tt.node), f.doc); got != tt.want {
				t.Errorf("Matches(%#v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestMatchesAttributeValues(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		sel  Selector
		want bool
	}{
		{"exact", AttributeValue{"href", "https://example.com/page"}, true},
		{"exact mismatch", AttributeValue{"href", "https://example.com"}, false},
		{"prefix", AttributeValueStartsWith{"href", "https://"}, true},
		{"empty prefix", AttributeValueStartsWith{"href", ""}, true},
		{"prefix mismatch", AttributeValueStartsWith{"href", "http://x"}, false},
		{"suffix", AttributeValueEndsWith{"href", "/page"}, true},
		{"suffix mismatch", AttributeValueEndsWith{"href", "/index"}, false},
		{"substring", AttributeValueSubstring{"href", "example"}, true},
		{"substring mismatch", AttributeValueSubstring{"href", "nope"}, false},
		{"exact implies substring", AttributeValueSubstring{"href", "https://example.com/page"}, true},
		{"token first", AttributeValueWhitespacedContains{"data-role", "nav"}, true},
		{"token second", AttributeValueWhitespacedContains{"data-role", "menu"}, true},
		{"token joined", AttributeValueWhitespacedContains{"data-role", "navmenu"}, false},
		{"token partial", AttributeValueWhitespacedContains{"data-role", "na"}, false},
		{"valueless attr fails value predicates", AttributeValue{"hidden", ""}, false},
		{"valueless attr fails prefix", AttributeValueStartsWith{"hidden", ""}, false},
		{"absent attr", AttributeValue{"src", "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.sel, f.node(f.link), f.doc); got != tt.want {
				t.Errorf("Matches(%#v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

func TestMatchesClassTokens(t *testing.T) {
	b := dom.NewBuilder(dom.NewOptions())
	var attrs dom.Attributes
	attrs.Set("class", "foo bar")
	multi := b.AppendTag("div", nil, attrs)
	var joined dom.Attributes
	joined.Set("class", "foobar")
	solid := b.AppendTag("div", nil, joined)
	doc := b.Document()

	if !Matches(AttributeValueWhitespacedContains{"class", "foo"}, doc.Resolve(multi), doc) {
		t.Error(`class="foo bar" should contain token foo`)
	}
	if Matches(AttributeValueWhitespacedContains{"class", "foo"}, doc.Resolve(solid), doc) {
		t.Error(`class="foobar" should not contain token foo`)
	}
	if !Matches(Class("bar"), doc.Resolve(multi), doc) {
		t.Error(`Class("bar") should match class="foo bar"`)
	}
}

func TestMatchesCombinators(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		sel  Selector
		node dom.NodeHandle
		want bool
	}{
		{"and both", And{Tag("div"), Class("card")}, f.div, true},
		{"and left fails", And{Tag("span"), Class("card")}, f.div, false},
		{"and right fails", And{Tag("div"), Class("label")}, f.div, false},
		{"or left", Or{Tag("div"), Tag("span")}, f.div, true},
		{"or right", Or{Tag("span"), Tag("div")}, f.div, true},
		{"or neither", Or{Tag("span"), Tag("a")}, f.div, false},

		{"parent direct", Parent{Parent: Tag("div"), Target: Tag("span")}, f.span, true},
		{"parent wrong parent", Parent{Parent: Tag("body"), Target: Tag("span")}, f.span, false},
		{"parent wrong target", Parent{Parent: Tag("div"), Target: Tag("a")}, f.span, false},
		{"parent of root is false", Parent{Parent: All{}, Target: All{}}, f.html, false},
		{"parent on text node", Parent{Parent: All{}, Target: All{}}, f.text, false},

		{"descendant nearest", Descendant{Ancestor: Tag("div"), Target: Tag("span")}, f.span, true},
		{"descendant distant", Descendant{Ancestor: Tag("html"), Target: Tag("span")}, f.span, true},
		{"descendant class", Descendant{Ancestor: Class("card"), Target: Tag("span")}, f.span, true},
		{"descendant no such ancestor", Descendant{Ancestor: Tag("table"), Target: Tag("span")}, f.span, false},
		{"descendant target fails", Descendant{Ancestor: Tag("div"), Target: Tag("a")}, f.span, false},
		{"descendant of root is false", Descendant{Ancestor: All{}, Target: All{}}, f.html, false},
		{"descendant not self", Descendant{Ancestor: Tag("span"), Target: Tag("span")}, f.span, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.sel, f.node(tt.node), f.doc); got != tt.want {
				t.Errorf("Matches(%#v) = %v, want %v", tt.sel, got, tt.want)
			}
		})
	}
}

// Identity laws: Or(e, All) is always true, And(e, All) equals e.
func TestMatchesIdentityLaws(t *testing.T) {
	f := newFixture()

	sels := []Selector{
		Tag("div"), ID("main"), Class("card"), Attribute("href"),
		AttributeValue{"href", "x"}, All{},
		Descendant{Ancestor: Class("card"), Target: Tag("span")},
	}
	nodes := []dom.NodeHandle{f.html, f.body, f.div, f.span, f.text, f.link}

	for _, e := range sels {
		for _, h := range nodes {
			n := f.node(h)
			if !Matches(Or{e, All{}}, n, f.doc) {
				t.Errorf("Or(%#v, All) should always match", e)
			}
			if Matches(And{e, All{}}, n, f.doc) != Matches(e, n, f.doc) {
				t.Errorf("And(%#v, All) should equal the selector itself", e)
			}
			// Commutativity in result.
			if Matches(Or{e, Tag("div")}, n, f.doc) != Matches(Or{Tag("div"), e}, n, f.doc) {
				t.Errorf("Or not commutative for %#v", e)
			}
			if Matches(And{e, Tag("div")}, n, f.doc) != Matches(And{Tag("div"), e}, n, f.doc) {
				t.Errorf("And not commutative for %#v", e)
			}
		}
	}
}

// The parent combinator must agree with its definition:
// t matches the node and p matches its immediate parent.
func TestMatchesParentLaw(t *testing.T) {
	f := newFixture()

	pairs := []struct{ p, t Selector }{
		{Tag("div"), Tag("span")},
		{Class("card"), All{}},
		{All{}, Class("label")},
		{Tag("body"), Tag("div")},
	}
	nodes := []dom.NodeHandle{f.body, f.div, f.span, f.link}

	for _, pair := range pairs {
		for _, h := range nodes {
			n := f.node(h)
			got := Matches(Parent{Parent: pair.p, Target: pair.t}, n, f.doc)

			ph, ok := n.AsTag().Parent()
			want := false
			if ok {
				want = Matches(pair.t, n, f.doc) && Matches(pair.p, f.node(ph), f.doc)
			}
			if got != want {
				t.Errorf("Parent{%#v, %#v} on %d = %v, want %v", pair.p, pair.t, h, got, want)
			}
		}
	}
}

func TestMatchesEndToEnd(t *testing.T) {
	f := newFixture()

	sel := Descendant{Ancestor: Class("card"), Target: Tag("span")}
	if !Matches(sel, f.node(f.span), f.doc) {
		t.Error("span.label should match '.card span'")
	}

	sel2 := Parent{Parent: Tag("div"), Target: Tag("span")}
	if !Matches(sel2, f.node(f.span), f.doc) {
		t.Error("span.label should match 'div > span'")
	}

	// Id("main") matches the div and nothing else.
	for i := 0; i < f.doc.Len(); i++ {
		h := dom.NodeHandle(i)
		got := Matches(ID("main"), f.doc.Resolve(h), f.doc)
		if got != (h == f.div) {
			t.Errorf("ID(main) on node %d = %v", h, got)
		}
	}
}

func TestMatchesCyclicParentChainPanics(t *testing.T) {
	b := dom.NewBuilder(dom.NewOptions())
	a := b.AppendTag("a", nil, dom.Attributes{})
	c := b.AppendTag("b", &a, dom.Attributes{})
	b.SetParent(a, c) // corrupt the tree: a <-> b
	doc := b.Document()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cyclic parent chain")
		}
	}()
	Matches(Descendant{Ancestor: Tag("nope"), Target: All{}}, doc.Resolve(c), doc)
}
