package selector

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST types for the participle grammar.

// selectorExpr is the grammar root: comma-separated alternatives.
type selectorExpr struct {
	Alternatives []*complexExpr `parser:"@@ ( ',' @@ )*"`
}

// complexExpr is a compound selector followed by combinator steps.
type complexExpr struct {
	Head  *compoundExpr `parser:"@@"`
	Steps []*stepExpr   `parser:"@@*"`
}

// stepExpr is one combinator application: '>' for child, a space for
// descendant.
type stepExpr struct {
	Child bool          `parser:"( @'>' | Space )"`
	Next  *compoundExpr `parser:"@@"`
}

// compoundExpr is a run of simple selectors applying to the same node.
type compoundExpr struct {
	Parts []*simpleExpr `parser:"@@+"`
}

// simpleExpr is a single leaf selector.
type simpleExpr struct {
	All   bool      `parser:"  @'*'"`
	ID    string    `parser:"| '#' @Ident"`
	Class string    `parser:"| '.' @Ident"`
	Attr  *attrExpr `parser:"| '[' @@ ']'"`
	Tag   string    `parser:"| @Ident"`
}

// attrExpr is the inside of a bracketed attribute selector.
type attrExpr struct {
	Name  string `parser:"@Ident"`
	Op    string `parser:"( @Op"`
	Value string `parser:"  ( @String | @Ident ) )?"`
}

// Build the lexer. Op must precede Punct so that "*=" lexes as one
// operator token rather than an All selector followed by "=".
var selectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[~^$*]?=`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Ident", Pattern: `[\w-]+`},
	{Name: "Space", Pattern: `\s+`},
	{Name: "Punct", Pattern: `[#.\[\]*>,]`},
})

// Build the parser. Whitespace is NOT elided: after normalization the
// only remaining spaces are descendant combinators.
var selectorParser = participle.MustBuild[selectorExpr](
	participle.Lexer(selectorLexer),
)

// ParseString parses a selector expression into a Selector.
//
// Supported syntax: tag, #id, .class, *, [attr], [attr=v], [attr~=v],
// [attr^=v], [attr$=v], [attr*=v], compounds (div.card), descendant
// (whitespace), child (>) and alternation (,). Attribute values may be
// bare identifiers or quoted strings.
func ParseString(expr string) (Selector, error) {
	norm := normalize(expr)
	if norm == "" {
		return nil, fmt.Errorf("empty selector")
	}

	ast, err := selectorParser.ParseString("", norm)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", expr, err)
	}
	return convertSelectorList(ast)
}

// MustParseString is ParseString panicking on error, for fixed selectors.
func MustParseString(expr string) Selector {
	sel, err := ParseString(expr)
	if err != nil {
		panic(err)
	}
	return sel
}

// normalize canonicalizes whitespace outside quoted strings: runs
// collapse to a single space, spaces adjacent to '>' and ',' are
// dropped, and whitespace inside brackets is removed entirely (values
// containing spaces must be quoted). Leading and trailing whitespace is
// trimmed. After normalization the only remaining spaces are descendant
// combinators.
func normalize(expr string) string {
	var sb strings.Builder
	var quote byte
	var last byte
	depth := 0
	pending := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if quote != 0 {
			sb.WriteByte(c)
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			if depth > 0 || sb.Len() == 0 || last == '>' || last == ',' {
				continue
			}
			pending = true
			continue
		case '>', ',':
			pending = false
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '"', '\'':
			quote = c
		}
		if pending {
			sb.WriteByte(' ')
			pending = false
		}
		sb.WriteByte(c)
		last = c
	}
	return sb.String()
}

func convertSelectorList(ast *selectorExpr) (Selector, error) {
	sel, err := convertComplex(ast.Alternatives[0])
	if err != nil {
		return nil, err
	}
	for _, alt := range ast.Alternatives[1:] {
		right, err := convertComplex(alt)
		if err != nil {
			return nil, err
		}
		sel = Or{Left: sel, Right: right}
	}
	return sel, nil
}

func convertComplex(ast *complexExpr) (Selector, error) {
	sel, err := convertCompound(ast.Head)
	if err != nil {
		return nil, err
	}
	for _, step := range ast.Steps {
		next, err := convertCompound(step.Next)
		if err != nil {
			return nil, err
		}
		if step.Child {
			sel = Parent{Parent: sel, Target: next}
		} else {
			sel = Descendant{Ancestor: sel, Target: next}
		}
	}
	return sel, nil
}

func convertCompound(ast *compoundExpr) (Selector, error) {
	sel, err := convertSimple(ast.Parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range ast.Parts[1:] {
		next, err := convertSimple(part)
		if err != nil {
			return nil, err
		}
		sel = And{Left: sel, Right: next}
	}
	return sel, nil
}

func convertSimple(ast *simpleExpr) (Selector, error) {
	switch {
	case ast.All:
		return All{}, nil
	case ast.ID != "":
		return ID(ast.ID), nil
	case ast.Class != "":
		return Class(ast.Class), nil
	case ast.Attr != nil:
		return convertAttr(ast.Attr)
	case ast.Tag != "":
		return Tag(ast.Tag), nil
	}
	return nil, fmt.Errorf("empty simple selector")
}

func convertAttr(ast *attrExpr) (Selector, error) {
	value := unquote(ast.Value)
	switch ast.Op {
	case "":
		return Attribute(ast.Name), nil
	case "=":
		return AttributeValue{Name: ast.Name, Value: value}, nil
	case "~=":
		return AttributeValueWhitespacedContains{Name: ast.Name, Value: value}, nil
	case "^=":
		return AttributeValueStartsWith{Name: ast.Name, Value: value}, nil
	case "$=":
		return AttributeValueEndsWith{Name: ast.Name, Value: value}, nil
	case "*=":
		return AttributeValueSubstring{Name: ast.Name, Value: value}, nil
	}
	return nil, fmt.Errorf("unsupported attribute operator %q", ast.Op)
}

// unquote strips matching quotes from an attribute value literal.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
