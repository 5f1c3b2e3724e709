package dom

import (
	"sort"
	"strings"
)

// Attributes stores a tag's attributes. Each attribute is either present
// with a value or present without one (e.g. <input disabled>); Get
// reflects the distinction through its *string result.
type Attributes struct {
	values map[string]*string
}

// Set stores an attribute with a value, replacing any previous entry.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]*string)
	}
	v := value
	a.values[name] = &v
}

// SetFlag stores a valueless attribute, replacing any previous entry.
func (a *Attributes) SetFlag(name string) {
	if a.values == nil {
		a.values = make(map[string]*string)
	}
	a.values[name] = nil
}

// Get returns the attribute's value and whether the attribute is present.
// A nil value with present == true marks a valueless attribute.
func (a *Attributes) Get(name string) (value *string, present bool) {
	v, ok := a.values[name]
	return v, ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.values) }

// Names returns the attribute names in lexical order.
func (a *Attributes) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ID returns the value of the id attribute.
// ok is false when the attribute is absent or valueless.
func (a *Attributes) ID() (string, bool) {
	v, ok := a.values["id"]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Class returns the value of the class attribute.
// ok is false when the attribute is absent or valueless.
func (a *Attributes) Class() (string, bool) {
	v, ok := a.values["class"]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// IsClassMember reports whether class occurs as a whitespace-separated
// token of the class attribute.
func (a *Attributes) IsClassMember(class string) bool {
	list, ok := a.Class()
	if !ok {
		return false
	}
	for _, token := range strings.Fields(list) {
		if token == class {
			return true
		}
	}
	return false
}
