package html2md

import "strings"

// Node is a member of the document tree: either an *Element or a *Text.
// The set of implementations is closed.
type Node interface {
	// Parent returns the enclosing element, or nil for a detached node or the root.
	Parent() *Element
	setParent(*Element)
}

// Compile-time interface implementation checks.
var (
	_ Node = (*Element)(nil)
	_ Node = (*Text)(nil)
)

// Element is a tagged node with attributes and ordered children.
// Tag names are stored lowercase.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
	parent   *Element
}

// NewElement creates a detached element. A nil attrs map is replaced by an empty one.
func NewElement(tag string, attrs map[string]string) *Element {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Element{Tag: strings.ToLower(tag), Attrs: attrs}
}

// Parent returns the enclosing element.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// AppendChild adds n as the last child of e and returns n.
func (e *Element) AppendChild(n Node) Node {
	n.setParent(e)
	e.Children = append(e.Children, n)
	return n
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrOr returns the attribute value, or def when absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attrs[name]; ok {
		return v
	}
	return def
}

// HasClass reports whether the class attribute contains name as a whitespace-separated token.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

// Text is a run of character data. Data holds entity-decoded text,
// whitespace untouched.
type Text struct {
	Data   string
	parent *Element
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Parent returns the enclosing element.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// findFirst returns the first element in document order (root included)
// whose tag equals tag, or nil.
func findFirst(root *Element, tag string) *Element {
	if root.Tag == tag {
		return root
	}
	for _, child := range root.Children {
		if el, ok := child.(*Element); ok {
			if found := findFirst(el, tag); found != nil {
				return found
			}
		}
	}
	return nil
}
