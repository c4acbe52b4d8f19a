package html2md

import "strings"

// RootTag is the tag of the synthetic element every built tree hangs from.
const RootTag = "root"

// TreeBuilder folds a stream of open, close and text events into a node tree.
// It never fails: stray close tags are dropped and unclosed elements stay
// open until the stream ends.
type TreeBuilder struct {
	root    *Element
	current *Element
}

// NewTreeBuilder returns a builder positioned at a fresh root element.
func NewTreeBuilder() *TreeBuilder {
	root := NewElement(RootTag, nil)
	return &TreeBuilder{root: root, current: root}
}

// OpenTag appends a new element under the current one and descends into it.
func (b *TreeBuilder) OpenTag(name string, attrs map[string]string) {
	el := NewElement(name, attrs)
	b.current.AppendChild(el)
	b.current = el
}

// CloseTag closes the nearest open element named name, along with anything
// still open inside it. A close tag with no matching open element is ignored.
func (b *TreeBuilder) CloseTag(name string) {
	name = strings.ToLower(name)
	for el := b.current; el != nil && el != b.root; el = el.parent {
		if el.Tag == name {
			b.current = el.parent
			return
		}
	}
}

// Text appends character data under the current element.
func (b *TreeBuilder) Text(data string) {
	if data == "" {
		return
	}
	b.current.AppendChild(NewText(data))
}

// Current returns the element that receives the next event.
func (b *TreeBuilder) Current() *Element { return b.current }

// Root returns the synthetic root element.
func (b *TreeBuilder) Root() *Element { return b.root }
