package html2md

import (
	"fmt"
	"strings"
	"unicode"
)

// ListType tells rules which kind of list, if any, encloses them.
type ListType int

// List types.
const (
	ListNone ListType = iota
	ListUnordered
	ListOrdered
)

// String returns the list type name.
func (t ListType) String() string {
	switch t {
	case ListNone:
		return "none"
	case ListUnordered:
		return "unordered"
	case ListOrdered:
		return "ordered"
	}
	return fmt.Sprintf("ListType(%d)", int(t))
}

// Context carries the rendering state a rule sees: the options, the
// enclosing list, the indentation depth, whether a table encloses the
// node, and any values earlier rules attached for their descendants.
//
// A Context is an immutable value. SubContext and WithValue return
// derived copies; the receiver is never changed, so sibling subtrees
// rendered with different derived contexts never observe each other.
type Context struct {
	registry    *Registry
	options     Options
	listType    ListType
	indentLevel int
	inTable     bool
	data        *dataEntry
}

// NewContext returns a root context dispatching through registry.
func NewContext(registry *Registry, opts Options) Context {
	return Context{registry: registry, options: opts}
}

// Options returns the converter options.
func (c Context) Options() Options { return c.options }

// ListType returns the kind of the innermost enclosing list.
func (c Context) ListType() ListType { return c.listType }

// IndentLevel returns the list nesting depth below the outermost list.
func (c Context) IndentLevel() int { return c.indentLevel }

// InTable reports whether a table encloses the node being rendered.
func (c Context) InTable() bool { return c.inTable }

// ContextChange adjusts a context derived with SubContext.
type ContextChange func(*Context)

// WithListType sets the enclosing list kind.
func WithListType(t ListType) ContextChange {
	return func(c *Context) { c.listType = t }
}

// IncrementIndent adds one nesting level.
func IncrementIndent() ContextChange {
	return func(c *Context) { c.indentLevel++ }
}

// WithinTable sets the table flag.
func WithinTable(inTable bool) ContextChange {
	return func(c *Context) { c.inTable = inTable }
}

// SubContext returns a copy of c with changes applied. Values attached
// with WithValue carry over.
func (c Context) SubContext(changes ...ContextChange) Context {
	for _, change := range changes {
		change(&c)
	}
	return c
}

// ProcessChildren renders the children of el in order and joins the
// results through a Buffer. Elements dispatch to the rule registered for
// their tag, or render their own children transparently when none is.
// Text is whitespace-collapsed and escaped; a text node next to a block
// sibling loses its whitespace on that side.
func (c Context) ProcessChildren(el *Element) string {
	var buf Buffer
	for i, child := range el.Children {
		switch n := child.(type) {
		case *Text:
			out := Escape(collapseWhitespace(n.Data), c.inTable)
			if i > 0 && IsBlock(el.Children[i-1]) {
				out = strings.TrimLeftFunc(out, unicode.IsSpace)
			}
			if i+1 < len(el.Children) && IsBlock(el.Children[i+1]) {
				out = strings.TrimRightFunc(out, unicode.IsSpace)
			}
			buf.Append(out)
		case *Element:
			buf.Append(c.processElement(n))
		}
	}
	return buf.String()
}

func (c Context) processElement(el *Element) string {
	if c.registry != nil {
		if rule, ok := c.registry.Lookup(el.Tag); ok {
			return rule(el, c)
		}
	}
	return c.ProcessChildren(el)
}

// collapseWhitespace replaces every run of ASCII whitespace with one space.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
		default:
			sb.WriteByte(s[i])
			inSpace = false
		}
	}
	return sb.String()
}
