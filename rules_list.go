package html2md

import "strings"

// listIndent is the indentation added per nesting level.
const listIndent = "    "

// ListRule renders ul and ol. A list inside another list is nested: it
// indents its items one level deeper and adds no blank lines of its own.
func ListRule(el *Element, ctx Context) string {
	kind := ListUnordered
	if strings.EqualFold(el.Tag, "ol") {
		kind = ListOrdered
	}
	nested := ctx.ListType() != ListNone

	changes := []ContextChange{WithListType(kind)}
	if nested {
		changes = append(changes, IncrementIndent())
	}
	content := ctx.SubContext(changes...).ProcessChildren(el)
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if nested {
		return content
	}
	return block(content)
}

// ListItemRule renders an item on its own line, indented for its depth.
// Ordered items all use "1." and let the renderer number them.
func ListItemRule(el *Element, ctx Context) string {
	marker := ctx.Options().BulletCharacter + " "
	if ctx.ListType() == ListOrdered {
		marker = "1. "
	}
	content := strings.TrimSpace(ctx.ProcessChildren(el))
	return "\n" + strings.Repeat(listIndent, ctx.IndentLevel()) + marker + content
}
