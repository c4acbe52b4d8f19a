package html2md

import "strings"

// TableRule renders a table as a block, with pipes in its text escaped.
func TableRule(el *Element, ctx Context) string {
	content := strings.TrimSpace(ctx.SubContext(WithinTable(true)).ProcessChildren(el))
	if content == "" {
		return ""
	}
	return block(content)
}

// TableSectionRule renders thead, tbody and tfoot transparently.
func TableSectionRule(el *Element, ctx Context) string {
	return ctx.ProcessChildren(el)
}

// TableRowRule renders one row. A row is a header row when its parent is
// a thead or it holds a th cell; header rows are followed by a separator
// with one column per cell.
func TableRowRule(el *Element, ctx Context) string {
	content := strings.TrimSpace(ctx.ProcessChildren(el))
	if content == "" {
		return ""
	}
	row := "| " + content

	header := el.Parent() != nil && el.Parent().Tag == "thead"
	cols := 0
	for _, child := range el.Children {
		cell, ok := child.(*Element)
		if !ok {
			continue
		}
		switch cell.Tag {
		case "th":
			header = true
			cols++
		case "td":
			cols++
		}
	}
	if header && cols > 0 {
		return row + "\n" + strings.Repeat("|---", cols) + "|\n"
	}
	return row + "\n"
}

// TableCellRule renders a cell as its trimmed content followed by a pipe.
func TableCellRule(el *Element, ctx Context) string {
	return " " + strings.TrimSpace(ctx.ProcessChildren(el)) + " |"
}
