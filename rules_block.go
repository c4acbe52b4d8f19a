package html2md

import "strings"

// ParagraphRule renders a paragraph as a block. Empty paragraphs vanish.
func ParagraphRule(el *Element, ctx Context) string {
	content := strings.TrimSpace(ctx.ProcessChildren(el))
	if content == "" {
		return ""
	}
	return block(content)
}

// HeadingRule renders h1..h6 as an ATX heading. The level is the last
// digit of the tag name, 1 when the tag carries none.
func HeadingRule(el *Element, ctx Context) string {
	content := strings.TrimSpace(ctx.ProcessChildren(el))
	if content == "" {
		return ""
	}
	return block(strings.Repeat("#", headingLevel(el.Tag)) + " " + content)
}

func headingLevel(tag string) int {
	if tag == "" {
		return 1
	}
	if c := tag[len(tag)-1]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return 1
}

// LineBreakRule renders a hard line break.
func LineBreakRule(*Element, Context) string {
	return "  \n"
}

// ThematicBreakRule renders a horizontal rule.
func ThematicBreakRule(*Element, Context) string {
	return "\n\n---\n\n"
}

// block surrounds content with blank lines; the Buffer merges the
// blank lines of adjacent blocks.
func block(content string) string {
	return "\n\n" + content + "\n\n"
}
