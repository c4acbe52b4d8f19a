package html2md

import (
	"strings"
	"unicode"
)

// StrongRule wraps content in the configured strong delimiter.
func StrongRule(el *Element, ctx Context) string {
	return wrapInline(ctx.ProcessChildren(el), ctx.Options().StrongDelimiter)
}

// EmphasisRule wraps content in the configured emphasis delimiter.
func EmphasisRule(el *Element, ctx Context) string {
	return wrapInline(ctx.ProcessChildren(el), ctx.Options().EmDelimiter)
}

// StrikethroughRule wraps content in "~~".
func StrikethroughRule(el *Element, ctx Context) string {
	return wrapInline(ctx.ProcessChildren(el), "~~")
}

// wrapInline wraps content in delim while keeping a single leading and
// trailing space outside the delimiters, where Markdown requires it.
// Content made only of spaces is returned without delimiters.
func wrapInline(content, delim string) string {
	if content == "" {
		return ""
	}
	var prefix, suffix string
	text := content
	if strings.HasPrefix(text, " ") {
		prefix = " "
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	if strings.HasSuffix(text, " ") {
		suffix = " "
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}
	if text == "" {
		return prefix + suffix
	}
	return prefix + delim + text + delim + suffix
}

// CodeRule renders inline code from the raw text of el, unescaped.
// Content holding a backtick gets a double-backtick delimiter, and a
// space pads content that starts or ends with one.
func CodeRule(el *Element, _ Context) string {
	content := RawText(el)
	if content == "" {
		return ""
	}
	delim := "`"
	if strings.Contains(content, "`") {
		delim = "``"
	}
	pad := ""
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") {
		pad = " "
	}
	return delim + pad + content + pad + delim
}

// LinkRule renders an inline link. Without an href only the content remains.
func LinkRule(el *Element, ctx Context) string {
	content := ctx.ProcessChildren(el)
	href := el.AttrOr("href", "")
	if href == "" {
		return content
	}
	return "[" + content + "](" + href + titlePart(el) + ")"
}

// ImageRule renders an image. Without a src nothing is rendered.
func ImageRule(el *Element, _ Context) string {
	src := el.AttrOr("src", "")
	if src == "" {
		return ""
	}
	return "![" + el.AttrOr("alt", "") + "](" + src + titlePart(el) + ")"
}

func titlePart(el *Element) string {
	if title := el.AttrOr("title", ""); title != "" {
		return ` "` + title + `"`
	}
	return ""
}

// RawText concatenates the text of every descendant of el in document
// order, without collapsing or escaping.
func RawText(el *Element) string {
	var sb strings.Builder
	appendRawText(&sb, el)
	return sb.String()
}

func appendRawText(sb *strings.Builder, el *Element) {
	for _, child := range el.Children {
		switch n := child.(type) {
		case *Text:
			sb.WriteString(n.Data)
		case *Element:
			appendRawText(sb, n)
		}
	}
}
