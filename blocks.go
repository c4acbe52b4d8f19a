package html2md

import "strings"

// blockTags are rendered as blocks; whitespace in adjacent text is dropped.
// "root" covers the synthetic parse root.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"canvas": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "noscript": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "thead": true, "tbody": true,
	"tfoot": true, "tr": true, "th": true, "td": true, "ul": true,
	"video": true, "body": true, "html": true, RootTag: true,
}

// IsBlock reports whether n is an element with a block-level tag.
func IsBlock(n Node) bool {
	el, ok := n.(*Element)
	return ok && blockTags[strings.ToLower(el.Tag)]
}
