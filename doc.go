// Package html2md converts HTML to CommonMark Markdown with GitHub-style
// tables and strikethrough.
//
// # Quick Start
//
// Create a converter once and reuse it; it is safe for concurrent use:
//
//	conv, err := html2md.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	md, err := conv.ConvertString("<h1>Hello</h1><p>World</p>")
//	// md == "# Hello\n\nWorld"
//
// # Conversion Model
//
// HTML is parsed into a tree of Element and Text nodes (Parse, or
// TreeBuilder for other event sources). The tree is rendered depth-first:
// each element is handed to the Rule registered for its tag, and elements
// without a rule render their children transparently. Rules receive an
// immutable Context carrying the list type, indentation depth, whether
// the element sits in a table, and the converter Options. A rule that
// needs different state for its children derives a new context:
//
//	ctx.SubContext(html2md.WithListType(html2md.ListOrdered), html2md.IncrementIndent())
//
// Text is whitespace-collapsed and escaped so that it never reads as
// Markdown syntax. Output is accumulated in a Buffer that never lets more
// than two consecutive newlines through.
//
// # Configuration
//
// Use functional options to choose the Markdown flavour:
//
//	conv, err := html2md.NewConverter(
//	    html2md.WithBulletCharacter("-"),
//	    html2md.WithStrongDelimiter("__"),
//	    html2md.WithEmDelimiter("_"),
//	)
//
// # Custom Rules
//
// Replace or add rules per tag. Rules may pass data to descendants through
// typed keys:
//
//	var depth = html2md.NewKey[int]("blockquote-depth")
//
//	conv, err := html2md.NewConverter(
//	    html2md.WithRule("blockquote", func(el *html2md.Element, ctx html2md.Context) string {
//	        d, _ := html2md.Value(ctx, depth)
//	        inner := html2md.WithValue(ctx, depth, d+1).ProcessChildren(el)
//	        return "\n\n" + quote(inner, d+1) + "\n\n"
//	    }),
//	)
//
// Value panics when a key is read with a different type than it was
// stored with; Convert recovers such panics into ErrInternal.
//
// # Full Pages
//
// Convert works on whole pages: it can narrow the page to a CSS selector
// or its main content, strip scripts and site chrome, and render the
// produced Markdown back to an HTML preview:
//
//	result, err := conv.Convert(ctx, html2md.Input{
//	    HTML:       page,
//	    Selector:   "article",
//	    StripNoise: true,
//	    Preview:    true,
//	})
//
// The html2md command in cmd/html2md converts files, directories and URLs
// in parallel on top of this package.
package html2md
