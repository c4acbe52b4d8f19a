// Package preview renders converted Markdown back to HTML so a conversion
// can be inspected in a browser.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrRender indicates Markdown could not be rendered.
var ErrRender = errors.New("preview rendering failed")

// DefaultStyle is the chroma style used for code blocks.
const DefaultStyle = "github"

// pageTemplate wraps goldmark's fragment output in an HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s</body>
</html>
`

// Renderer converts Markdown to a standalone HTML page.
type Renderer struct {
	md  goldmark.Markdown
	css string
}

// NewRenderer creates a Renderer with GFM tables and strikethrough and
// class-based syntax highlighting using the named chroma style. An
// unknown style falls back to chroma's default.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	var css bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(style)); err != nil {
		css.Reset()
	}
	return &Renderer{md: md, css: css.String()}
}

// ToHTML renders content under the given page title. Goldmark has no
// context support, so rendering runs in a goroutine and the call returns
// early when ctx is done.
func (r *Renderer) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		if strings.TrimSpace(title) == "" {
			title = "Preview"
		}
		done <- result{html: fmt.Sprintf(pageTemplate, html.EscapeString(title), r.css, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
