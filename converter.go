package html2md

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-html2md/internal/extract"
	"github.com/alnah/go-html2md/internal/preview"
)

// previewRenderer abstracts Markdown to HTML rendering for previews.
type previewRenderer interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// Compile-time interface implementation checks.
var _ previewRenderer = (*preview.Renderer)(nil)

// Converter turns HTML into Markdown by dispatching each element to the
// rule registered for its tag. Create with NewConverter. A Converter is
// read-only after construction and safe for concurrent use.
type Converter struct {
	registry     *Registry
	opts         Options
	previewStyle string
	previewer    previewRenderer
}

// NewConverter creates a Converter holding the default rule set and
// options, adjusted by opts. Returns an error if the resulting options
// are invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		registry: DefaultRegistry(),
		opts:     DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.opts.Validate(); err != nil {
		return nil, err
	}
	if c.previewer == nil {
		c.previewer = preview.NewRenderer(c.previewStyle)
	}
	return c, nil
}

// Options returns the options the converter renders with.
func (c *Converter) Options() Options { return c.opts }

// Tags returns the tags that have a rule.
func (c *Converter) Tags() []string { return c.registry.Tags() }

// ConvertNode renders a tree built by Parse or TreeBuilder. Only the
// first body element is rendered when the tree has one; otherwise the
// whole tree is. The result has no leading or trailing whitespace.
func (c *Converter) ConvertNode(root *Element) string {
	if root == nil {
		return ""
	}
	start := root
	if body := findFirst(root, "body"); body != nil {
		start = body
	}
	ctx := NewContext(c.registry, c.opts)
	return strings.TrimSpace(ctx.ProcessChildren(start))
}

// ConvertString parses and converts an HTML document. Empty input
// yields empty output.
func (c *Converter) ConvertString(html string) (string, error) {
	return c.ConvertReader(strings.NewReader(html))
}

// ConvertReader parses and converts an HTML document read from r.
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	root, err := Parse(r)
	if err != nil {
		return "", err
	}
	return c.ConvertNode(root), nil
}

// Convert runs extraction, conversion and the optional preview for one
// input. The context is checked between stages and bounds the preview.
// Panics raised by rules are recovered and returned wrapped in
// ErrInternal.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrInternal, rerr)
			} else {
				err = fmt.Errorf("%w: %v", ErrInternal, r)
			}
			result = nil
		}
	}()

	if strings.TrimSpace(input.HTML) == "" {
		return nil, ErrEmptyHTML
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := input.HTML
	ext := extract.Extractor{
		Selector:    input.Selector,
		StripNoise:  input.StripNoise,
		MainContent: input.MainContent,
	}
	if ext.Enabled() {
		content, err = ext.Extract(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExtract, err)
		}
	}

	markdown, err := c.ConvertString(content)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ConvertResult{Markdown: markdown}
	if !input.Preview {
		return res, nil
	}

	page, err := c.previewer.ToHTML(ctx, input.Title, markdown)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPreview, err)
	}
	res.PreviewHTML = []byte(page)
	return res, nil
}
