package html2md

import "fmt"

// Input is one document to convert.
type Input struct {
	HTML string // required

	// Selector keeps only the first element matching this CSS selector.
	Selector string
	// StripNoise removes scripts, styles, navigation and similar chrome first.
	StripNoise bool
	// MainContent keeps only the first main, article or body element
	// when Selector is empty.
	MainContent bool

	// Preview also renders the produced Markdown back to an HTML page.
	Preview bool
	// Title is the preview page title.
	Title string
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Markdown    string
	PreviewHTML []byte // set when Input.Preview is true
}

// Option configures a Converter.
type Option func(*Converter)

// WithOptions replaces all Markdown flavour options at once.
func WithOptions(opts Options) Option {
	return func(c *Converter) { c.opts = opts }
}

// WithBulletCharacter sets the unordered list marker.
func WithBulletCharacter(bullet string) Option {
	return func(c *Converter) { c.opts.BulletCharacter = bullet }
}

// WithStrongDelimiter sets the delimiter used for strong text.
func WithStrongDelimiter(delim string) Option {
	return func(c *Converter) { c.opts.StrongDelimiter = delim }
}

// WithEmDelimiter sets the delimiter used for emphasis.
func WithEmDelimiter(delim string) Option {
	return func(c *Converter) { c.opts.EmDelimiter = delim }
}

// WithLinkStyle sets how links are written.
func WithLinkStyle(style LinkStyle) Option {
	return func(c *Converter) { c.opts.LinkStyle = style }
}

// WithRule binds rule to tag, replacing the default rule for that tag.
// Options apply in order, so the last rule given for a tag wins.
// Panics if tag is empty or rule is nil (programmer error).
func WithRule(tag string, rule Rule) Option {
	if normalizeTag(tag) == "" {
		panic("html2md: WithRule tag must not be empty")
	}
	if rule == nil {
		panic(fmt.Sprintf("html2md: WithRule rule for %q must not be nil", tag))
	}
	return func(c *Converter) {
		_ = c.registry.Register(tag, rule)
	}
}

// WithoutRule removes the rule for tag so its elements render transparently.
func WithoutRule(tag string) Option {
	return func(c *Converter) { c.registry.Remove(tag) }
}

// WithRegistry starts from a copy of r instead of the default rule set.
// Later WithRule options still apply on top.
// Panics if r is nil (programmer error).
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("html2md: WithRegistry registry must not be nil")
	}
	return func(c *Converter) { c.registry = r.Clone() }
}

// WithPreviewStyle sets the chroma style used for code in previews.
func WithPreviewStyle(style string) Option {
	return func(c *Converter) { c.previewStyle = style }
}
