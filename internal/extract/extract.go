// Package extract narrows a full HTML page down to the part worth
// converting, and reads page metadata for front matter.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Sentinel errors.
var (
	ErrInvalidSelector  = errors.New("invalid CSS selector")
	ErrSelectorNotFound = errors.New("selector matched nothing")
	ErrNoContainer      = errors.New("no content container found")
	ErrParseHTML        = errors.New("parsing HTML")
)

// NoiseSelectors are removed when an Extractor strips noise. They carry
// no readable content or are site chrome around it.
var NoiseSelectors = []string{
	"script", "style", "noscript", "template",
	"iframe", "object", "embed",
	"svg", "canvas",
	"nav", "form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// containerTags are tried in order when MainContent is set.
var containerTags = []string{"main", "article", "body"}

// Extractor selects the fragment of a page to convert.
type Extractor struct {
	Selector    string // CSS selector; the first match is kept
	StripNoise  bool   // remove NoiseSelectors first
	MainContent bool   // keep the first main, article or body when Selector is empty
}

// Enabled reports whether Extract would change its input.
func (e Extractor) Enabled() bool {
	return e.Selector != "" || e.StripNoise || e.MainContent
}

// Extract returns the selected fragment serialized as HTML.
func (e Extractor) Extract(html string) (string, error) {
	var matcher cascadia.Selector
	if e.Selector != "" {
		sel, err := cascadia.Compile(e.Selector)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidSelector, e.Selector, err)
		}
		matcher = sel
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseHTML, err)
	}

	if e.StripNoise {
		for _, sel := range NoiseSelectors {
			doc.Find(sel).Remove()
		}
	}

	switch {
	case matcher != nil:
		content := doc.FindMatcher(matcher)
		if content.Length() == 0 {
			return "", fmt.Errorf("%w: %q", ErrSelectorNotFound, e.Selector)
		}
		return outerHTML(content.First())

	case e.MainContent:
		for _, tag := range containerTags {
			if sel := doc.Find(tag); sel.Length() > 0 {
				return outerHTML(sel.First())
			}
		}
		return "", ErrNoContainer

	default:
		out, err := doc.Html()
		if err != nil {
			return "", fmt.Errorf("serializing document: %w", err)
		}
		return out, nil
	}
}

func outerHTML(sel *goquery.Selection) (string, error) {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return out, nil
}
