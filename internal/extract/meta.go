package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Meta is the page metadata worth carrying into front matter.
type Meta struct {
	Title       string
	Lang        string
	Description string
}

// IsZero reports whether no field was found.
func (m Meta) IsZero() bool {
	return m == Meta{}
}

// Metadata reads the document title, language and description. Missing
// values are left empty; unparsable input yields a zero Meta.
func Metadata(html string) Meta {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Meta{}
	}

	m := Meta{
		Title: collapse(doc.Find("title").First().Text()),
		Lang:  strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
	}
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(s.AttrOr("name", ""), "description") {
			m.Description = collapse(s.AttrOr("content", ""))
			return false
		}
		return true
	})
	if m.Title == "" {
		m.Title = collapse(doc.Find("h1").First().Text())
	}
	return m
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
