package html2md

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never have content; they are closed as soon as they open.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// paragraphClosers lists tags whose opening ends an open paragraph.
var paragraphClosers = []string{
	"address", "article", "aside", "blockquote", "details", "div", "dl",
	"fieldset", "figcaption", "figure", "footer", "form", "header", "hr",
	"main", "nav", "ol", "p", "pre", "section", "table", "ul",
	"h1", "h2", "h3", "h4", "h5", "h6",
}

// impliedCloses maps an opening tag to the open elements it terminates.
var impliedCloses = func() map[string]map[string]bool {
	m := map[string]map[string]bool{
		"li":       {"li": true},
		"tr":       {"tr": true, "th": true, "td": true},
		"th":       {"th": true, "td": true},
		"td":       {"th": true, "td": true},
		"thead":    {"tbody": true, "tfoot": true},
		"tbody":    {"thead": true, "tbody": true, "tfoot": true},
		"tfoot":    {"thead": true, "tbody": true},
		"dt":       {"dt": true, "dd": true},
		"dd":       {"dt": true, "dd": true},
		"option":   {"option": true},
		"optgroup": {"optgroup": true, "option": true},
	}
	for _, tag := range paragraphClosers {
		if m[tag] == nil {
			m[tag] = map[string]bool{}
		}
		m[tag]["p"] = true
	}
	return m
}()

// Parse tokenizes HTML from r and builds a node tree under a synthetic
// "root" element. Malformed markup never fails: unknown structure is kept
// as-is and stray end tags are dropped. Only read errors are returned.
func Parse(r io.Reader) (*Element, error) {
	b := NewTreeBuilder()
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return b.Root(), nil

		case html.StartTagToken:
			tok := z.Token()
			openTag(b, tok)
			if voidElements[tok.Data] {
				b.CloseTag(tok.Data)
			}

		case html.SelfClosingTagToken:
			tok := z.Token()
			openTag(b, tok)
			b.CloseTag(tok.Data)

		case html.EndTagToken:
			tok := z.Token()
			b.CloseTag(tok.Data)

		case html.TextToken:
			b.Text(string(z.Text()))
		}
		// Comments and doctypes carry no content.
	}
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

func openTag(b *TreeBuilder, tok html.Token) {
	if closes, ok := impliedCloses[tok.Data]; ok {
		for cur := b.Current(); cur != b.Root() && closes[cur.Tag]; cur = b.Current() {
			b.CloseTag(cur.Tag)
		}
	}
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		if _, dup := attrs[a.Key]; !dup {
			attrs[a.Key] = a.Val
		}
	}
	b.OpenTag(tok.Data, attrs)
}
