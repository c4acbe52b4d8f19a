package html2md

import "strings"

// PreRule renders a fenced code block. A pre holding a single code
// element (blank text aside) takes its language from the code element's
// class; anything else is fenced without a language.
func PreRule(el *Element, _ Context) string {
	if code := soleCodeChild(el); code != nil {
		return fence(codeLanguage(code.AttrOr("class", "")), RawText(code))
	}
	return fence("", RawText(el))
}

func soleCodeChild(pre *Element) *Element {
	var only Node
	for _, child := range pre.Children {
		if t, ok := child.(*Text); ok && strings.TrimSpace(t.Data) == "" {
			continue
		}
		if only != nil {
			return nil
		}
		only = child
	}
	if el, ok := only.(*Element); ok && strings.EqualFold(el.Tag, "code") {
		return el
	}
	return nil
}

// codeLanguage picks the first "lang-" or "language-" class, falling back
// to the first class token.
func codeLanguage(class string) string {
	if class == "" {
		return ""
	}
	tokens := strings.Split(class, " ")
	for _, tok := range tokens {
		if lang, ok := strings.CutPrefix(tok, "lang-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(tok, "language-"); ok {
			return lang
		}
	}
	return tokens[0]
}

func fence(lang, content string) string {
	return "\n\n```" + lang + "\n" + content + "\n```\n\n"
}
