package html2md

import (
	"strings"
	"unicode"
)

var globalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"[", `\[`,
)

var tableGlobalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"[", `\[`,
)

// Escape neutralizes characters in text that Markdown would otherwise read
// as syntax. Pipes are escaped only when inTable is set.
//
// Passes run in a fixed order and each sees the output of the previous one:
// backslash, pipe, backtick and bracket first, then asterisks, then
// line-start markers, then the look-ahead cases (image bang, tag-like
// angle brackets) and finally underscores at word edges.
func Escape(text string, inTable bool) string {
	if text == "" {
		return ""
	}
	if inTable {
		text = tableGlobalEscaper.Replace(text)
	} else {
		text = globalEscaper.Replace(text)
	}
	text = escapeAsterisks(text)
	text = escapeLineStarts(text)
	text = escapeLookahead(text)
	return escapeUnderscores(text)
}

// escapeAsterisks escapes every '*' except one with a space on both sides.
func escapeAsterisks(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '*' {
			spaced := i > 0 && s[i-1] == ' ' && i+1 < len(s) && s[i+1] == ' '
			if !spaced {
				sb.WriteByte('\\')
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// escapeLineStarts handles markers that only mean something at the start of a line.
func escapeLineStarts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	if line[0] == '#' {
		line = `\` + line
	}
	if len(line) > 1 && (line[0] == '-' || line[0] == '+') && line[1] == ' ' {
		line = `\` + line
	}
	if line[0] == '>' {
		line = `\` + line
	}
	if n := leadingDigits(line); n > 0 && len(line) > n+1 && line[n] == '.' && line[n+1] == ' ' {
		line = line[:n] + `\` + line[n:]
	}
	if strings.HasPrefix(line, "~~~") {
		line = `\` + line
	}
	return line
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// escapeLookahead escapes '!' before an escaped bracket and '<' before
// anything that could open a tag, comment or declaration.
func escapeLookahead(s string) string {
	if !strings.ContainsAny(s, "!<") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '!' && strings.HasPrefix(s[i+1:], `\[`):
			sb.WriteByte('\\')
		case c == '<' && i+1 < len(s) && opensTag(s[i+1]):
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func opensTag(c byte) bool {
	return c == '/' || c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// escapeUnderscores escapes '_' when it sits at a word boundary, that is
// when the rune before or the rune after it is not a word character.
func escapeUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i, r := range runes {
		if r == '_' {
			before := i > 0 && isWordRune(runes[i-1])
			after := i+1 < len(runes) && isWordRune(runes[i+1])
			if !before || !after {
				sb.WriteRune('\\')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
