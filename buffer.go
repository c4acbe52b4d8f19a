package html2md

import "strings"

// maxBlankRun is the most consecutive newlines a Buffer will hold at any
// append boundary: one blank line between blocks.
const maxBlankRun = 2

// Buffer accumulates Markdown fragments and collapses runs of newlines
// formed where two fragments meet to at most two. Newlines inside a
// single fragment are kept verbatim.
type Buffer struct {
	sb       strings.Builder
	trailing int // newlines at the end of sb
}

// Append adds text, dropping leading newlines as needed so that the
// newlines ending the buffer plus those starting text total at most two.
// Appending an empty string is a no-op.
func (b *Buffer) Append(text string) {
	if text == "" {
		return
	}
	leading := countLeading(text, '\n')
	if excess := b.trailing + leading - maxBlankRun; excess > 0 {
		if excess > leading {
			excess = leading
		}
		text = text[excess:]
	}
	if text == "" {
		return
	}
	b.sb.WriteString(text)
	if t := countTrailing(text, '\n'); t == len(text) {
		b.trailing += t
	} else {
		b.trailing = t
	}
}

// String returns the accumulated Markdown.
func (b *Buffer) String() string { return b.sb.String() }

// Len returns the number of bytes accumulated.
func (b *Buffer) Len() int { return b.sb.Len() }

func countLeading(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

func countTrailing(s string, c byte) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == c {
		n++
	}
	return n
}
