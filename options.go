package html2md

import "fmt"

// LinkStyle selects how links are written.
type LinkStyle string

// Link style constants. Only inline links are produced.
const (
	LinkStyleInline LinkStyle = "inline"
)

// Default option values.
const (
	DefaultBulletCharacter = "*"
	DefaultStrongDelimiter = "**"
	DefaultEmDelimiter     = "*"
)

// Options holds the Markdown flavour choices rules consult while rendering.
type Options struct {
	BulletCharacter string    // "*", "-" or "+"
	StrongDelimiter string    // "**" or "__"
	EmDelimiter     string    // "*" or "_"
	LinkStyle       LinkStyle // LinkStyleInline
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		BulletCharacter: DefaultBulletCharacter,
		StrongDelimiter: DefaultStrongDelimiter,
		EmDelimiter:     DefaultEmDelimiter,
		LinkStyle:       LinkStyleInline,
	}
}

// Validate checks that every field holds a value Markdown understands.
func (o Options) Validate() error {
	switch o.BulletCharacter {
	case "*", "-", "+":
	default:
		return fmt.Errorf("%w: %q (must be *, - or +)", ErrInvalidBullet, o.BulletCharacter)
	}
	switch o.StrongDelimiter {
	case "**", "__":
	default:
		return fmt.Errorf("%w: strong %q (must be ** or __)", ErrInvalidDelimiter, o.StrongDelimiter)
	}
	switch o.EmDelimiter {
	case "*", "_":
	default:
		return fmt.Errorf("%w: emphasis %q (must be * or _)", ErrInvalidDelimiter, o.EmDelimiter)
	}
	if o.LinkStyle != LinkStyleInline {
		return fmt.Errorf("%w: %q", ErrInvalidLinkStyle, o.LinkStyle)
	}
	return nil
}
