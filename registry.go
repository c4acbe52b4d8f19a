package html2md

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Rule renders one element to Markdown. Rules recurse by calling
// ctx.ProcessChildren, optionally on a derived context. A rule never
// fails; input it cannot render is degraded to plain content.
type Rule func(el *Element, ctx Context) string

// Registry maps lowercase tag names to rules. It is not safe for
// concurrent mutation; a Converter only reads it after construction.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns a registry holding the standard rule set.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for tag, rule := range defaultRules() {
		r.rules[tag] = rule
	}
	return r
}

func defaultRules() map[string]Rule {
	return map[string]Rule{
		"p":      ParagraphRule,
		"br":     LineBreakRule,
		"hr":     ThematicBreakRule,
		"h1":     HeadingRule,
		"h2":     HeadingRule,
		"h3":     HeadingRule,
		"h4":     HeadingRule,
		"h5":     HeadingRule,
		"h6":     HeadingRule,
		"pre":    PreRule,
		"b":      StrongRule,
		"strong": StrongRule,
		"i":      EmphasisRule,
		"em":     EmphasisRule,
		"s":      StrikethroughRule,
		"del":    StrikethroughRule,
		"strike": StrikethroughRule,
		"code":   CodeRule,
		"a":      LinkRule,
		"img":    ImageRule,
		"ul":     ListRule,
		"ol":     ListRule,
		"li":     ListItemRule,
		"table":  TableRule,
		"thead":  TableSectionRule,
		"tbody":  TableSectionRule,
		"tfoot":  TableSectionRule,
		"tr":     TableRowRule,
		"th":     TableCellRule,
		"td":     TableCellRule,
	}
}

// Register binds rule to tag, replacing any earlier binding.
// The tag is matched case-insensitively.
func (r *Registry) Register(tag string, rule Rule) error {
	tag = normalizeTag(tag)
	if tag == "" {
		return ErrEmptyTagName
	}
	if rule == nil {
		return fmt.Errorf("%w: tag %q", ErrNilRule, tag)
	}
	r.rules[tag] = rule
	return nil
}

// Remove drops the binding for tag so its elements render transparently.
func (r *Registry) Remove(tag string) {
	delete(r.rules, normalizeTag(tag))
}

// Lookup returns the rule bound to tag.
func (r *Registry) Lookup(tag string) (Rule, bool) {
	rule, ok := r.rules[normalizeTag(tag)]
	return rule, ok
}

// Tags returns the bound tag names in sorted order.
func (r *Registry) Tags() []string {
	return slices.Sorted(maps.Keys(r.rules))
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{rules: maps.Clone(r.rules)}
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
