// Package tags provides the HTML tag classification tables that drive
// lexing and parsing decisions. The tables are plain data: callers may
// use the defaults as-is, extend copies of them, or supply their own.
package tags

import "strings"

// Set is a case-insensitive set of tag names.
// Names are stored lower-cased; lookups lower-case their argument.
type Set map[string]struct{}

// NewSet creates a Set containing the given tag names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a tag name into the set.
func (s Set) Add(name string) {
	s[strings.ToLower(name)] = struct{}{}
}

// Has reports whether the set contains the given tag name.
func (s Set) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for name := range s {
		clone[name] = struct{}{}
	}
	return clone
}

// Names returns the tag names in the set, in unspecified order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// DefaultVoid returns the tags that can never have children or a closing
// tag. The doctype declaration is treated as a void tag so that
// "<!doctype html>" parses as a childless element.
func DefaultVoid() Set {
	return NewSet(
		"!doctype", "area", "base", "br", "col", "command", "embed", "hr",
		"img", "input", "keygen", "link", "meta", "param", "source",
		"track", "wbr",
	)
}

// DefaultClosing returns the tags that implicitly close a same-named open
// ancestor when a new one starts (e.g. consecutive <p> or <li> siblings).
func DefaultClosing() Set {
	return NewSet(
		"html", "head", "body", "p", "dt", "dd", "li", "option",
		"thead", "th", "tbody", "tr", "td", "tfoot", "colgroup",
	)
}

// DefaultChildless returns the raw-text tags whose content is never
// tokenized as markup.
func DefaultChildless() Set {
	return NewSet("style", "script", "template")
}

// DefaultClosingTagAncestorBreakers returns, per auto-closing tag, the
// ancestor tags that suppress the auto-close when interposed between the
// new tag and its nearest same-named open ancestor. A nested list, for
// example, keeps an inner <li> from closing the outer one.
func DefaultClosingTagAncestorBreakers() map[string]Set {
	return map[string]Set{
		"li":    NewSet("ul", "ol", "menu"),
		"dt":    NewSet("dl"),
		"dd":    NewSet("dl"),
		"tbody": NewSet("table"),
		"thead": NewSet("table"),
		"tfoot": NewSet("table"),
		"tr":    NewSet("table"),
		"td":    NewSet("table"),
	}
}
