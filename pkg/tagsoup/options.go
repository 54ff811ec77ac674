package tagsoup

import "github.com/yaklabco/tagsoup/pkg/tags"

// Options configures the parse and stringify pipeline.
// The zero value disables every table; start from DefaultOptions and
// adjust instead.
type Options struct {
	// VoidTags never have children or a closing tag.
	VoidTags tags.Set

	// ClosingTags implicitly close a same-named open sibling.
	ClosingTags tags.Set

	// ChildlessTags are raw-text tags whose content is not parsed as markup.
	ChildlessTags tags.Set

	// ClosingTagAncestorBreakers suppress auto-closing when interposed.
	ClosingTagAncestorBreakers map[string]tags.Set

	// IncludePositions retains source spans on the returned nodes.
	// Spans are always computed internally; this flag only controls
	// whether the formatting pass keeps them.
	IncludePositions bool
}

// DefaultOptions returns the standard HTML tag tables with positions
// excluded from the output.
func DefaultOptions() Options {
	return Options{
		VoidTags:                   tags.DefaultVoid(),
		ClosingTags:                tags.DefaultClosing(),
		ChildlessTags:              tags.DefaultChildless(),
		ClosingTagAncestorBreakers: tags.DefaultClosingTagAncestorBreakers(),
	}
}
