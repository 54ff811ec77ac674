// Package tagsoup converts real-world HTML into a node tree and back.
//
// The pipeline is lex → parse → format: the lexer tokenizes the source,
// the parser builds a raw tree with tag-soup recovery (auto-closing,
// stray-closer discarding, implicit closes at end of input), and the
// format pass lower-cases tag names and splits raw attribute text into
// key/value pairs.
//
// Parsing is total: any input string yields a best-effort tree, and no
// path returns an error. Malformed markup degrades deterministically
// rather than failing.
package tagsoup

import (
	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/lexer"
	"github.com/yaklabco/tagsoup/pkg/parser"
	"github.com/yaklabco/tagsoup/pkg/stringify"
)

// Parse converts an HTML source string into a node tree using the
// default tag tables. Positions are not retained; use ParseWithOptions
// for that.
func Parse(html string) []*hast.Node {
	return ParseWithOptions(html, DefaultOptions())
}

// ParseWithOptions converts an HTML source string into a node tree.
func ParseWithOptions(html string, opts Options) []*hast.Node {
	tokens := lexer.Lex(html, lexer.Options{
		ChildlessTags: opts.ChildlessTags,
	})
	raw := parser.Parse(tokens, parser.Options{
		VoidTags:                   opts.VoidTags,
		ClosingTags:                opts.ClosingTags,
		ClosingTagAncestorBreakers: opts.ClosingTagAncestorBreakers,
	})
	return formatTree(raw, opts.IncludePositions)
}

// Stringify re-emits a node tree as HTML text using the default tag tables.
func Stringify(nodes []*hast.Node) string {
	return StringifyWithOptions(nodes, DefaultOptions())
}

// StringifyWithOptions re-emits a node tree as HTML text.
func StringifyWithOptions(nodes []*hast.Node, opts Options) string {
	return stringify.ToHTML(nodes, stringify.Options{
		VoidTags: opts.VoidTags,
	})
}
