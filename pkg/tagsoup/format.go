package tagsoup

import (
	"strings"

	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/parser"
)

// formatTree maps the parser's raw tree to the public node shape:
// tag names lower-cased, raw attribute words split into key/value pairs,
// and positions retained only when requested.
func formatTree(nodes []*parser.RawNode, includePositions bool) []*hast.Node {
	out := make([]*hast.Node, 0, len(nodes))
	for _, raw := range nodes {
		node := &hast.Node{Kind: raw.Kind}
		if raw.Kind == hast.NodeElement {
			node.TagName = strings.ToLower(raw.TagName)
			node.Attributes = formatAttributes(raw.Attributes)
			node.Children = formatTree(raw.Children, includePositions)
		} else {
			node.Content = raw.Content
		}
		if includePositions {
			span := raw.Span
			node.Position = &span
		}
		out = append(out, node)
	}
	return out
}

// formatAttributes splits raw attribute words into key/value pairs.
// The split is on the first '=' only; a word without '=' becomes a bare
// key with a nil value.
func formatAttributes(words []string) []hast.Attribute {
	if len(words) == 0 {
		return nil
	}
	attributes := make([]hast.Attribute, 0, len(words))
	for _, word := range words {
		key, rawValue, hasValue := strings.Cut(strings.TrimSpace(word), "=")
		if !hasValue {
			attributes = append(attributes, hast.Attribute{Key: key})
			continue
		}
		value := unquote(rawValue)
		attributes = append(attributes, hast.Attribute{Key: key, Value: &value})
	}
	return attributes
}

// unquote strips one pair of matching single or double quotes from the
// ends of a value. Unmatched or absent quotes are left verbatim.
func unquote(value string) string {
	if value == "" {
		return value
	}
	first := value[0]
	if first != '"' && first != '\'' {
		return value
	}
	if value[len(value)-1] != first {
		return value
	}
	if len(value) == 1 {
		// A single quote character is its own closer; nothing remains.
		return ""
	}
	return value[1 : len(value)-1]
}
