// Package stringify serializes an HTML node tree back into markup text.
package stringify

import (
	"strings"

	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/tags"
)

// Options controls serialization.
type Options struct {
	// VoidTags are emitted without children or a closing tag.
	VoidTags tags.Set
}

// ToHTML re-emits a node tree as markup. Text is written verbatim,
// comments are bracketed with <!-- -->, and attribute values are quoted
// with single quotes, switching to double quotes when the value itself
// contains a single quote.
func ToHTML(nodes []*hast.Node, opts Options) string {
	var builder strings.Builder
	writeNodes(&builder, nodes, opts)
	return builder.String()
}

func writeNodes(builder *strings.Builder, nodes []*hast.Node, opts Options) {
	for _, node := range nodes {
		switch node.Kind {
		case hast.NodeText:
			builder.WriteString(node.Content)
		case hast.NodeComment:
			builder.WriteString("<!--")
			builder.WriteString(node.Content)
			builder.WriteString("-->")
		case hast.NodeElement:
			writeElement(builder, node, opts)
		}
	}
}

func writeElement(builder *strings.Builder, node *hast.Node, opts Options) {
	builder.WriteByte('<')
	builder.WriteString(node.TagName)
	writeAttributes(builder, node.Attributes)
	builder.WriteByte('>')

	if opts.VoidTags.Has(node.TagName) {
		return
	}

	writeNodes(builder, node.Children, opts)
	builder.WriteString("</")
	builder.WriteString(node.TagName)
	builder.WriteByte('>')
}

func writeAttributes(builder *strings.Builder, attributes []hast.Attribute) {
	for _, attr := range attributes {
		builder.WriteByte(' ')
		builder.WriteString(attr.Key)
		if attr.Value == nil {
			continue
		}

		quote := byte('\'')
		if strings.ContainsRune(*attr.Value, '\'') {
			quote = '"'
		}
		builder.WriteByte('=')
		builder.WriteByte(quote)
		builder.WriteString(*attr.Value)
		builder.WriteByte(quote)
	}
}
