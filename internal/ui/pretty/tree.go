package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/tagsoup/pkg/hast"
)

const (
	// defaultTreeWidth is used when the output is not a terminal.
	defaultTreeWidth = 100

	// minTextWidth is the floor for text truncation on narrow terminals.
	minTextWidth = 20

	indentStep = "  "
)

// TreeRenderer renders a node tree as an indented outline for terminals.
type TreeRenderer struct {
	styles *Styles
	width  int
}

// NewTreeRenderer creates a renderer sized to the writer.
// When the writer is a terminal its width bounds text truncation;
// otherwise a default width is used.
func NewTreeRenderer(styles *Styles, writer io.Writer) *TreeRenderer {
	width := defaultTreeWidth
	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &TreeRenderer{styles: styles, width: width}
}

// Render produces the outline for a node tree.
func (r *TreeRenderer) Render(nodes []*hast.Node) string {
	var builder strings.Builder
	r.renderNodes(&builder, nodes, 0)
	return builder.String()
}

func (r *TreeRenderer) renderNodes(builder *strings.Builder, nodes []*hast.Node, depth int) {
	indent := strings.Repeat(indentStep, depth)
	for _, node := range nodes {
		builder.WriteString(indent)
		switch node.Kind {
		case hast.NodeElement:
			r.renderElement(builder, node)
			r.renderNodes(builder, node.Children, depth+1)
		case hast.NodeText:
			builder.WriteString(r.styles.Text.Render(r.truncate(quote(node.Content), depth)))
			r.renderPosition(builder, node)
			builder.WriteByte('\n')
		case hast.NodeComment:
			comment := "<!--" + node.Content + "-->"
			builder.WriteString(r.styles.Comment.Render(r.truncate(comment, depth)))
			r.renderPosition(builder, node)
			builder.WriteByte('\n')
		}
	}
}

func (r *TreeRenderer) renderElement(builder *strings.Builder, node *hast.Node) {
	builder.WriteString(r.styles.Branch.Render("<"))
	builder.WriteString(r.styles.TagName.Render(node.TagName))
	for _, attr := range node.Attributes {
		builder.WriteByte(' ')
		builder.WriteString(r.styles.AttrKey.Render(attr.Key))
		if attr.Value != nil {
			builder.WriteString(r.styles.Branch.Render("="))
			builder.WriteString(r.styles.AttrValue.Render(*attr.Value))
		}
	}
	builder.WriteString(r.styles.Branch.Render(">"))
	r.renderPosition(builder, node)
	builder.WriteByte('\n')
}

func (r *TreeRenderer) renderPosition(builder *strings.Builder, node *hast.Node) {
	if node.Position == nil {
		return
	}
	span := fmt.Sprintf(" %d:%d-%d:%d",
		node.Position.Start.Line, node.Position.Start.Column,
		node.Position.End.Line, node.Position.End.Column)
	builder.WriteString(r.styles.Position.Render(span))
}

// truncate limits a rendered fragment to the available width at the
// given depth, appending an ellipsis when cut.
func (r *TreeRenderer) truncate(s string, depth int) string {
	available := r.width - depth*len(indentStep)
	if available < minTextWidth {
		available = minTextWidth
	}
	runes := []rune(s)
	if len(runes) <= available {
		return s
	}
	return string(runes[:available-1]) + "…"
}

// quote makes whitespace-only text visible in the outline.
func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
