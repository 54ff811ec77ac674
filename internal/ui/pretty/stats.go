package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/tagsoup/pkg/hast"
)

const summaryDividerWidth = 40

// Stats summarizes a parsed node tree.
type Stats struct {
	Nodes    int
	Elements int
	Texts    int
	Comments int
	MaxDepth int
}

// Collect walks a node tree and gathers statistics.
func Collect(nodes []*hast.Node) Stats {
	var stats Stats
	collect(nodes, 1, &stats)
	return stats
}

func collect(nodes []*hast.Node, depth int, stats *Stats) {
	for _, node := range nodes {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		switch node.Kind {
		case hast.NodeElement:
			stats.Elements++
			collect(node.Children, depth+1, stats)
		case hast.NodeText:
			stats.Texts++
		case hast.NodeComment:
			stats.Comments++
		}
	}
}

// FormatStatsOneLine formats tree statistics as a single line.
// Example: "9 nodes (5 elements, 3 text, 1 comment), depth 4".
func (s *Styles) FormatStatsOneLine(stats Stats) string {
	if stats.Nodes == 0 {
		return s.Dim.Render("empty tree") + "\n"
	}

	nodeWord := "nodes"
	if stats.Nodes == 1 {
		nodeWord = "node"
	}

	var kinds []string
	if stats.Elements > 0 {
		kinds = append(kinds, fmt.Sprintf("%d elements", stats.Elements))
	}
	if stats.Texts > 0 {
		kinds = append(kinds, fmt.Sprintf("%d text", stats.Texts))
	}
	if stats.Comments > 0 {
		kinds = append(kinds, fmt.Sprintf("%d comments", stats.Comments))
	}

	line := fmt.Sprintf("%d %s", stats.Nodes, nodeWord)
	if len(kinds) > 0 {
		line += " (" + strings.Join(kinds, ", ") + ")"
	}
	line += s.Dim.Render(fmt.Sprintf(", depth %d", stats.MaxDepth))

	return line + "\n"
}

// FormatStats formats tree statistics as a summary block.
func (s *Styles) FormatStats(stats Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Nodes:    " + s.SummaryValue.Render(strconv.Itoa(stats.Nodes)) + "\n")
	builder.WriteString("  Elements: " + s.SummaryValue.Render(strconv.Itoa(stats.Elements)) + "\n")
	builder.WriteString("  Text:     " + s.SummaryValue.Render(strconv.Itoa(stats.Texts)) + "\n")
	builder.WriteString("  Comments: " + s.SummaryValue.Render(strconv.Itoa(stats.Comments)) + "\n")
	builder.WriteString("  Depth:    " + s.SummaryValue.Render(strconv.Itoa(stats.MaxDepth)) + "\n")

	return builder.String()
}
