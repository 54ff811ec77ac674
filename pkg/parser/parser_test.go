package parser_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/lexer"
	"github.com/yaklabco/tagsoup/pkg/parser"
	"github.com/yaklabco/tagsoup/pkg/tags"
)

func parseDefault(src string) []*parser.RawNode {
	tokens := lexer.Lex(src, lexer.Options{ChildlessTags: tags.DefaultChildless()})
	return parser.Parse(tokens, parser.Options{
		VoidTags:                   tags.DefaultVoid(),
		ClosingTags:                tags.DefaultClosing(),
		ClosingTagAncestorBreakers: tags.DefaultClosingTagAncestorBreakers(),
	})
}

// shape renders a raw tree as a compact string: elements as
// name(children), text as 'content', comments as #'content'.
func shape(nodes []*parser.RawNode) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case hast.NodeElement:
			parts = append(parts, strings.ToLower(n.TagName)+"("+shape(n.Children)+")")
		case hast.NodeText:
			parts = append(parts, "'"+n.Content+"'")
		case hast.NodeComment:
			parts = append(parts, "#'"+n.Content+"'")
		}
	}
	return strings.Join(parts, " ")
}

func TestParse_TreeShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "nested elements",
			src:      "<div><b>x</b></div>",
			expected: "div(b('x'))",
		},
		{
			name:     "siblings",
			src:      "<i>a</i><i>b</i>",
			expected: "i('a') i('b')",
		},
		{
			name:     "text and comment at top level",
			src:      "x<!--c-->y",
			expected: "'x' #'c' 'y'",
		},
		{
			name:     "auto-close consecutive paragraphs",
			src:      "<p>A<p>B",
			expected: "p('A') p('B')",
		},
		{
			name:     "auto-close list items",
			src:      "<li>a<li>b",
			expected: "li('a') li('b')",
		},
		{
			name:     "ancestor breaker suppresses auto-close",
			src:      "<li><ul><li></ul></li>",
			expected: "li(ul(li()))",
		},
		{
			name:     "void tag has no children",
			src:      "<br>text",
			expected: "br() 'text'",
		},
		{
			name:     "self-closed tag has no children",
			src:      "<span/>text",
			expected: "span() 'text'",
		},
		{
			name:     "stray closer is discarded",
			src:      "</b>hi",
			expected: "'hi'",
		},
		{
			name:     "closer matches nearest open ancestor",
			src:      "<b><b>x</b>y</b>",
			expected: "b(b('x') 'y')",
		},
		{
			name:     "closer implicitly closes intervening elements",
			src:      "<div><span>x</div>y",
			expected: "div(span('x')) 'y'",
		},
		{
			name:     "unclosed elements run to end of input",
			src:      "<div><span>x",
			expected: "div(span('x'))",
		},
		{
			name:     "script content stays raw",
			src:      "<script><p></script>",
			expected: "script('<p>')",
		},
		{
			name:     "unterminated comment",
			src:      "<!-- abc",
			expected: "#' abc'",
		},
		{
			name:     "doctype is void",
			src:      "<!doctype html><html></html>",
			expected: "!doctype() html()",
		},
		{
			name:     "table rows auto-close",
			src:      "<table><tr><td>a<td>b<tr><td>c</table>",
			expected: "table(tr(td('a') td('b')) tr(td('c')))",
		},
		{
			name:     "empty input",
			src:      "",
			expected: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := shape(parseDefault(testCase.src))
			if got != testCase.expected {
				t.Errorf("tree mismatch for %q\n got: %s\nwant: %s", testCase.src, got, testCase.expected)
			}
		})
	}
}

func TestParse_AttributesCarriedRaw(t *testing.T) {
	t.Parallel()

	nodes := parseDefault("<div class='a' data-x></div>")
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}

	div := nodes[0]
	expected := []string{"class='a'", "data-x"}
	if len(div.Attributes) != len(expected) {
		t.Fatalf("attributes = %q, want %q", div.Attributes, expected)
	}
	for i := range expected {
		if div.Attributes[i] != expected[i] {
			t.Errorf("attribute[%d] = %q, want %q", i, div.Attributes[i], expected[i])
		}
	}
}

func TestParse_TagCasePreserved(t *testing.T) {
	t.Parallel()

	nodes := parseDefault("<DiV></dIv>")
	if len(nodes) != 1 || nodes[0].TagName != "DiV" {
		t.Fatalf("expected raw tag case DiV, got %+v", nodes)
	}
}

func TestParse_Positions(t *testing.T) {
	t.Parallel()

	src := "<div>abc</div>"
	nodes := parseDefault(src)
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}

	div := nodes[0]
	if div.Span.Start.Index != 0 {
		t.Errorf("div start = %d, want 0", div.Span.Start.Index)
	}
	if div.Span.End.Index != len(src) {
		t.Errorf("div end = %d, want %d", div.Span.End.Index, len(src))
	}

	text := div.Children[0]
	if text.Span.Start.Index != 5 || text.Span.End.Index != 8 {
		t.Errorf("text span = %+v", text.Span)
	}
}

func TestParse_AutoClosePatchesEnd(t *testing.T) {
	t.Parallel()

	src := "<p>A<p>B"
	nodes := parseDefault(src)
	if len(nodes) != 2 {
		t.Fatalf("expected two paragraphs, got %d", len(nodes))
	}

	// First p ends where the second one starts.
	first, second := nodes[0], nodes[1]
	if first.Span.End.Index != second.Span.Start.Index {
		t.Errorf("first p ends at %d, second starts at %d",
			first.Span.End.Index, second.Span.Start.Index)
	}

	// Second p was never closed; its end clamps to the end of input.
	if second.Span.End.Index != len(src) {
		t.Errorf("second p ends at %d, want %d", second.Span.End.Index, len(src))
	}
}

func TestParse_SpanInvariants(t *testing.T) {
	t.Parallel()

	sources := []string{
		"<div><p>one</p><!--c--></div>",
		"<p>A<p>B<p>C",
		"<ul><li>a<li>b</ul>",
		"<div><span>x",
		"</b>hi<b>ok",
		"<table><tr><td>a<td>b</table>",
	}

	var check func(t *testing.T, nodes []*parser.RawNode)
	check = func(t *testing.T, nodes []*parser.RawNode) {
		t.Helper()
		for _, n := range nodes {
			if n.Span.End.Index < n.Span.Start.Index {
				t.Errorf("node %q has end %d before start %d", n.TagName, n.Span.End.Index, n.Span.Start.Index)
			}
			for _, child := range n.Children {
				if child.Span.Start.Index < n.Span.Start.Index {
					t.Errorf("child starts at %d before parent start %d", child.Span.Start.Index, n.Span.Start.Index)
				}
				if child.Span.End.Index > n.Span.End.Index {
					t.Errorf("child ends at %d past parent end %d", child.Span.End.Index, n.Span.End.Index)
				}
			}
			check(t, n.Children)
		}
	}

	for _, src := range sources {
		check(t, parseDefault(src))
	}
}

func TestParse_VoidTags(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"area", "base", "br", "col", "hr", "img", "input", "wbr"} {
		nodes := parseDefault("<" + name + ">")
		if len(nodes) != 1 {
			t.Fatalf("parsing <%s> produced %d nodes", name, len(nodes))
		}
		if len(nodes[0].Children) != 0 {
			t.Errorf("void tag %s has children", name)
		}
	}
}

func TestParse_ForeignTokenStream(t *testing.T) {
	t.Parallel()

	// A tag-start with nothing after it must not panic.
	tokens := []lexer.Token{{Kind: lexer.TokTagStart}}
	nodes := parser.Parse(tokens, parser.Options{})
	if len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
}
