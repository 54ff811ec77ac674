// Package parser builds a node tree from the lexer's token stream.
//
// The parser is a single pass over the tokens with an explicit stack of
// open-element frames, one iteration per token. It never fails: stray
// closing tags are discarded, unclosed elements are implicitly closed at
// end of input, and any input produces a best-effort tree.
package parser

import (
	"strings"

	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/lexer"
	"github.com/yaklabco/tagsoup/pkg/tags"
)

// Options controls tree building.
type Options struct {
	// VoidTags never have children or a closing tag.
	VoidTags tags.Set

	// ClosingTags implicitly close a same-named open ancestor when a new
	// one starts.
	ClosingTags tags.Set

	// ClosingTagAncestorBreakers suppress an auto-close when one of the
	// listed ancestors is interposed before the same-named open ancestor.
	ClosingTagAncestorBreakers map[string]tags.Set
}

// RawNode is the parser's output node. Tag case and attribute words are
// carried verbatim from the source; the format pass in the tagsoup
// package maps RawNodes to hast.Nodes.
type RawNode struct {
	Kind hast.NodeKind

	// TagName preserves the original case from the source.
	TagName string

	// Attributes are the unparsed attribute words from the lexer.
	Attributes []string

	Children []*RawNode
	Content  string
	Span     hast.Span
}

// frame is one currently-open element on the parse stack.
type frame struct {
	// isRoot marks the synthetic root frame, which is never matched by a
	// closing tag and never popped.
	isRoot bool

	// tagName is the lower-cased tag name used for matching.
	tagName string

	// node is the element being built; nil for the root.
	node *RawNode

	// children collects the root's top-level nodes; element frames append
	// to node.Children instead.
	children []*RawNode
}

func (f *frame) appendChild(n *RawNode) {
	if f.node != nil {
		f.node.Children = append(f.node.Children, n)
		return
	}
	f.children = append(f.children, n)
}

// Parse consumes the token stream and returns the top-level nodes.
// The token slice is read-only; the returned tree is freshly allocated.
func Parse(tokens []lexer.Token, opts Options) []*RawNode {
	root := &frame{isRoot: true}
	s := &state{
		tokens: tokens,
		opts:   opts,
		stack:  []*frame{root},
	}
	s.run()
	return root.children
}

// state is the working state of one Parse call, owned exclusively by it.
type state struct {
	tokens []lexer.Token
	opts   Options
	cursor int
	stack  []*frame
}

func (s *state) top() *frame {
	return s.stack[len(s.stack)-1]
}

func (s *state) run() {
	for s.cursor < len(s.tokens) {
		tok := s.tokens[s.cursor]

		if tok.Kind != lexer.TokTagStart {
			s.appendLeaf(tok)
			s.cursor++
			continue
		}

		if s.cursor+1 >= len(s.tokens) {
			// A tag-start is always followed by a tag-name when the
			// stream comes from the lexer; bail out on foreign input.
			break
		}
		nameTok := s.tokens[s.cursor+1]
		s.cursor += 2
		tagName := strings.ToLower(nameTok.Content)

		if tok.Close {
			s.closeTag(tagName, tok)
			continue
		}
		s.openTag(tok, nameTok, tagName)
	}

	// Elements still open at end of input are implicitly closed with
	// their end clamped to the last token boundary.
	if len(s.tokens) > 0 {
		end := s.tokens[len(s.tokens)-1].End
		for _, f := range s.stack[1:] {
			f.node.Span.End = end
		}
	}
	s.stack = s.stack[:1]
}

// appendLeaf turns a non-tag token into a child of the current frame.
// Token kinds that only occur inside tags are dropped; they reach the
// main loop only on malformed closers like "</div foo>".
func (s *state) appendLeaf(tok lexer.Token) {
	switch tok.Kind {
	case lexer.TokText, lexer.TokComment:
	default:
		return
	}

	kind := hast.NodeText
	if tok.Kind == lexer.TokComment {
		kind = hast.NodeComment
	}
	s.top().appendChild(&RawNode{
		Kind:    kind,
		Content: tok.Content,
		Span:    hast.Span{Start: tok.Start, End: tok.End},
	})
}

// closeTag resolves a closing tag. The nearest same-named open frame wins
// (LIFO); everything above it is implicitly closed. A closer with no
// matching open ancestor is discarded.
func (s *state) closeTag(tagName string, startTok lexer.Token) {
	match := -1
	for i := len(s.stack) - 1; i >= 1; i-- {
		if s.stack[i].tagName == tagName {
			match = i
			break
		}
	}

	// Consume the rest of the closer, through its tag-end.
	endTok := startTok
	for s.cursor < len(s.tokens) {
		t := s.tokens[s.cursor]
		s.cursor++
		if t.Kind == lexer.TokTagEnd {
			endTok = t
			break
		}
	}

	if match == -1 {
		return
	}
	s.rewind(match, startTok.Start, endTok.End)
}

// openTag resolves an opening tag: auto-close a constrained sibling if
// needed, collect attributes, build the element, and push a frame unless
// the element is void or self-closed.
func (s *state) openTag(startTok, nameTok lexer.Token, tagName string) {
	if s.opts.ClosingTags.Has(tagName) && !s.hasTerminalParent(tagName) {
		for i := len(s.stack) - 1; i >= 1; i-- {
			if s.stack[i].tagName == tagName {
				s.rewind(i, startTok.Start, startTok.Start)
				break
			}
		}
	}

	var attributes []string
	endTok := startTok
	for s.cursor < len(s.tokens) {
		t := s.tokens[s.cursor]
		s.cursor++
		if t.Kind == lexer.TokTagEnd {
			endTok = t
			break
		}
		attributes = append(attributes, t.Content)
	}

	node := &RawNode{
		Kind:       hast.NodeElement,
		TagName:    nameTok.Content,
		Attributes: attributes,
		Span:       hast.Span{Start: startTok.Start, End: endTok.End},
	}
	s.top().appendChild(node)

	isVoid := endTok.Close || s.opts.VoidTags.Has(tagName)
	if !isVoid {
		s.stack = append(s.stack, &frame{tagName: tagName, node: node})
	}
}

// hasTerminalParent walks the stack downward looking for the nearer of a
// same-named frame and an ancestor breaker. A breaker halts the search
// and suppresses the auto-close; a same-named frame (or the root) allows it.
func (s *state) hasTerminalParent(tagName string) bool {
	terminals, ok := s.opts.ClosingTagAncestorBreakers[tagName]
	if !ok {
		return false
	}
	for i := len(s.stack) - 1; i >= 0; i-- {
		f := s.stack[i]
		if f.isRoot || f.tagName == tagName {
			break
		}
		if terminals.Has(f.tagName) {
			return true
		}
	}
	return false
}

// rewind pops every frame above and including idx. The matched frame's
// end is patched to endPos (the far edge of whatever closed it); the
// implicitly closed frames above it end where their closer began.
func (s *state) rewind(idx int, childrenEndPos, endPos hast.Position) {
	s.stack[idx].node.Span.End = endPos
	for i := idx + 1; i < len(s.stack); i++ {
		s.stack[i].node.Span.End = childrenEndPos
	}
	s.stack = s.stack[:idx]
}
