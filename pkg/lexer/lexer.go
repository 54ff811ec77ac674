// Package lexer tokenizes HTML source text in a single left-to-right pass.
//
// The lexer is a total function: any input string produces a token stream,
// sequences that cannot be parsed as markup degrade to text, and lexing
// always terminates in O(n). There are no lexing errors.
package lexer

import (
	"strings"

	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/tags"
)

// Options controls lexing behavior.
type Options struct {
	// ChildlessTags are raw-text tags (script, style, template) whose
	// content is not tokenized as markup. A nil set disables raw-text
	// handling entirely.
	ChildlessTags tags.Set
}

// Lex tokenizes src into an ordered token stream.
func Lex(src string, opts Options) []Token {
	const initialCapacityDivisor = 8 // reasonable initial capacity estimate
	s := &state{
		src:    src,
		opts:   opts,
		tokens: make([]Token, 0, len(src)/initialCapacityDivisor+1),
	}
	s.run()
	return s.tokens
}

// state is the working state of one Lex call. It is owned exclusively by
// that call and never shared.
type state struct {
	src    string
	opts   Options
	pos    hast.Position
	tokens []Token
}

// run is the main loop: consume a text run; if the cursor did not move the
// current character is '<', so classify it as a comment or a tag.
func (s *state) run() {
	for s.pos.Index < len(s.src) {
		start := s.pos.Index
		s.lexText()
		if s.pos.Index != start {
			continue
		}
		if strings.HasPrefix(s.src[start+1:], "!--") {
			s.lexComment()
			continue
		}
		tagName := s.lexTag()
		if s.opts.ChildlessTags.Has(tagName) {
			s.lexRawText(tagName)
		}
	}
}

// findTextEnd returns the index of the next '<' that plausibly begins
// markup: one immediately followed by '/', '!', or an alphanumeric
// character. A bare '<' not followed by one of those is ordinary text.
// Returns -1 if no such '<' exists at or after index.
func findTextEnd(src string, index int) int {
	for {
		offset := strings.IndexByte(src[index:], '<')
		if offset == -1 {
			return -1
		}
		textEnd := index + offset
		next := textEnd + 1
		if next < len(src) {
			c := src[next]
			if c == '/' || c == '!' || isAlphanumeric(c) {
				return textEnd
			}
		}
		index = textEnd + 1
	}
}

// lexText consumes a text run up to the next markup '<'.
// Emits nothing if the run is empty.
func (s *state) lexText() {
	textEnd := findTextEnd(s.src, s.pos.Index)
	if textEnd == s.pos.Index {
		return
	}
	if textEnd == -1 {
		textEnd = len(s.src)
	}

	start := s.pos
	content := s.src[s.pos.Index:textEnd]
	s.pos.AdvanceTo(s.src, textEnd)
	s.tokens = append(s.tokens, Token{
		Kind:    TokText,
		Content: content,
		Start:   start,
		End:     s.pos,
	})
}

// lexComment consumes "<!--" through the matching "-->".
// An unterminated comment runs to end of input.
func (s *state) lexComment() {
	start := s.pos
	s.pos.Advance(s.src, len("<!--"))

	contentEnd := strings.Index(s.src[s.pos.Index:], "-->")
	var commentEnd int
	if contentEnd == -1 {
		contentEnd = len(s.src)
		commentEnd = len(s.src)
	} else {
		contentEnd += s.pos.Index
		commentEnd = contentEnd + len("-->")
	}

	content := s.src[s.pos.Index:contentEnd]
	s.pos.AdvanceTo(s.src, commentEnd)
	s.tokens = append(s.tokens, Token{
		Kind:    TokComment,
		Content: content,
		Start:   start,
		End:     s.pos,
	})
}

// lexTag consumes one full tag: bracket, name, attributes, bracket.
// Returns the raw tag name.
func (s *state) lexTag() string {
	// Opening bracket: "<" or "</".
	closing := s.pos.Index+1 < len(s.src) && s.src[s.pos.Index+1] == '/'
	start := s.pos
	s.advanceClamped(boolLen(closing))
	s.tokens = append(s.tokens, Token{Kind: TokTagStart, Close: closing, Start: start})

	tagName := s.lexTagName()
	s.lexAttributes()

	// Closing bracket: ">" or "/>". May be missing at end of input.
	closing = s.pos.Index < len(s.src) && s.src[s.pos.Index] == '/'
	s.advanceClamped(boolLen(closing))
	s.tokens = append(s.tokens, Token{Kind: TokTagEnd, Close: closing, End: s.pos})

	return tagName
}

// lexTagName scans the contiguous run of non-whitespace, non-'/',
// non-'>' characters as the tag name.
func (s *state) lexTagName() string {
	src := s.src
	start := s.pos.Index
	for start < len(src) && !isTagNameChar(src[start]) {
		start++
	}

	end := start + 1
	for end < len(src) && isTagNameChar(src[end]) {
		end++
	}
	if end > len(src) {
		end = len(src)
	}

	s.pos.AdvanceTo(src, end)
	tagName := src[start:end]
	s.tokens = append(s.tokens, Token{Kind: TokTagName, Content: tagName})
	return tagName
}

// advanceClamped advances up to n bytes, stopping at end of input.
func (s *state) advanceClamped(n int) {
	if remaining := len(s.src) - s.pos.Index; n > remaining {
		n = remaining
	}
	s.pos.Advance(s.src, n)
}

func boolLen(twoChars bool) int {
	if twoChars {
		return 2
	}
	return 1
}

func isTagNameChar(c byte) bool {
	return !isWhitespace(c) && c != '/' && c != '>'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
