package lexer

import "strings"

// lexRawText handles the content of a childless (raw-text) tag such as
// script or style. It scans forward for a literal "</", lexes a full tag
// there in isolation, and only accepts it as the closer when its name
// matches the open tag (case-insensitively). Rejected candidates are
// discarded and scanning resumes just past them, keeping the whole pass
// linear. If no closer matches before end of input, the remainder becomes
// one trailing text token.
func (s *state) lexRawText(tagName string) {
	src := s.src
	want := strings.ToLower(tagName)

	index := s.pos.Index
	for index < len(src) {
		offset := strings.Index(src[index:], "</")
		if offset == -1 {
			s.lexRawRemainder()
			return
		}
		nextTag := index + offset

		// Lex the candidate closing tag in isolation.
		candidate := &state{src: src, opts: s.opts, pos: s.pos}
		candidate.pos.AdvanceTo(src, nextTag)
		name := candidate.lexTag()
		if want != strings.ToLower(name) {
			index = candidate.pos.Index
			continue
		}

		// Emit the raw content before the closer as a single text token.
		if nextTag != s.pos.Index {
			start := s.pos
			content := src[s.pos.Index:nextTag]
			s.pos.AdvanceTo(src, nextTag)
			s.tokens = append(s.tokens, Token{
				Kind:    TokText,
				Content: content,
				Start:   start,
				End:     s.pos,
			})
		}

		// Splice the matched closer's tokens into the stream.
		s.tokens = append(s.tokens, candidate.tokens...)
		s.pos = candidate.pos
		return
	}
}

// lexRawRemainder emits everything from the cursor to end of input as one
// text token. Used when a raw-text element is never closed.
func (s *state) lexRawRemainder() {
	if s.pos.Index >= len(s.src) {
		return
	}
	start := s.pos
	content := s.src[s.pos.Index:]
	s.pos.AdvanceTo(s.src, len(s.src))
	s.tokens = append(s.tokens, Token{
		Kind:    TokText,
		Content: content,
		Start:   start,
		End:     s.pos,
	})
}
