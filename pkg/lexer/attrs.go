package lexer

import "strings"

// lexAttributes scans the attribute region of a tag, up to (but not
// consuming) the closing '/' or '>'.
//
// The scan is a single pass with a three-state quote automaton: no quote,
// single quote, double quote. Whitespace splits words outside quotes;
// '/' and '>' end the scan outside quotes but are legal verbatim inside.
// A second pass stitches bare "key" words to a following "=value" or
// "='value'" fragment, tolerating whitespace around the '=', and strips a
// lone trailing '=' from a valueless key.
func (s *state) lexAttributes() {
	src := s.src
	cursor := s.pos.Index
	wordBegin := cursor
	var quote byte // 0 when outside quotes
	var words []string

	for cursor < len(src) {
		c := src[cursor]

		if quote != 0 {
			if c == quote {
				quote = 0
			}
			cursor++
			continue
		}

		if c == '/' || c == '>' {
			if cursor != wordBegin {
				words = append(words, src[wordBegin:cursor])
			}
			break
		}

		if isWhitespace(c) {
			if cursor != wordBegin {
				words = append(words, src[wordBegin:cursor])
			}
			wordBegin = cursor + 1
			cursor++
			continue
		}

		if c == '\'' || c == '"' {
			quote = c
		}
		cursor++
	}
	s.pos.AdvanceTo(src, cursor)

	s.stitchAttributeWords(words)
}

// stitchAttributeWords reassembles attribute words that the whitespace
// split broke apart ("key", "=", "value") and emits one attribute token
// per logical attribute. The exact joining behavior here is load-bearing:
// downstream formatting relies on it verbatim.
func (s *state) stitchAttributeWords(words []string) {
	for i := 0; i < len(words); i++ {
		word := words[i]

		if !strings.Contains(word, "=") && i+1 < len(words) && strings.HasPrefix(words[i+1], "=") {
			second := words[i+1]
			if len(second) > 1 {
				// "key" + "=value"
				s.emitAttribute(word + second)
				i++
				continue
			}
			// The next word is a lone "="; look one further for the value.
			i++
			if i+1 < len(words) {
				s.emitAttribute(word + "=" + words[i+1])
				i++
				continue
			}
			// No value after the lone "="; fall through with the bare key.
		}

		if strings.HasSuffix(word, "=") {
			if i+1 < len(words) && !strings.Contains(words[i+1], "=") {
				// "key=" + "value"
				s.emitAttribute(word + words[i+1])
				i++
				continue
			}
			// Valueless key with a dangling "=".
			s.emitAttribute(word[:len(word)-1])
			continue
		}

		s.emitAttribute(word)
	}
}

func (s *state) emitAttribute(content string) {
	s.tokens = append(s.tokens, Token{Kind: TokAttribute, Content: content})
}
