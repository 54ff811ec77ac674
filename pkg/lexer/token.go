package lexer

import "github.com/yaklabco/tagsoup/pkg/hast"

// TokenKind classifies the type of a lexical token.
type TokenKind uint8

// Token kinds emitted by Lex. A tag in the source always produces the
// sequence TagStart, TagName, zero or more Attributes, TagEnd.
const (
	// TokText is a run of character data between tags.
	TokText TokenKind = iota

	// TokComment is the body of a <!-- --> comment.
	TokComment

	// TokTagStart marks the opening bracket of a tag ("<" or "</").
	TokTagStart

	// TokTagName carries the raw tag name, original case preserved.
	TokTagName

	// TokAttribute carries one unparsed attribute word
	// ("key" or "key=value", value possibly quoted).
	TokAttribute

	// TokTagEnd marks the closing bracket of a tag (">" or "/>").
	TokTagEnd
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "text"
	case TokComment:
		return "comment"
	case TokTagStart:
		return "tag-start"
	case TokTagName:
		return "tag-name"
	case TokAttribute:
		return "attribute"
	case TokTagEnd:
		return "tag-end"
	default:
		return "unknown"
	}
}

// Token is an atomic lexical unit. Tokens are created once by Lex and
// never mutated.
//
// Field usage varies by kind:
//   - TokText, TokComment: Content plus both Start and End.
//   - TokTagStart: Close ("</") plus Start; its End half is supplied by
//     the TokTagEnd that brackets the same tag.
//   - TokTagName, TokAttribute: Content only.
//   - TokTagEnd: Close ("/>") plus End.
type Token struct {
	Kind    TokenKind
	Content string
	Close   bool
	Start   hast.Position
	End     hast.Position
}
