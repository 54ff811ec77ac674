package hast

// Position is a cursor into HTML source text.
// Index is a byte offset; Line and Column are zero-based and are derived
// by scanning consumed characters for newlines.
type Position struct {
	Index  int `json:"index"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Advance consumes n bytes of src starting at the current index,
// updating line and column counts. Targets are always at or ahead of the
// current index by construction, so Advance never fails.
func (p *Position) Advance(src string, n int) {
	start := p.Index
	end := start + n
	p.Index = end
	for i := start; i < end; i++ {
		if src[i] == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
}

// AdvanceTo consumes bytes up to (but not including) the target byte
// offset. Equivalent to Advance(src, target-p.Index).
func (p *Position) AdvanceTo(src string, target int) {
	p.Advance(src, target-p.Index)
}

// Span is a half-open source range: Start is the position of the first
// byte, End the position just past the last byte. Positions are value
// types, so captured spans never alias a live cursor.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End.Index - s.Start.Index
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start.Index == s.End.Index
}

// Contains reports whether the given byte offset falls inside the span.
func (s Span) Contains(index int) bool {
	return index >= s.Start.Index && index < s.End.Index
}

// Text returns the source text covered by the span.
// Returns "" if the span does not fit within src.
func (s Span) Text(src string) string {
	if s.Start.Index < 0 || s.End.Index > len(src) || s.Start.Index > s.End.Index {
		return ""
	}
	return src[s.Start.Index:s.End.Index]
}
