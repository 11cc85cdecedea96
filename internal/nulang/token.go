package nulang

// Pos is a 1-indexed line/column location in a source file, used only for
// error reporting; the layout engine itself works in byte offsets.
type Pos struct {
	Line, Col int
}

// Span is a half-open byte range [Start, Stop) into the source string that
// was flattened.
type Span struct {
	Start, Stop int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// Token is one meaningful lexeme recovered from source, paired with the
// shape the layout engine should treat it as. Flatten emits these in source
// order; it does not emit anything for the whitespace, comments, or orphan
// punctuation between them. That material is recovered by
// internal/format.Preprocess from the source slice between two tokens'
// spans, the same "gap" model the layout engine's design assumes throughout.
type Token struct {
	Span  Span
	Shape Shape
}

// Text returns the token's source text.
func (t Token) Text(source string) string {
	return source[t.Span.Start:t.Span.Stop]
}
