package format

// Shape classifies a Token for the layout emitter. It is format's own
// vocabulary: an upstream analyzer (internal/nulang, or any other) adapts
// its own classification into these values: the emitter never knows or
// cares what produced them.
type Shape int

const (
	// Nothing marks the synthetic trailing token Preprocess appends when
	// source has content after the last real token's span.
	Nothing Shape = iota
	Block
	Closure
	Record
	List
	Signature
	Pipe
	String
	StringInterpolation
	Operator
	Other
)

func (s Shape) String() string {
	switch s {
	case Nothing:
		return "Nothing"
	case Block:
		return "Block"
	case Closure:
		return "Closure"
	case Record:
		return "Record"
	case List:
		return "List"
	case Signature:
		return "Signature"
	case Pipe:
		return "Pipe"
	case String:
		return "String"
	case StringInterpolation:
		return "StringInterpolation"
	case Operator:
		return "Operator"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range into a source string.
type Span struct {
	Start, Stop int
}

// Token is a single lexeme together with the verbatim source gap
// (whitespace, comments, orphan punctuation) that preceded it. This is the
// entire interface between an upstream analyzer and the layout emitter.
type Token struct {
	Text      string
	Shape     Shape
	GapBefore string
}

// PositionedShape is what an analyzer hands to Preprocess: a span into the
// source plus the shape it was classified as.
type PositionedShape struct {
	Span  Span
	Shape Shape
}

// Preprocess turns a flat (span, shape) vector plus the original source
// into the Token vector the emitter consumes. Spans that overlap the
// previous one, or that are otherwise invalid (inverted, or running past
// the end of source) are skipped rather than rejected outright, since a
// best-effort analyzer may occasionally hand back a slightly malformed
// span and the formatter should still make progress on the rest of the
// file. If source has trailing content after the last token, a synthetic
// empty token with shape Nothing captures it as a final gap.
func Preprocess(source string, flattened []PositionedShape) []Token {
	tokens := make([]Token, 0, len(flattened))
	lastEnd := 0

	for _, ps := range flattened {
		span := ps.Span
		if span.Start < lastEnd || span.Start > span.Stop || span.Stop > len(source) {
			continue
		}

		tokens = append(tokens, Token{
			Text:      source[span.Start:span.Stop],
			Shape:     ps.Shape,
			GapBefore: source[lastEnd:span.Start],
		})

		lastEnd = span.Stop
	}

	if lastEnd < len(source) {
		tokens = append(tokens, Token{
			Text:      "",
			Shape:     Nothing,
			GapBefore: source[lastEnd:],
		})
	}

	return tokens
}
