package format

import (
	"fmt"
	"strings"

	"github.com/nufmt/nufmt/internal/nulang"
)

// shapeFrom adapts nulang's Shape vocabulary into format's. Any upstream
// analyzer could supply PositionedShape values this way; nulang is simply
// the one this repository ships.
func shapeFrom(s nulang.Shape) Shape {
	switch s {
	case nulang.Block:
		return Block
	case nulang.Closure:
		return Closure
	case nulang.Record:
		return Record
	case nulang.List:
		return List
	case nulang.Signature:
		return Signature
	case nulang.Pipe:
		return Pipe
	case nulang.String:
		return String
	case nulang.StringInterpolation:
		return StringInterpolation
	case nulang.Operator:
		return Operator
	default:
		return Other
	}
}

// fromParseError converts nulang's lexical error into the FormatError shape
// the CLI renders, recovering a line/column and the offending source line
// from the byte offset nulang reported.
func fromParseError(source string, perr nulang.ParseError) *FormatError {
	loc := OffsetToLocation(source, perr.Offset)

	lineStart := 0
	line := 1
	for i, r := range source {
		if line == loc.Line {
			break
		}
		if r == '\n' {
			line++
			lineStart = i + 1
		}
	}

	sourceLine := source[lineStart:]
	if nl := strings.IndexByte(sourceLine, '\n'); nl >= 0 {
		sourceLine = sourceLine[:nl]
	}

	return &FormatError{
		Message:    perr.Message,
		Location:   &loc,
		SourceLine: sourceLine,
	}
}

// Source formats a complete source file's text: it flattens source with
// nulang, preprocesses the result into gap-annotated tokens, and emits the
// formatted text. Lexical errors are returned as a single FormatError
// reporting the first one found; Flatten's best-effort recovery means later,
// likely-spurious errors are not useful to surface alongside it.
func Source(source string, config Config) (string, error) {
	if err := config.Validate(); err != nil {
		return "", err
	}

	flat, errs := nulang.Flatten(source)
	if err := firstSyntaxError(source, errs); err != nil {
		return "", err
	}

	shapes := make([]PositionedShape, len(flat))
	for i, t := range flat {
		shapes[i] = PositionedShape{
			Span:  Span{Start: t.Span.Start, Stop: t.Span.Stop},
			Shape: shapeFrom(t.Shape),
		}
	}

	tokens := Preprocess(source, shapes)
	return Emit(tokens, config), nil
}

// firstSyntaxError returns a FormatError for the first errs entry that is
// not a resolution error, or nil if errs is empty or contains only
// resolution errors. Resolution errors (a variable, module, command, or
// plugin a full semantic pass couldn't find) don't affect whether the
// source text can be laid out, so they never fail a format call.
func firstSyntaxError(source string, errs []nulang.ParseError) error {
	for _, e := range errs {
		if e.Kind.Category() == nulang.SyntaxError {
			return fromParseError(source, e)
		}
	}
	return nil
}

// DebugTokens returns a human-readable dump of the token vector Source would
// format, one line per token, for the CLI's hidden `debug tokens` command.
func DebugTokens(source string) (string, error) {
	flat, errs := nulang.Flatten(source)
	if err := firstSyntaxError(source, errs); err != nil {
		return "", err
	}

	shapes := make([]PositionedShape, len(flat))
	for i, t := range flat {
		shapes[i] = PositionedShape{
			Span:  Span{Start: t.Span.Start, Stop: t.Span.Stop},
			Shape: shapeFrom(t.Shape),
		}
	}

	tokens := Preprocess(source, shapes)

	out := ""
	for i, t := range tokens {
		out += fmt.Sprintf("%4d  %-20s gap=%-12q text=%q\n", i, t.Shape, t.GapBefore, t.Text)
	}
	return out, nil
}
