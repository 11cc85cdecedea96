// Package nulang is a deliberately small stand-in for the upstream language
// analyzer that a real formatter would sit behind. nufmt's layout engine
// (internal/format) consumes a flat token vector and never parses source
// itself; nulang exists only so this repository has something that produces
// that vector end to end, for the CLI and for tests that want to format real
// source text rather than hand-built token slices.
//
// It recognizes a useful subset of a Nushell-like grammar: pipelines, blocks,
// closures, records, lists, command signatures, strings (including nested
// interpolation), numbers and identifiers. It does not attempt full
// semantic analysis, type checking, or command resolution.
package nulang

// Shape classifies a token for the layout engine. These mirror the FlatShape
// variants the real analyzer would hand to a formatter: the emitter branches
// on Shape, never on token text, except where the text itself carries
// meaning (bracket characters, the leading '$' of a nested interpolation).
type Shape int

const (
	_ Shape = iota

	// Block marks the braces or parens of a block, and parenthesized
	// sub-expressions: `{`, `}`, `(`, `)`.
	Block

	// Closure marks the opening brace of a closure, including any
	// `|params|` prefix, and its closing brace.
	Closure

	// Record marks the braces, colons and commas belonging to a record
	// literal: `{`, `:`, `,`, `}`.
	Record

	// List marks the brackets and commas belonging to a list literal:
	// `[`, `,`, `]`.
	List

	// Signature marks a `def` command's parameter list, captured whole
	// and left untouched by the emitter.
	Signature

	// Pipe marks a pipeline `|` separating pipeline stages.
	Pipe

	// String marks a string literal, or a non-interpolating segment of
	// one, subject to quote canonicalization.
	String

	// StringInterpolation marks the `$(` and `)` delimiters of an embedded
	// substitution inside an interpolated string, at any nesting depth.
	// Its text decides direction: a token starting with `$` opens a
	// substitution, anything else closes one.
	StringInterpolation

	// Operator marks a recognized infix/prefix operator word.
	Operator

	// Other marks anything else: identifiers, numbers, variables,
	// keywords, flags, bare punctuation outside a collection.
	Other
)

func (s Shape) String() string {
	switch s {
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
