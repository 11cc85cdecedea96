package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nufmt/nufmt/internal/nulang"
)

// nulang's own scanner never raises a resolution error - it does no command
// or variable resolution - so this injects one directly the way a future
// resolution-aware analyzer (or a caller wrapping one) would, to exercise
// the non-fatal path independent of whether anything in this repo produces
// one today.
func TestResolutionErrorIsNonFatal(t *testing.T) {
	errs := []nulang.ParseError{
		{Kind: nulang.UnknownCommand, Offset: 0, Message: "unknown command 'frobnicate'"},
	}
	err := firstSyntaxError("frobnicate", errs)
	assert.NoError(t, err)
}

func TestSyntaxErrorIsFatal(t *testing.T) {
	errs := []nulang.ParseError{
		{Kind: nulang.UnknownCommand, Offset: 0, Message: "unknown command 'frobnicate'"},
		{Kind: nulang.UnbalancedBracket, Offset: 3, Message: "unexpected end of input, expected '}'"},
	}
	err := firstSyntaxError("{ frobnicate", errs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected end of input")
}

func TestSourceFailsOnSyntaxError(t *testing.T) {
	_, err := Source("{ echo hi", Default())
	require.Error(t, err)
}

func TestErrorKindCategory(t *testing.T) {
	resolutionKinds := []nulang.ErrorKind{
		nulang.VariableNotFound, nulang.ModuleNotFound, nulang.UnknownCommand,
		nulang.ExtraPositional, nulang.InputMismatch, nulang.PluginNotFound,
	}
	for _, k := range resolutionKinds {
		assert.Equal(t, nulang.ResolutionError, k.Category())
	}

	syntaxKinds := []nulang.ErrorKind{
		nulang.UnterminatedString, nulang.UnterminatedInterpolation,
		nulang.UnbalancedBracket, nulang.UnexpectedEOF,
	}
	for _, k := range syntaxKinds {
		assert.Equal(t, nulang.SyntaxError, k.Category())
	}
}
