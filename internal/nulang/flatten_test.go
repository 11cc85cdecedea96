package nulang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapes(tokens []Token) []Shape {
	out := make([]Shape, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Shape
	}
	return out
}

func texts(tokens []Token, source string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text(source)
	}
	return out
}

func TestFlattenPipeline(t *testing.T) {
	src := "ls | where size > 1kb"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Other, Pipe, Other, Other, Operator, Other}, shapes(toks))
	assert.Equal(t, []string{"ls", "|", "where", "size", ">", "1kb"}, texts(toks, src))
}

func TestFlattenBlock(t *testing.T) {
	src := "if true {\necho hello\n}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Other, Other, Block, Other, Other, Block}, shapes(toks))
}

func TestFlattenRecordSingleLine(t *testing.T) {
	src := "{a: 1, b: 2}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Record, Other, Record, Other, Record, Other, Record, Other, Record}, shapes(toks))
}

func TestFlattenRecordMultiLine(t *testing.T) {
	src := "{\na: 1\nb: 2\n}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	// the bare newline between "1" and "b" carries no comma in source, but
	// still separates the two fields: it surfaces as its own zero-width
	// Record-shaped token so the emitter can treat it like one.
	assert.Equal(t, []Shape{Record, Other, Record, Other, Record, Other, Record, Other, Record}, shapes(toks))
	assert.Equal(t, "\n", toks[4].Text(src))
}

func TestFlattenClosure(t *testing.T) {
	src := "{|x, y| $x + $y}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	require.Len(t, toks, 5)
	assert.Equal(t, Closure, toks[0].Shape)
	assert.Equal(t, "{|x, y|", toks[0].Text(src))
	assert.Equal(t, []string{"$x", "+", "$y"}, texts(toks[1:4], src))
	assert.Equal(t, Other, toks[1].Shape)
	assert.Equal(t, Operator, toks[2].Shape)
	assert.Equal(t, Closure, toks[4].Shape)
	assert.Equal(t, "}", toks[4].Text(src))
}

func TestFlattenList(t *testing.T) {
	src := "[1, 2, 3]"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{List, Other, List, Other, List, Other, List}, shapes(toks))
}

func TestFlattenListMultiLineBareNewline(t *testing.T) {
	src := "[\n1\n2\n]"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{List, Other, List, Other, List}, shapes(toks))
	assert.Equal(t, "\n", toks[2].Text(src))
}

func TestFlattenDefSignature(t *testing.T) {
	src := "def greet [name: string] {\necho $name\n}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Other, Other, Signature, Block, Other, Other, Block}, shapes(toks))
	assert.Equal(t, "[name: string]", toks[2].Text(src))
}

func TestFlattenExportDefSignature(t *testing.T) {
	src := "export def greet [] {}"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Other, Other, Other, Signature, Block, Block}, shapes(toks))
}

func TestFlattenParenBlock(t *testing.T) {
	src := "(1 + 2) * 3"
	toks, errs := Flatten(src)
	require.Empty(t, errs)
	assert.Equal(t, []Shape{Block, Other, Operator, Other, Block, Operator, Other}, shapes(toks))
}

func TestFlattenStrings(t *testing.T) {
	t.Run("double quoted", func(t *testing.T) {
		toks, errs := Flatten(`"hello world"`)
		require.Empty(t, errs)
		require.Len(t, toks, 1)
		assert.Equal(t, String, toks[0].Shape)
	})

	t.Run("single quoted is raw", func(t *testing.T) {
		src := `'it won''t break'`
		toks, errs := Flatten(src)
		require.Empty(t, errs)
		// the first "''" ends the literal; nothing else is consumed as part of it.
		require.Len(t, toks, 2)
		assert.Equal(t, `'it won'`, toks[0].Text(src))
	})

	t.Run("double quoted escapes", func(t *testing.T) {
		src := `"say \"hi\""`
		toks, errs := Flatten(src)
		require.Empty(t, errs)
		require.Len(t, toks, 1)
		assert.Equal(t, src, toks[0].Text(src))
	})

	t.Run("unterminated", func(t *testing.T) {
		_, errs := Flatten(`"hello`)
		require.Len(t, errs, 1)
		assert.Equal(t, UnterminatedString, errs[0].Kind)
	})
}

func TestFlattenInterpolation(t *testing.T) {
	t.Run("no substitution is plain string", func(t *testing.T) {
		toks, errs := Flatten(`$"hello world"`)
		require.Empty(t, errs)
		require.Len(t, toks, 1)
		assert.Equal(t, String, toks[0].Shape)
	})

	t.Run("single substitution", func(t *testing.T) {
		src := `$"count: $(1 + 2)"`
		toks, errs := Flatten(src)
		require.Empty(t, errs)
		assert.Equal(t, []Shape{String, StringInterpolation, Other, Operator, Other, StringInterpolation}, shapes(toks))
		assert.Equal(t, `$"count: `, toks[0].Text(src))
		assert.Equal(t, "$(", toks[1].Text(src))
		assert.Equal(t, ")", toks[5].Text(src))
	})

	t.Run("nested interpolation", func(t *testing.T) {
		src := `$"outer $(1 + $"inner $(2)")"`
		toks, errs := Flatten(src)
		require.Empty(t, errs)
		var interpOpens, interpCloses int
		for _, tok := range toks {
			if tok.Shape == StringInterpolation {
				if tok.Text(src)[0] == '$' {
					interpOpens++
				} else {
					interpCloses++
				}
			}
		}
		assert.Equal(t, interpOpens, interpCloses)
		assert.Equal(t, 2, interpOpens)
	})
}

func TestFlattenUnbalancedBracket(t *testing.T) {
	_, errs := Flatten("{ echo hi")
	require.Len(t, errs, 1)
	assert.Equal(t, UnbalancedBracket, errs[0].Kind)
}
