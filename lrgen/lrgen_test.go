package lrgen_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/lrgen/grammar"
	"github.com/arr-ai/lrgen/lexer"
	"github.com/arr-ai/lrgen/lr"
	"github.com/arr-ai/lrgen/lrgen"
	"github.com/arr-ai/lrgen/regex"
)

func sumGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()

	intTok := b.Token("INT")
	plusTok := b.Token("PLUS")

	b.Skip(regex.Plus(regex.AnyOf(" \t")))
	b.LexValue(regex.Plus(regex.Class{{Lo: '0', Hi: '9'}}), intTok, func(text string) (interface{}, error) {
		return strconv.Atoi(text)
	})
	b.Lex(regex.Str("+"), plusTok)

	b.Precedence(grammar.Left, plusTok)
	b.Rule("e", []grammar.Sym{grammar.N("e"), grammar.T(plusTok), grammar.N("e")},
		func(vals []interface{}) (interface{}, error) {
			return vals[0].(int) + vals[2].(int), nil
		})
	b.Rule("e", []grammar.Sym{grammar.T(intTok)}, nil)
	b.Start("e")

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestCompileAndParse(t *testing.T) {
	lang, err := lrgen.Compile(sumGrammar(t))
	require.NoError(t, err)
	assert.Empty(t, lang.Warnings())
	assert.NotNil(t, lang.Grammar())
	assert.NotNil(t, lang.DFA())
	assert.NotNil(t, lang.Table())

	got, err := lang.Parse(lexer.NewScanner("1 + 2 + 39"))
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestCompileConflictNoPartialArtifact(t *testing.T) {
	b := grammar.NewBuilder()
	x := b.Token("X")
	b.Lex(regex.Str("x"), x)
	b.Rule("s", []grammar.Sym{grammar.N("a")}, nil)
	b.Rule("s", []grammar.Sym{grammar.N("b")}, nil)
	b.Rule("a", []grammar.Sym{grammar.T(x)}, nil)
	b.Rule("b", []grammar.Sym{grammar.T(x)}, nil)
	b.Start("s")
	g, err := b.Build()
	require.NoError(t, err)

	lang, err := lrgen.Compile(g)
	require.Error(t, err)
	assert.Nil(t, lang)
	var conflictErr *lr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCompileSurfacesWarnings(t *testing.T) {
	b := grammar.NewBuilder()
	idTok := b.Token("ID")
	// a Kleene star can match the empty string; generation keeps the
	// rule but flags it
	b.Lex(regex.Star{Elem: regex.Class{{Lo: 'a', Hi: 'z'}}}, idTok)
	b.Rule("s", []grammar.Sym{grammar.T(idTok)}, nil)
	b.Start("s")
	g, err := b.Build()
	require.NoError(t, err)

	lang, err := lrgen.Compile(g)
	require.NoError(t, err)
	require.Len(t, lang.Warnings(), 1)
	assert.Equal(t, 0, lang.Warnings()[0].Rule)
}

func TestMustCompilePanics(t *testing.T) {
	b := grammar.NewBuilder()
	x := b.Token("X")
	b.Lex(regex.Str("x"), x)
	b.Rule("s", []grammar.Sym{grammar.N("a")}, nil)
	b.Rule("s", []grammar.Sym{grammar.N("b")}, nil)
	b.Rule("a", []grammar.Sym{grammar.T(x)}, nil)
	b.Rule("b", []grammar.Sym{grammar.T(x)}, nil)
	b.Start("s")
	g, err := b.Build()
	require.NoError(t, err)

	assert.Panics(t, func() { lrgen.MustCompile(g) })
}

func TestLexerSession(t *testing.T) {
	lang, err := lrgen.Compile(sumGrammar(t))
	require.NoError(t, err)

	lx := lang.Lexer(lexer.NewScanner("7 + 8"))
	var names []string
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		names = append(names, tok.Name)
		if tok.IsEOF() {
			break
		}
	}
	assert.Equal(t, []string{"INT", "PLUS", "INT", "$end"}, names)
}
