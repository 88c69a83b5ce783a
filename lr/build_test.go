package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/lrgen/grammar"
	"github.com/arr-ai/lrgen/regex"
)

// arith builds INT/PLUS/TIMES/parens expression grammar, with or
// without precedence declarations.
func arith(t *testing.T, withPrec bool) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()

	intTok := b.Token("INT")
	plusTok := b.Token("PLUS")
	timesTok := b.Token("TIMES")
	lparen := b.Token("LPAREN")
	rparen := b.Token("RPAREN")

	b.Lex(regex.Plus(regex.Class{{Lo: '0', Hi: '9'}}), intTok)
	b.Lex(regex.Str("+"), plusTok)
	b.Lex(regex.Str("*"), timesTok)
	b.Lex(regex.Str("("), lparen)
	b.Lex(regex.Str(")"), rparen)

	if withPrec {
		b.Precedence(grammar.Left, plusTok)
		b.Precedence(grammar.Left, timesTok)
	}

	b.Rule("e", []grammar.Sym{grammar.N("e"), grammar.T(plusTok), grammar.N("e")}, nil)
	b.Rule("e", []grammar.Sym{grammar.N("e"), grammar.T(timesTok), grammar.N("e")}, nil)
	b.Rule("e", []grammar.Sym{grammar.T(lparen), grammar.N("e"), grammar.T(rparen)}, nil)
	b.Rule("e", []grammar.Sym{grammar.T(intTok)}, nil)
	b.Start("e")

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuildArithWithPrecedence(t *testing.T) {
	table, err := Build(arith(t, true))
	require.NoError(t, err)
	assert.Greater(t, table.NumStates(), 1)

	// State 0 must shift on the tokens that can start an expression
	// and have no action on the ones that cannot.
	intTok := grammar.Kind(1)
	act, ok := table.Action(0, intTok)
	require.True(t, ok)
	assert.Equal(t, Shift, act.Type)

	_, ok = table.Action(0, grammar.EOF)
	assert.False(t, ok)

	plusTok := grammar.Kind(2)
	_, ok = table.Action(0, plusTok)
	assert.False(t, ok)
}

func TestBuildArithWithoutPrecedence(t *testing.T) {
	_, err := Build(arith(t, false))
	require.Error(t, err)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.NotEmpty(t, conflictErr.Conflicts)
	assert.Contains(t, err.Error(), "shift/reduce, no precedence declared")
	assert.Contains(t, err.Error(), "e → e PLUS e")
}

func TestBuildReduceReduceConflict(t *testing.T) {
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

	_, err = Build(g)
	require.Error(t, err)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Contains(t, err.Error(), "reduce/reduce")
	assert.Contains(t, err.Error(), "a → X")
	assert.Contains(t, err.Error(), "b → X")
}

func TestBuildNonAssocConflict(t *testing.T) {
	b := grammar.NewBuilder()
	intTok := b.Token("INT")
	leqTok := b.Token("LEQ")
	b.Lex(regex.Plus(regex.Class{{Lo: '0', Hi: '9'}}), intTok)
	b.Lex(regex.Str("<="), leqTok)
	b.Precedence(grammar.NonAssoc, leqTok)
	b.Rule("e", []grammar.Sym{grammar.N("e"), grammar.T(leqTok), grammar.N("e")}, nil)
	b.Rule("e", []grammar.Sym{grammar.T(intTok)}, nil)
	b.Start("e")
	g, err := b.Build()
	require.NoError(t, err)

	_, err = Build(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-associative LEQ")
}

// The textbook balanced-paren grammar S → (S) | SS | ε is ambiguous;
// generation must reject it rather than silently picking a parse.
func TestBuildAmbiguousParens(t *testing.T) {
	b := grammar.NewBuilder()
	lparen := b.Token("LPAREN")
	rparen := b.Token("RPAREN")
	b.Lex(regex.Str("("), lparen)
	b.Lex(regex.Str(")"), rparen)
	b.Rule("s", []grammar.Sym{grammar.T(lparen), grammar.N("s"), grammar.T(rparen)}, nil)
	b.Rule("s", []grammar.Sym{grammar.N("s"), grammar.N("s")}, nil)
	b.Rule("s", nil, nil)
	b.Start("s")
	g, err := b.Build()
	require.NoError(t, err)

	_, err = Build(g)
	require.Error(t, err)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

// The unambiguous equivalent builds cleanly.
func TestBuildBalancedParens(t *testing.T) {
	table, err := Build(parenGrammar(t))
	require.NoError(t, err)
	assert.Greater(t, table.NumStates(), 1)
}

func parenGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	lparen := b.Token("LPAREN")
	rparen := b.Token("RPAREN")
	b.Lex(regex.Str("("), lparen)
	b.Lex(regex.Str(")"), rparen)
	b.Rule("s", []grammar.Sym{grammar.N("s"), grammar.T(lparen), grammar.N("s"), grammar.T(rparen)}, nil)
	b.Rule("s", nil, nil)
	b.Start("s")
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestTableExpected(t *testing.T) {
	table, err := Build(arith(t, true))
	require.NoError(t, err)
	assert.Equal(t, []string{"INT", "LPAREN"}, table.Expected(0))
}

func TestTableDeterministicRebuild(t *testing.T) {
	a, err := Build(arith(t, true))
	require.NoError(t, err)
	b, err := Build(arith(t, true))
	require.NoError(t, err)
	assert.Equal(t, a.NumStates(), b.NumStates())
}
