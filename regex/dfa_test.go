package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// munch runs d over input from the start state and returns the longest
// accepting match, mirroring what the lexer driver records.
func munch(d *DFA, input string) (rule, length int) {
	rule, length = -1, 0
	state := StartState
	for i := 0; i < len(input); i++ {
		state = d.Transition(state, input[i])
		if state == DeadState {
			break
		}
		if r, ok := d.Accepting(state); ok {
			rule, length = r, i+1
		}
	}
	return rule, length
}

func compileRules(t *testing.T, patterns ...Node) *DFA {
	t.Helper()
	d, _, err := Compile(Defs{}, patterns)
	require.NoError(t, err)
	return d
}

func TestCompileEmptyRuleSet(t *testing.T) {
	_, _, err := Compile(Defs{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no lexical rules")
}

func TestCompileEmptyMatchWarning(t *testing.T) {
	_, warnings, err := Compile(Defs{}, []Node{
		Str("x"),
		Star{Elem: Byte('a')},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Rule)
	assert.Contains(t, warnings[0].String(), "empty string")
}

func TestDFAMatching(t *testing.T) {
	lower := Class{{Lo: 'a', Hi: 'z'}}
	digit := Class{{Lo: '0', Hi: '9'}}
	d := compileRules(t,
		Str("let"),            // 0
		Plus(lower),           // 1
		Plus(digit),           // 2
		Str("<="),             // 3
		Plus(AnyOf(" \t\n")),  // 4
	)

	for _, test := range []struct {
		input  string
		rule   int
		length int
	}{
		{"let", 0, 3},             // keyword beats identifier on priority
		{"lettuce", 1, 7},         // maximal munch beats keyword
		{"lx+1", 1, 2},            // stops at non-identifier
		{"123abc", 2, 3},          // maximal digit run
		{"<=1", 3, 2},             //
		{"  \tx", 4, 3},           //
		{"<", -1, 0},              // prefix of <= alone matches nothing
		{"!", -1, 0},              // no rule at all
		{"", -1, 0},               //
	} {
		t.Run(test.input, func(t *testing.T) {
			rule, length := munch(d, test.input)
			assert.Equal(t, test.rule, rule)
			assert.Equal(t, test.length, length)
		})
	}
}

func TestDFATotality(t *testing.T) {
	d := compileRules(t, Str("a"))
	// Every state has a transition for every byte; the dead state
	// traps.
	for state := 0; state < d.NumStates(); state++ {
		for b := 0; b < 256; b++ {
			next := d.Transition(state, byte(b))
			assert.GreaterOrEqual(t, next, 0)
			assert.Less(t, next, d.NumStates())
		}
	}
	for b := 0; b < 256; b++ {
		assert.Equal(t, DeadState, d.Transition(DeadState, byte(b)))
	}
}

func TestDFAWithNamedDefs(t *testing.T) {
	defs := Defs{}.
		With("digit", Class{{Lo: '0', Hi: '9'}}).
		With("number", Plus(Ref("digit")))
	d, _, err := Compile(defs, []Node{Ref("number")})
	require.NoError(t, err)

	rule, length := munch(d, "00731x")
	assert.Equal(t, 0, rule)
	assert.Equal(t, 5, length)
}

func TestCompileUndefinedRef(t *testing.T) {
	_, _, err := Compile(Defs{}, []Node{Ref("ghost")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined reference")
}
