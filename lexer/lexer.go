// Package lexer drives a generated DFA over source text, producing a
// lazy token stream under the maximal-munch rule.
package lexer

import (
	"errors"

	"github.com/arr-ai/lrgen/grammar"
	"github.com/arr-ai/lrgen/regex"
)

// ErrExhausted is returned by Next after the EOF token has been
// delivered and until Reset is called.
var ErrExhausted = errors.New("lexer: token stream exhausted")

// Lexer is one lexing session over one source. The DFA and rule set are
// shared and read-only; the session holds only its cursor, so any
// number of sessions may run concurrently against the same automaton.
type Lexer struct {
	dfa   *regex.DFA
	rules []grammar.LexRule
	g     *grammar.Grammar
	src   *Scanner
	pos   int
	done  bool
}

// New returns a Lexer for src using g's lexical rules and their
// compiled DFA.
func New(g *grammar.Grammar, dfa *regex.DFA, src *Scanner) *Lexer {
	return &Lexer{dfa: dfa, rules: g.LexRules(), g: g, src: src}
}

// Reset restarts the session from the beginning of the source.
func (l *Lexer) Reset() {
	l.pos = 0
	l.done = false
}

func (l *Lexer) eofToken() Token {
	return Token{
		Kind:   grammar.EOF,
		Name:   grammar.EOFName,
		Lexeme: *l.src.Slice(l.pos, l.pos),
	}
}

// Next produces the next token. Maximal munch: the DFA is fed bytes
// until it dead-ends, and the longest recorded accepting position wins;
// ties between rules go to the first-declared rule, which the DFA has
// already folded into its accept tags. Skip rules loop internally and
// never surface to the caller. At end of input the EOF token is emitted
// once; afterwards Next returns ErrExhausted until Reset.
func (l *Lexer) Next() (Token, error) {
	if l.done {
		return Token{}, ErrExhausted
	}
	for {
		if l.pos == l.src.Len() {
			l.done = true
			return l.eofToken(), nil
		}

		state := regex.StartState
		matchRule := -1
		matchEnd := l.pos
		for i := l.pos; i < l.src.Len(); i++ {
			state = l.dfa.Transition(state, l.src.Byte(i))
			if state == regex.DeadState {
				break
			}
			if rule, ok := l.dfa.Accepting(state); ok {
				matchRule = rule
				matchEnd = i + 1
			}
		}
		if matchRule < 0 {
			l.done = true
			return Token{}, &LexError{At: *l.src.Slice(l.pos, l.pos+1), Byte: l.src.Byte(l.pos)}
		}

		lexeme := l.src.Slice(l.pos, matchEnd)
		rule := l.rules[matchRule]
		l.pos = matchEnd

		switch rule.Action.Type {
		case grammar.ActionSkip:
			continue
		case grammar.ActionEOF:
			l.done = true
			return l.eofToken(), nil
		}

		value := interface{}(lexeme.String())
		if rule.Action.Value != nil {
			v, err := rule.Action.Value(lexeme.String())
			if err != nil {
				l.done = true
				return Token{}, &LexError{At: *lexeme, Byte: lexeme.Byte(0), Cause: err}
			}
			value = v
		}
		return Token{
			Kind:   rule.Action.Kind,
			Name:   l.g.KindName(rule.Action.Kind),
			Value:  value,
			Lexeme: *lexeme,
		}, nil
	}
}
