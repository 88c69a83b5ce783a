// Package lr compiles a grammar into canonical LR(1) action/goto
// tables. LR(1) rather than LALR(1): lookahead sets are never merged
// across states, so the full LR(1) grammar class is accepted at the
// cost of a larger automaton.
package lr

import (
	"sort"

	"github.com/arr-ai/lrgen/grammar"
)

// ActionType discriminates table actions.
type ActionType int

const (
	// Shift pushes the lookahead and moves to Target.
	Shift ActionType = iota
	// Reduce pops by production Target and consults goto.
	Reduce
	// Accept ends the parse with the start value.
	Accept
)

// Action is one tagged table entry. Absence of an entry is the error
// action.
type Action struct {
	Type   ActionType
	Target int
}

// Row holds the action and goto entries of one automaton state.
type Row struct {
	Actions map[grammar.Kind]Action
	Gotos   map[grammar.NontermID]int
}

// Table is the generated parse table: immutable after Build and safe to
// share across concurrent parsing sessions. Production 0 is the
// augmentation $accept → start.
type Table struct {
	rows  []*Row
	prods []grammar.Production
	g     *grammar.Grammar
}

// Action returns the table action for (state, lookahead terminal).
func (t *Table) Action(state int, k grammar.Kind) (Action, bool) {
	act, ok := t.rows[state].Actions[k]
	return act, ok
}

// Goto returns the state entered after reducing to nt in state.
func (t *Table) Goto(state int, nt grammar.NontermID) (int, bool) {
	dst, ok := t.rows[state].Gotos[nt]
	return dst, ok
}

// Production returns production i of the augmented grammar.
func (t *Table) Production(i int) *grammar.Production {
	return &t.prods[i]
}

// NumStates returns the number of automaton states.
func (t *Table) NumStates() int {
	return len(t.rows)
}

// Grammar returns the grammar the table was generated from.
func (t *Table) Grammar() *grammar.Grammar {
	return t.g
}

// Expected lists the names of the terminals for which state has an
// action, in kind order. Used for parse error reports.
func (t *Table) Expected(state int) []string {
	kinds := make([]int, 0, len(t.rows[state].Actions))
	for k := range t.rows[state].Actions {
		kinds = append(kinds, int(k))
	}
	sort.Ints(kinds)
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, t.g.KindName(grammar.Kind(k)))
	}
	return names
}
