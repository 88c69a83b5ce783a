package regex

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// DeadState is the state from which no accepting configuration is
// reachable. Every undefined transition lands here.
const DeadState = 0

// StartState is where every lexing attempt begins.
const StartState = 1

// DFA is the combined automaton for an ordered lexical rule set. Built
// once, immutable thereafter, and safe to share across any number of
// concurrent lexing sessions.
type DFA struct {
	rows   [][256]int32
	accept []int // rule priority per state, or -1
}

// Transition returns the state reached from state on input b.
func (d *DFA) Transition(state int, b byte) int {
	return int(d.rows[state][b])
}

// Accepting returns the priority of the first-declared rule accepted in
// state, if any.
func (d *DFA) Accepting(state int) (rule int, ok bool) {
	r := d.accept[state]
	return r, r >= 0
}

// NumStates returns the number of DFA states, dead state included.
func (d *DFA) NumStates() int {
	return len(d.rows)
}

// Warning flags a generation-time condition that does not abort
// compilation.
type Warning struct {
	Rule int
	Msg  string
}

func (w Warning) String() string {
	return fmt.Sprintf("rule %d: %s", w.Rule, w.Msg)
}

// Compile resolves the given patterns against defs and determinizes
// their union into one DFA. Pattern order is rule priority: when two
// rules accept in the same DFA state, the first-declared rule tags the
// state. Rules whose pattern accepts the empty string are flagged with
// a Warning, since they can stall a lexer that requires progress.
func Compile(defs Defs, patterns []Node) (*DFA, []Warning, error) {
	if len(patterns) == 0 {
		return nil, nil, definitionErrorf("no lexical rules: the automaton has no start state")
	}

	b := &nfaBuilder{}
	root := b.state()
	var warnings []Warning
	for i, p := range patterns {
		resolved, err := defs.Resolve(p)
		if err != nil {
			return nil, nil, definitionErrorf("rule %d: %s", i, err.Error())
		}
		if nullable(resolved) {
			warnings = append(warnings, Warning{Rule: i, Msg: "pattern accepts the empty string"})
		}
		s, t := b.build(resolved)
		t.accept = i
		b.epsilon(root, s)
	}

	d := determinize(b, root)
	logrus.Debugf("regex: %d rules, %d NFA states, %d DFA states",
		len(patterns), len(b.states), d.NumStates())
	return d, warnings, nil
}

// stateSet is a sorted set of NFA state ids.
type stateSet []int

func (ss stateSet) key() string {
	buf := make([]byte, 0, len(ss)*3)
	for _, id := range ss {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16))
	}
	return string(buf)
}

func closure(states []*nfaState, set map[int]bool) stateSet {
	stack := make([]int, 0, len(set))
	for id := range set {
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range states[id].edges {
			if e.eps && !set[e.dst.id] {
				set[e.dst.id] = true
				stack = append(stack, e.dst.id)
			}
		}
	}
	out := make(stateSet, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func determinize(b *nfaBuilder, root *nfaState) *DFA {
	d := &DFA{}
	newState := func(accept int) int {
		d.rows = append(d.rows, [256]int32{})
		d.accept = append(d.accept, accept)
		return len(d.rows) - 1
	}
	newState(-1) // DeadState; all rows zero, so it self-loops

	acceptOf := func(ss stateSet) int {
		accept := -1
		for _, id := range ss {
			if a := b.states[id].accept; a >= 0 && (accept < 0 || a < accept) {
				accept = a
			}
		}
		return accept
	}

	startSet := closure(b.states, map[int]bool{root.id: true})
	seen := map[string]int{stateSet{}.key(): DeadState}
	start := newState(acceptOf(startSet))
	seen[startSet.key()] = start

	type pending struct {
		id  int
		set stateSet
	}
	todo := []pending{{start, startSet}}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for sym := 0; sym < 256; sym++ {
			moved := map[int]bool{}
			for _, id := range cur.set {
				for _, e := range b.states[id].edges {
					if !e.eps && e.lo <= byte(sym) && byte(sym) <= e.hi {
						moved[e.dst.id] = true
					}
				}
			}
			if len(moved) == 0 {
				continue // row already points at DeadState
			}
			next := closure(b.states, moved)
			id, ok := seen[next.key()]
			if !ok {
				id = newState(acceptOf(next))
				seen[next.key()] = id
				todo = append(todo, pending{id, next})
			}
			d.rows[cur.id][sym] = int32(id)
		}
	}
	return d
}
