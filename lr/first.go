package lr

import (
	"sort"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/lrgen/grammar"
)

// firstSets holds the FIRST sets and nullability of every nonterminal
// of the augmented grammar, computed once by fixpoint iteration and
// frozen for shared lookup during item set construction.
type firstSets struct {
	m        frozen.Map // grammar.NontermID -> []grammar.Kind, sorted
	nullable []bool
}

func computeFirsts(prods []grammar.Production, numNonterms int) *firstSets {
	sets := make([]map[grammar.Kind]bool, numNonterms)
	for i := range sets {
		sets[i] = map[grammar.Kind]bool{}
	}
	nullable := make([]bool, numNonterms)

	for changed := true; changed; {
		changed = false
		for i := range prods {
			p := &prods[i]
			lhs := sets[p.LHS]
			allNullable := true
			for _, s := range p.RHS {
				if s.Terminal {
					if !lhs[s.Kind] {
						lhs[s.Kind] = true
						changed = true
					}
					allNullable = false
					break
				}
				for k := range sets[s.Nonterm] {
					if !lhs[k] {
						lhs[k] = true
						changed = true
					}
				}
				if !nullable[s.Nonterm] {
					allNullable = false
					break
				}
			}
			if allNullable && !nullable[p.LHS] {
				nullable[p.LHS] = true
				changed = true
			}
		}
	}

	m := frozen.Map{}
	for nt, set := range sets {
		kinds := make([]grammar.Kind, 0, len(set))
		for k := range set {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		m = m.With(grammar.NontermID(nt), kinds)
	}
	return &firstSets{m: m, nullable: nullable}
}

func (f *firstSets) first(nt grammar.NontermID) []grammar.Kind {
	return f.m.GetElse(nt, []grammar.Kind(nil)).([]grammar.Kind)
}

// ofString returns FIRST of a symbol string followed by the terminals
// in la, as a sorted set of kind ids.
func (f *firstSets) ofString(syms []grammar.Symbol, la []int) []int {
	set := map[int]bool{}
	allNullable := true
	for _, s := range syms {
		if s.Terminal {
			set[int(s.Kind)] = true
			allNullable = false
			break
		}
		for _, k := range f.first(s.Nonterm) {
			set[int(k)] = true
		}
		if !f.nullable[s.Nonterm] {
			allNullable = false
			break
		}
	}
	if allNullable {
		for _, k := range la {
			set[k] = true
		}
	}
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
