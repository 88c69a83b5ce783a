package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arr-ai/lrgen/grammar"
)

// item is an LR(1) item: a production with a marked position and a
// sorted lookahead set.
type item struct {
	prod int
	dot  int
	las  []int
}

// itemSet is one automaton state: its items plus the goto connections
// discovered while building the canonical collection.
type itemSet struct {
	items     []*item
	termConns map[grammar.Kind]int
	ntConns   map[grammar.NontermID]int
}

// key canonically identifies an item set, lookaheads included, so that
// canonical LR(1) states with equal cores but different lookaheads stay
// distinct.
func (s *itemSet) key() string {
	var sb strings.Builder
	for _, it := range s.items {
		fmt.Fprintf(&sb, "%d.%d:", it.prod, it.dot)
		for _, la := range it.las {
			fmt.Fprintf(&sb, "%d,", la)
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

func (s *itemSet) sortItems() {
	sort.Slice(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		if a.prod != b.prod {
			return a.prod < b.prod
		}
		return a.dot < b.dot
	})
}

// mergeLookaheads returns the ordered union of two sorted lookahead
// sets and whether anything was added to a.
func mergeLookaheads(a, b []int) ([]int, bool) {
	out := make([]int, 0, len(a)+len(b))
	added := false
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
			added = true
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	if j < len(b) {
		out = append(out, b[j:]...)
		added = true
	}
	return out, added
}

// closure completes a kernel to a full item set. Items sharing a core
// have their lookaheads merged; merged items are reprocessed until the
// set is stable.
func (b *builder) closure(kernel []*item) *itemSet {
	type core struct{ prod, dot int }
	byCore := map[core]*item{}
	var order []*item

	add := func(prod, dot int, las []int) bool {
		c := core{prod, dot}
		if existing, ok := byCore[c]; ok {
			merged, added := mergeLookaheads(existing.las, las)
			existing.las = merged
			return added
		}
		it := &item{prod: prod, dot: dot, las: append([]int{}, las...)}
		byCore[c] = it
		order = append(order, it)
		return true
	}

	for _, it := range kernel {
		add(it.prod, it.dot, it.las)
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < len(order); i++ {
			it := order[i]
			rhs := b.prods[it.prod].RHS
			if it.dot >= len(rhs) || rhs[it.dot].Terminal {
				continue
			}
			la := b.firsts.ofString(rhs[it.dot+1:], it.las)
			for _, pi := range b.byLHS[rhs[it.dot].Nonterm] {
				if add(pi, 0, la) {
					changed = true
				}
			}
		}
	}

	set := &itemSet{items: order}
	set.sortItems()
	return set
}

// gotoOf computes the state reached from set on sym.
func (b *builder) gotoOf(set *itemSet, sym grammar.Symbol) *itemSet {
	var kernel []*item
	for _, it := range set.items {
		rhs := b.prods[it.prod].RHS
		if it.dot < len(rhs) && rhs[it.dot] == sym {
			kernel = append(kernel, &item{prod: it.prod, dot: it.dot + 1, las: it.las})
		}
	}
	return b.closure(kernel)
}

func (b *builder) itemString(it *item) string {
	p := &b.prods[it.prod]
	out := b.g.NontermName(p.LHS) + " →"
	for i, s := range p.RHS {
		if i == it.dot {
			out += " ·"
		}
		if s.Terminal {
			out += " " + b.g.KindName(s.Kind)
		} else {
			out += " " + b.g.NontermName(s.Nonterm)
		}
	}
	if it.dot == len(p.RHS) {
		out += " ·"
	}
	return out
}
