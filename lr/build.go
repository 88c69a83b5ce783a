package lr

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/lrgen/grammar"
)

type builder struct {
	g         *grammar.Grammar
	prods     []grammar.Production
	byLHS     [][]int
	firsts    *firstSets
	sets      []*itemSet
	causes    map[grammar.Kind]*item
	conflicts []conflict
}

// Build generates the canonical LR(1) table for g. Shift/reduce and
// reduce/reduce conflicts are resolved by the grammar's precedence and
// associativity declarations; anything left unresolved aborts
// generation with a ConflictError naming the competing items and the
// triggering terminal.
func Build(g *grammar.Grammar) (*Table, error) {
	acceptID := grammar.NontermID(g.NumNonterms())

	prods := make([]grammar.Production, 0, len(g.Productions())+1)
	prods = append(prods, grammar.Production{
		LHS:  acceptID,
		RHS:  []grammar.Symbol{{Nonterm: g.Start()}},
		Prec: grammar.NoKind,
	})
	prods = append(prods, g.Productions()...)

	byLHS := make([][]int, g.NumNonterms()+1)
	for i := range prods {
		byLHS[prods[i].LHS] = append(byLHS[prods[i].LHS], i)
	}

	b := &builder{
		g:      g,
		prods:  prods,
		byLHS:  byLHS,
		firsts: computeFirsts(prods, g.NumNonterms()+1),
	}

	b.collectSets()
	table, err := b.fillTable()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("lr: %d productions, %d LR(1) states", len(prods), len(b.sets))
	return table, nil
}

// collectSets builds the canonical collection of LR(1) item sets with a
// worklist, connecting each set to its goto successors.
func (b *builder) collectSets() {
	start := b.closure([]*item{{prod: 0, dot: 0, las: []int{int(grammar.EOF)}}})
	b.sets = []*itemSet{start}
	index := map[string]int{start.key(): 0}

	for i := 0; i < len(b.sets); i++ {
		set := b.sets[i]
		set.termConns = map[grammar.Kind]int{}
		set.ntConns = map[grammar.NontermID]int{}

		for _, it := range set.items {
			rhs := b.prods[it.prod].RHS
			if it.dot >= len(rhs) {
				continue
			}
			sym := rhs[it.dot]
			if sym.Terminal {
				if _, done := set.termConns[sym.Kind]; done {
					continue
				}
			} else if _, done := set.ntConns[sym.Nonterm]; done {
				continue
			}

			next := b.gotoOf(set, sym)
			key := next.key()
			dst, ok := index[key]
			if !ok {
				dst = len(b.sets)
				index[key] = dst
				b.sets = append(b.sets, next)
			}
			if sym.Terminal {
				set.termConns[sym.Kind] = dst
			} else {
				set.ntConns[sym.Nonterm] = dst
			}
		}
	}
}

func (b *builder) fillTable() (*Table, error) {
	rows := make([]*Row, len(b.sets))
	for i, set := range b.sets {
		row := &Row{
			Actions: map[grammar.Kind]Action{},
			Gotos:   map[grammar.NontermID]int{},
		}
		rows[i] = row
		b.causes = map[grammar.Kind]*item{}

		for nt, dst := range set.ntConns {
			row.Gotos[nt] = dst
		}

		// Shifts first, then reduces: conflicts then always present as
		// an existing entry versus an incoming reduce.
		for _, it := range set.items {
			rhs := b.prods[it.prod].RHS
			if it.dot < len(rhs) && rhs[it.dot].Terminal {
				b.setAction(i, row, rhs[it.dot].Kind, Action{Type: Shift, Target: set.termConns[rhs[it.dot].Kind]}, it)
			}
		}
		for _, it := range set.items {
			if it.dot < len(b.prods[it.prod].RHS) {
				continue
			}
			if it.prod == 0 {
				b.setAction(i, row, grammar.EOF, Action{Type: Accept}, it)
				continue
			}
			for _, la := range it.las {
				b.setAction(i, row, grammar.Kind(la), Action{Type: Reduce, Target: it.prod}, it)
			}
		}
	}

	if len(b.conflicts) > 0 {
		return nil, newConflictError(b.conflicts)
	}
	return &Table{rows: rows, prods: b.prods, g: b.g}, nil
}
