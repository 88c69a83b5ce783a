package lr

import (
	"fmt"
	"sort"

	"github.com/arr-ai/lrgen/gotree"
	"github.com/arr-ai/lrgen/grammar"
)

type conflict struct {
	state    int
	terminal string
	existing string
	incoming string
	reason   string
}

// ConflictError reports every shift/reduce and reduce/reduce conflict
// that survived precedence resolution. Generation fails; no table is
// produced.
type ConflictError struct {
	Conflicts []conflict
}

func newConflictError(conflicts []conflict) *ConflictError {
	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.state != b.state {
			return a.state < b.state
		}
		return a.terminal < b.terminal
	})
	return &ConflictError{Conflicts: conflicts}
}

func (e *ConflictError) Error() string {
	t := gotree.New("grammar conflicts")
	for _, c := range e.Conflicts {
		n := t.Add(fmt.Sprintf("state %d on %s: %s", c.state, c.terminal, c.reason))
		n.Add(c.existing)
		n.Add(c.incoming)
	}
	return "\n" + t.Print()
}

func (b *builder) actionString(act Action, it *item) string {
	switch act.Type {
	case Shift:
		return fmt.Sprintf("shift to state %d [%s]", act.Target, b.itemString(it))
	case Reduce:
		return fmt.Sprintf("reduce %s", b.g.ProdString(&b.prods[act.Target]))
	}
	return "accept"
}

func (b *builder) conflictf(state int, k grammar.Kind, old Action, oldIt *item, act Action, it *item, format string, args ...interface{}) {
	b.conflicts = append(b.conflicts, conflict{
		state:    state,
		terminal: b.g.KindName(k),
		existing: b.actionString(old, oldIt),
		incoming: b.actionString(act, it),
		reason:   fmt.Sprintf(format, args...),
	})
}

// setAction installs act for (state, k), resolving collisions with the
// declared precedence and associativity: the higher-precedence action
// wins; at equal precedence left associativity reduces, right
// associativity shifts, and non-associativity is a hard conflict. An
// undeclared collision is always a conflict.
func (b *builder) setAction(state int, row *Row, k grammar.Kind, act Action, it *item) {
	old, has := row.Actions[k]
	if !has {
		row.Actions[k] = act
		b.causes[k] = it
		return
	}
	if old == act {
		return
	}
	oldIt := b.causes[k]

	// The fill order guarantees the incoming action of a collision is a
	// reduce (or an accept on an ambiguous start symbol).
	if act.Type != Reduce || old.Type == Accept {
		b.conflictf(state, k, old, oldIt, act, it, "unresolvable")
		return
	}
	prodLevel, _, prodOK := b.g.ProdPrec(&b.prods[act.Target])

	if old.Type == Reduce {
		oldLevel, _, oldOK := b.g.ProdPrec(&b.prods[old.Target])
		if oldOK && prodOK && oldLevel != prodLevel {
			if prodLevel > oldLevel {
				row.Actions[k] = act
				b.causes[k] = it
			}
			return
		}
		b.conflictf(state, k, old, oldIt, act, it, "reduce/reduce")
		return
	}

	// shift/reduce
	termLevel, termAssoc, termOK := b.g.TokenPrec(k)
	if !termOK || !prodOK {
		b.conflictf(state, k, old, oldIt, act, it, "shift/reduce, no precedence declared")
		return
	}
	switch {
	case prodLevel > termLevel:
		row.Actions[k] = act
		b.causes[k] = it
	case prodLevel < termLevel:
		// keep the shift
	default:
		switch termAssoc {
		case grammar.Left:
			row.Actions[k] = act
			b.causes[k] = it
		case grammar.Right:
			// keep the shift
		default:
			b.conflictf(state, k, old, oldIt, act, it, "non-associative %s", b.g.KindName(k))
		}
	}
}
