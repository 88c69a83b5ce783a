// Package grammar holds the in-memory description model shared by the
// lexical and grammatical compilers: token kinds, ordered lexical
// rules, productions grouped by nonterminal, and precedence
// declarations.
package grammar

import (
	"github.com/arr-ai/lrgen/regex"
)

// Kind identifies a terminal symbol. The kind set is closed once a
// Grammar is built.
type Kind int

// EOF is the implicit end-of-input terminal, present in every grammar.
const EOF Kind = 0

// EOFName is the display name of the EOF kind.
const EOFName = "$end"

// NoKind marks the absence of a terminal reference.
const NoKind Kind = -1

// NontermID identifies a nonterminal symbol.
type NontermID int

// KindInfo describes one terminal.
type KindInfo struct {
	Name string
}

// LexActionType discriminates the action attached to a lexical rule.
type LexActionType int

const (
	// ActionEmit produces a token of the rule's kind.
	ActionEmit LexActionType = iota
	// ActionSkip discards the match and continues lexing.
	ActionSkip
	// ActionEOF emits the EOF token and ends the session.
	ActionEOF
)

// LexAction is what happens when a lexical rule wins a match. For
// ActionEmit, Value derives the token payload from the matched text;
// a nil Value carries the text itself.
type LexAction struct {
	Type  LexActionType
	Kind  Kind
	Value func(text string) (interface{}, error)
}

// LexRule pairs a pattern with an action. Rules are ordered; order is
// the tie-break priority for equal-length matches.
type LexRule struct {
	Pattern regex.Node
	Action  LexAction
}

// Symbol is one element of a production's right-hand side.
type Symbol struct {
	Terminal bool
	Kind     Kind
	Nonterm  NontermID
}

// SemanticAction maps the carried values of a production's matched
// symbols to one output value. A nil action carries the first value
// through (or nil for an empty production).
type SemanticAction func(vals []interface{}) (interface{}, error)

// Production is one alternative of a nonterminal.
type Production struct {
	LHS    NontermID
	RHS    []Symbol
	Action SemanticAction
	// Prec overrides the production's precedence terminal; NoKind
	// defers to the rightmost terminal of RHS.
	Prec Kind
}

// Assoc is the associativity of a precedence level.
type Assoc int

const (
	Left Assoc = iota
	Right
	NonAssoc
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "nonassoc"
}

// PrecLevel groups terminals of equal precedence. Later-declared levels
// bind tighter.
type PrecLevel struct {
	Assoc Assoc
	Kinds []Kind
}

// Grammar is the validated, immutable description consumed by the
// generators.
type Grammar struct {
	kinds    []KindInfo
	defs     regex.Defs
	lexRules []LexRule
	nonterms []string
	prods    []Production
	byLHS    [][]int
	start    NontermID
	levels   []PrecLevel
	prec     map[Kind]int // kind -> level index
}

// NumKinds returns the number of terminals, EOF included.
func (g *Grammar) NumKinds() int { return len(g.kinds) }

// KindName returns the display name of k.
func (g *Grammar) KindName(k Kind) string {
	if k >= 0 && int(k) < len(g.kinds) {
		return g.kinds[k].Name
	}
	return "?"
}

// Defs returns the named regex definitions.
func (g *Grammar) Defs() regex.Defs { return g.defs }

// LexRules returns the ordered lexical rules.
func (g *Grammar) LexRules() []LexRule { return g.lexRules }

// NumNonterms returns the number of nonterminals.
func (g *Grammar) NumNonterms() int { return len(g.nonterms) }

// NontermName returns the name of nt.
func (g *Grammar) NontermName(nt NontermID) string {
	if nt >= 0 && int(nt) < len(g.nonterms) {
		return g.nonterms[nt]
	}
	return "$accept"
}

// Productions returns all productions in declaration order.
func (g *Grammar) Productions() []Production { return g.prods }

// ProdsFor returns the indices of nt's productions.
func (g *Grammar) ProdsFor(nt NontermID) []int { return g.byLHS[nt] }

// Start returns the designated start nonterminal.
func (g *Grammar) Start() NontermID { return g.start }

// TokenPrec returns the precedence level and associativity declared for
// k. Higher levels bind tighter.
func (g *Grammar) TokenPrec(k Kind) (level int, assoc Assoc, ok bool) {
	if l, has := g.prec[k]; has {
		return l, g.levels[l].Assoc, true
	}
	return 0, 0, false
}

// ProdPrec returns the precedence of p: its explicit tag if set,
// otherwise that of the rightmost terminal in its RHS.
func (g *Grammar) ProdPrec(p *Production) (level int, assoc Assoc, ok bool) {
	if p.Prec != NoKind {
		return g.TokenPrec(p.Prec)
	}
	for i := len(p.RHS) - 1; i >= 0; i-- {
		if p.RHS[i].Terminal {
			return g.TokenPrec(p.RHS[i].Kind)
		}
	}
	return 0, 0, false
}

// ProdString renders p in the conventional arrow form.
func (g *Grammar) ProdString(p *Production) string {
	out := g.NontermName(p.LHS) + " →"
	if len(p.RHS) == 0 {
		return out + " ε"
	}
	for _, s := range p.RHS {
		if s.Terminal {
			out += " " + g.KindName(s.Kind)
		} else {
			out += " " + g.NontermName(s.Nonterm)
		}
	}
	return out
}
