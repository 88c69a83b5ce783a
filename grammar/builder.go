package grammar

import (
	"github.com/arr-ai/lrgen/regex"
)

// Sym references a grammar symbol by name when declaring productions.
// T references a terminal kind, N a nonterminal.
type Sym interface{ isSym() }

// T is a terminal reference in a production RHS.
type T Kind

// N is a nonterminal reference in a production RHS.
type N string

func (T) isSym() {}
func (N) isSym() {}

type rawProd struct {
	lhs    string
	rhs    []Sym
	action SemanticAction
	prec   Kind
}

// Builder accumulates a grammar description. All validation is deferred
// to Build.
type Builder struct {
	kinds     []KindInfo
	kindIndex map[string]Kind
	defs      regex.Defs
	lexRules  []LexRule
	prods     []rawProd
	levels    []PrecLevel
	start     string
	issues    []string
}

// NewBuilder returns a Builder with the EOF kind predeclared.
func NewBuilder() *Builder {
	return &Builder{
		kinds:     []KindInfo{{Name: EOFName}},
		kindIndex: map[string]Kind{EOFName: EOF},
	}
}

// Token declares a terminal kind. Redeclaring a name is a definition
// error, reported by Build.
func (b *Builder) Token(name string) Kind {
	if k, has := b.kindIndex[name]; has {
		b.issuef("duplicate token kind %q", name)
		return k
	}
	k := Kind(len(b.kinds))
	b.kinds = append(b.kinds, KindInfo{Name: name})
	b.kindIndex[name] = k
	return k
}

// Define binds a named regex definition for use via regex.Ref.
func (b *Builder) Define(name string, n regex.Node) {
	if b.defs.Has(name) {
		b.issuef("duplicate regex definition %q", name)
		return
	}
	b.defs = b.defs.With(name, n)
}

// Lex appends a rule emitting kind with the matched text as payload.
func (b *Builder) Lex(pattern regex.Node, kind Kind) {
	b.lexRules = append(b.lexRules, LexRule{
		Pattern: pattern,
		Action:  LexAction{Type: ActionEmit, Kind: kind},
	})
}

// LexValue appends a rule emitting kind with a payload derived from the
// matched text.
func (b *Builder) LexValue(pattern regex.Node, kind Kind, value func(string) (interface{}, error)) {
	b.lexRules = append(b.lexRules, LexRule{
		Pattern: pattern,
		Action:  LexAction{Type: ActionEmit, Kind: kind, Value: value},
	})
}

// Skip appends a rule that discards its match (whitespace, comments).
func (b *Builder) Skip(pattern regex.Node) {
	b.lexRules = append(b.lexRules, LexRule{
		Pattern: pattern,
		Action:  LexAction{Type: ActionSkip},
	})
}

// LexEOF appends a rule whose match signals end of input.
func (b *Builder) LexEOF(pattern regex.Node) {
	b.lexRules = append(b.lexRules, LexRule{
		Pattern: pattern,
		Action:  LexAction{Type: ActionEOF, Kind: EOF},
	})
}

// Rule appends a production for lhs.
func (b *Builder) Rule(lhs string, rhs []Sym, action SemanticAction) {
	b.prods = append(b.prods, rawProd{lhs: lhs, rhs: rhs, action: action, prec: NoKind})
}

// RulePrec appends a production with an explicit precedence terminal,
// overriding the rightmost-terminal default.
func (b *Builder) RulePrec(lhs string, rhs []Sym, prec Kind, action SemanticAction) {
	b.prods = append(b.prods, rawProd{lhs: lhs, rhs: rhs, action: action, prec: prec})
}

// Precedence declares one level of terminals. Levels declared later
// bind tighter than earlier ones.
func (b *Builder) Precedence(assoc Assoc, kinds ...Kind) {
	b.levels = append(b.levels, PrecLevel{Assoc: assoc, Kinds: kinds})
}

// Start designates the start nonterminal.
func (b *Builder) Start(lhs string) {
	b.start = lhs
}

func (b *Builder) issuef(format string, args ...interface{}) {
	b.issues = append(b.issues, sprintf(format, args...))
}

// Build validates the accumulated description and freezes it into a
// Grammar. It reports every definition problem found, not just the
// first.
func (b *Builder) Build() (*Grammar, error) {
	issues := append([]string{}, b.issues...)

	if len(b.lexRules) == 0 {
		issues = append(issues, "no lexical rules declared")
	}

	// Nonterminals are defined by having at least one production.
	ntIndex := map[string]NontermID{}
	var nonterms []string
	for _, p := range b.prods {
		if _, has := ntIndex[p.lhs]; !has {
			ntIndex[p.lhs] = NontermID(len(nonterms))
			nonterms = append(nonterms, p.lhs)
		}
	}

	prods := make([]Production, 0, len(b.prods))
	byLHS := make([][]int, len(nonterms))
	for _, p := range b.prods {
		rhs := make([]Symbol, 0, len(p.rhs))
		for _, s := range p.rhs {
			switch x := s.(type) {
			case T:
				if int(x) >= len(b.kinds) || x < 0 {
					issues = append(issues, sprintf("production %q references unknown terminal %d", p.lhs, int(x)))
					continue
				}
				rhs = append(rhs, Symbol{Terminal: true, Kind: Kind(x)})
			case N:
				nt, has := ntIndex[string(x)]
				if !has {
					issues = append(issues, sprintf("production %q references undefined nonterminal %q", p.lhs, string(x)))
					continue
				}
				rhs = append(rhs, Symbol{Nonterm: nt})
			}
		}
		lhs := ntIndex[p.lhs]
		byLHS[lhs] = append(byLHS[lhs], len(prods))
		prods = append(prods, Production{LHS: lhs, RHS: rhs, Action: p.action, Prec: p.prec})
	}

	if b.start == "" {
		issues = append(issues, "no start nonterminal designated")
	}
	start, hasStart := ntIndex[b.start]
	if b.start != "" && !hasStart {
		issues = append(issues, sprintf("start nonterminal %q has no productions", b.start))
	}

	prec := map[Kind]int{}
	for level, l := range b.levels {
		for _, k := range l.Kinds {
			if _, has := prec[k]; has {
				issues = append(issues, sprintf("terminal %q appears in two precedence levels", b.kinds[k].Name))
				continue
			}
			prec[k] = level
		}
	}

	if len(issues) > 0 {
		return nil, newDefinitionError(issues)
	}

	return &Grammar{
		kinds:    b.kinds,
		defs:     b.defs,
		lexRules: b.lexRules,
		nonterms: nonterms,
		prods:    prods,
		byLHS:    byLHS,
		start:    start,
		levels:   b.levels,
		prec:     prec,
	}, nil
}
