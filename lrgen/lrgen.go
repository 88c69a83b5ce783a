// Package lrgen is the front end of the toolchain: it turns a grammar
// description into the generation-time artifacts (combined DFA and LR
// table) and hands out runtime sessions over them.
package lrgen

import (
	"github.com/arr-ai/lrgen/grammar"
	"github.com/arr-ai/lrgen/lexer"
	"github.com/arr-ai/lrgen/lr"
	"github.com/arr-ai/lrgen/parser"
	"github.com/arr-ai/lrgen/regex"
)

// Language bundles the generated artifacts for one grammar. It is
// immutable and may be shared by any number of concurrent lexing and
// parsing sessions.
type Language struct {
	g        *grammar.Grammar
	dfa      *regex.DFA
	table    *lr.Table
	warnings []regex.Warning
}

// Compile runs both generators over g. Any definition or conflict error
// aborts compilation; no partial artifact is returned. Non-fatal
// empty-match warnings are retained on the Language.
func Compile(g *grammar.Grammar) (*Language, error) {
	patterns := make([]regex.Node, 0, len(g.LexRules()))
	for _, r := range g.LexRules() {
		patterns = append(patterns, r.Pattern)
	}
	dfa, warnings, err := regex.Compile(g.Defs(), patterns)
	if err != nil {
		return nil, err
	}

	table, err := lr.Build(g)
	if err != nil {
		return nil, err
	}

	return &Language{g: g, dfa: dfa, table: table, warnings: warnings}, nil
}

// MustCompile is Compile, panicking on error.
func MustCompile(g *grammar.Grammar) *Language {
	l, err := Compile(g)
	if err != nil {
		panic(err)
	}
	return l
}

// Grammar returns the source description.
func (l *Language) Grammar() *grammar.Grammar { return l.g }

// DFA returns the combined lexical automaton.
func (l *Language) DFA() *regex.DFA { return l.dfa }

// Table returns the LR parse table.
func (l *Language) Table() *lr.Table { return l.table }

// Warnings returns the non-fatal generation warnings.
func (l *Language) Warnings() []regex.Warning { return l.warnings }

// Lexer starts a lexing session over src.
func (l *Language) Lexer(src *lexer.Scanner) *lexer.Lexer {
	return lexer.New(l.g, l.dfa, src)
}

// Parse runs one full session over src: a fresh lexer pulled by a fresh
// parser, returning the start production's value.
func (l *Language) Parse(src *lexer.Scanner) (interface{}, error) {
	return parser.New(l.table).Parse(l.Lexer(src))
}
