// Package parser drives a generated LR table over a token stream,
// invoking semantic actions to build the caller's AST.
package parser

import (
	"github.com/arr-ai/lrgen/grammar"
	"github.com/arr-ai/lrgen/lexer"
	"github.com/arr-ai/lrgen/lr"
)

// Stream supplies tokens one at a time. lexer.Lexer implements it; any
// equivalent source may be substituted.
type Stream interface {
	Next() (lexer.Token, error)
}

type frame struct {
	state int
	value interface{}
}

// Parser is the runtime engine. The table is shared and read-only; the
// stack is per session, so one Parser may be reused for sequential
// parses or cheaply created per parse.
type Parser struct {
	table *lr.Table
	stack []frame
}

// New returns a Parser for table.
func New(table *lr.Table) *Parser {
	return &Parser{table: table}
}

// Parse pulls tokens from src until the augmented start production
// accepts, and returns its carried value. The loop holds exactly one
// lookahead token: reduces re-examine it, only shifts advance the
// stream. The first undefined (state, lookahead) entry fails the
// session with a ParseError; no recovery is attempted.
func (p *Parser) Parse(src Stream) (interface{}, error) {
	p.stack = append(p.stack[:0], frame{state: 0})

	tok, err := src.Next()
	if err != nil {
		return nil, err
	}

	for {
		state := p.stack[len(p.stack)-1].state
		act, ok := p.table.Action(state, tok.Kind)
		if !ok {
			return nil, &ParseError{Token: tok, Expected: p.table.Expected(state)}
		}

		switch act.Type {
		case lr.Shift:
			p.stack = append(p.stack, frame{state: act.Target, value: tok.Value})
			if tok, err = src.Next(); err != nil {
				return nil, err
			}

		case lr.Reduce:
			prod := p.table.Production(act.Target)
			n := len(prod.RHS)
			base := len(p.stack) - n
			vals := make([]interface{}, n)
			for i := 0; i < n; i++ {
				vals[i] = p.stack[base+i].value
			}
			p.stack = p.stack[:base]

			value, err := apply(prod, vals)
			if err != nil {
				return nil, &ParseError{Token: tok, Cause: err}
			}

			top := p.stack[len(p.stack)-1].state
			dst, ok := p.table.Goto(top, prod.LHS)
			if !ok {
				// unreachable for a table produced by lr.Build
				return nil, &ParseError{Token: tok, Expected: p.table.Expected(top)}
			}
			p.stack = append(p.stack, frame{state: dst, value: value})

		case lr.Accept:
			return p.stack[len(p.stack)-1].value, nil
		}
	}
}

func apply(prod *grammar.Production, vals []interface{}) (interface{}, error) {
	if prod.Action != nil {
		return prod.Action(vals)
	}
	if len(vals) > 0 {
		return vals[0], nil
	}
	return nil, nil
}
