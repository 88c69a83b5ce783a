package lexer

import (
	"fmt"

	"github.com/arr-ai/lrgen/grammar"
)

// Token is one terminal instance: a kind, an optional payload, and the
// source slice it was matched from. Tokens are immutable once produced.
type Token struct {
	Kind   grammar.Kind
	Name   string
	Value  interface{}
	Lexeme Scanner
}

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Kind == grammar.EOF
}

func (t Token) String() string {
	line, col := t.Lexeme.Position()
	if t.IsEOF() {
		return fmt.Sprintf("%s at %d:%d", t.Name, line, col)
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Name, t.Lexeme.String(), line, col)
}
