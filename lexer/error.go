package lexer

import (
	"fmt"
)

// LexError reports that no lexical rule matched at the current
// position, or that a rule's payload derivation failed. It is fatal to
// the session; the DFA remains valid for new sessions.
type LexError struct {
	At    Scanner
	Byte  byte
	Cause error
}

func (e *LexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lex error: %s\n  %s", e.Cause, e.At.Context())
	}
	return fmt.Sprintf("lex error: no rule matches %q\n  %s", string(rune(e.Byte)), e.At.Context())
}

func (e *LexError) Unwrap() error {
	return e.Cause
}
