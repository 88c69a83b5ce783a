package parser

import (
	"fmt"
	"strings"

	"github.com/arr-ai/lrgen/gotree"
	"github.com/arr-ai/lrgen/lexer"
)

// ParseError reports an unexpected token, or a failed semantic action,
// at the position parsing stopped. It is fatal to the session; the
// table remains valid for new sessions.
type ParseError struct {
	Token    lexer.Token
	Expected []string
	Cause    error
}

func (e *ParseError) Error() string {
	t := gotree.New("parse failed")
	var n gotree.Tree
	if e.Cause != nil {
		n = t.Add(fmt.Sprintf("semantic action failed near %s", e.Token))
		n.Add(e.Cause.Error())
	} else {
		n = t.Add(fmt.Sprintf("unexpected %s", e.Token))
		if len(e.Expected) > 0 {
			n.Add("expected one of: " + strings.Join(e.Expected, ", "))
		}
	}
	n.Add(e.Token.Lexeme.Context())
	return "\n" + t.Print()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
