package regex

import "fmt"

// DefinitionError reports an invalid lexical definition: an undefined
// or cyclic named reference, or a rule set with no valid start state.
// It is raised at generation time; no DFA is produced alongside one.
type DefinitionError struct {
	msg string
}

func definitionErrorf(format string, args ...interface{}) *DefinitionError {
	return &DefinitionError{msg: fmt.Sprintf(format, args...)}
}

func (e *DefinitionError) Error() string {
	return "lexical definition error: " + e.msg
}
