package grammar

import (
	"fmt"

	"github.com/arr-ai/lrgen/gotree"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// DefinitionError reports every problem found while validating a
// grammar description.
type DefinitionError struct {
	Issues []string
}

func newDefinitionError(issues []string) *DefinitionError {
	return &DefinitionError{Issues: issues}
}

func (e *DefinitionError) Error() string {
	t := gotree.New("grammar definition failed")
	for _, issue := range e.Issues {
		t.Add(issue)
	}
	return "\n" + t.Print()
}
