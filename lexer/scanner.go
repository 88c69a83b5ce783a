package lexer

import (
	"fmt"
	"strings"
)

// Scanner is an immutable view of a slice of source text. It tracks the
// originating source so sliced lexemes can still report filename, line
// and column.
type Scanner struct {
	src         string
	name        string
	sliceStart  int
	sliceLength int
}

// NewScanner returns a Scanner over the whole of str.
func NewScanner(str string) *Scanner {
	return &Scanner{src: str, sliceLength: len(str)}
}

// NewScannerWithFilename returns a Scanner over str that reports
// filename in positions and error context.
func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{src: str, name: filename, sliceLength: len(str)}
}

// Filename returns the name of the file the source came from, or "".
func (s Scanner) Filename() string {
	return s.name
}

func (s Scanner) String() string {
	return s.src[s.sliceStart : s.sliceStart+s.sliceLength]
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		fmt.Fprintf(state, "%q", s.String())
		return
	}
	_, _ = state.Write([]byte(s.String()))
}

// Len returns the length of the visible slice in bytes.
func (s Scanner) Len() int {
	return s.sliceLength
}

// Byte returns the i-th byte of the visible slice.
func (s Scanner) Byte(i int) byte {
	return s.src[s.sliceStart+i]
}

// Offset returns the start of the visible slice within the original
// source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// Position returns the 1-indexed line and column of the start of the
// visible slice.
func (s Scanner) Position() (line, col int) {
	prefix := s.src[:s.sliceStart]
	line = strings.Count(prefix, "\n") + 1
	col = s.sliceStart - strings.LastIndex(prefix, "\n")
	return line, col
}

// Slice returns the [a, b) sub-slice of the visible slice.
func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{src: s.src, name: s.name, sliceStart: s.sliceStart + a, sliceLength: b - a}
}

// Skip returns the visible slice with the first i bytes removed.
func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{src: s.src, name: s.name, sliceStart: s.sliceStart + i, sliceLength: s.sliceLength - i}
}

// Context renders the visible slice within its surrounding line for
// error messages.
func (s Scanner) Context() string {
	line, col := s.Position()
	lineStart := strings.LastIndex(s.src[:s.sliceStart], "\n") + 1
	lineEnd := strings.Index(s.src[s.sliceStart:], "\n")
	if lineEnd < 0 {
		lineEnd = len(s.src)
	} else {
		lineEnd += s.sliceStart
	}
	name := s.name
	if name == "" {
		name = "input"
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, line, col, s.src[lineStart:lineEnd])
}
