// Package gotree renders trees of messages, used for structured error
// reports.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type tree struct {
	text  string
	items []Tree
}

// Tree is a node of a printable message tree.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

// New returns a new tree rooted at the given text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a leaf with the given text and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

// AddTree appends an existing tree as a child.
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print returns a visual representation of the tree.
func (t *tree) Print() string {
	return t.text + newLine + printItems(t.items, nil)
}

func printText(text string, spaces []bool, last bool) string {
	var prefix strings.Builder
	for _, space := range spaces {
		if space {
			prefix.WriteString(emptySpace)
		} else {
			prefix.WriteString(continueItem)
		}
	}

	indicator := middleItem
	if last {
		indicator = lastItem
	}

	var out string
	lines := strings.Split(text, "\n")
	for i := range lines {
		text := lines[i]
		if i == 0 {
			out += prefix.String() + indicator + text + newLine
			continue
		}
		if last {
			indicator = emptySpace
		} else {
			indicator = continueItem
		}
		out += prefix.String() + indicator + text + newLine
	}

	return out
}

func printItems(t []Tree, spaces []bool) string {
	var result string
	for i, f := range t {
		last := i == len(t)-1
		result += printText(f.Text(), spaces, last)
		if len(f.Items()) > 0 {
			spacesChild := append(spaces, last)
			result += printItems(f.Items(), spacesChild)
		}
	}
	return result
}
