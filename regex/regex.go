// Package regex compiles the regular expressions of a lexical rule set
// into a single deterministic finite automaton.
//
// The alphabet is bytes: every pattern matches a byte sequence, and the
// generated DFA has a total transition function over all 256 byte
// values. Multi-byte UTF-8 literals are expressed as their byte
// sequences via Str.
package regex

import (
	"fmt"

	"github.com/arr-ai/frozen"
)

// Node is a regular expression tree. The variants are Byte, Seq, Alt,
// Star, Class and Ref.
type Node interface {
	isNode()
	fmt.Stringer
}

// Byte matches a single byte.
type Byte byte

// Seq matches its elements in order. An empty Seq matches the empty
// string.
type Seq []Node

// Alt matches any one of its elements.
type Alt []Node

// Star matches zero or more repetitions of its element.
type Star struct {
	Elem Node
}

// Range is an inclusive byte range within a Class.
type Range struct {
	Lo, Hi byte
}

// Class matches any byte falling in one of its ranges.
type Class []Range

// Ref refers to a named definition, resolved at compile time.
type Ref string

func (Byte) isNode()  {}
func (Seq) isNode()   {}
func (Alt) isNode()   {}
func (Star) isNode()  {}
func (Class) isNode() {}
func (Ref) isNode()   {}

func (b Byte) String() string { return fmt.Sprintf("%q", string(rune(b))) }

func (s Seq) String() string {
	out := ""
	for _, n := range s {
		out += n.String()
	}
	return "(" + out + ")"
}

func (a Alt) String() string {
	out := ""
	for i, n := range a {
		if i > 0 {
			out += "|"
		}
		out += n.String()
	}
	return "(" + out + ")"
}

func (s Star) String() string { return s.Elem.String() + "*" }

func (c Class) String() string {
	out := "["
	for _, r := range c {
		if r.Lo == r.Hi {
			out += string(rune(r.Lo))
		} else {
			out += fmt.Sprintf("%c-%c", rune(r.Lo), rune(r.Hi))
		}
	}
	return out + "]"
}

func (r Ref) String() string { return "{" + string(r) + "}" }

// Str matches the bytes of s in order.
func Str(s string) Node {
	seq := make(Seq, 0, len(s))
	for i := 0; i < len(s); i++ {
		seq = append(seq, Byte(s[i]))
	}
	return seq
}

// Plus matches one or more repetitions of n.
func Plus(n Node) Node { return Seq{n, Star{n}} }

// Opt matches n or the empty string.
func Opt(n Node) Node { return Alt{n, Seq{}} }

// AnyOf matches any single byte of s.
func AnyOf(s string) Node {
	c := make(Class, 0, len(s))
	for i := 0; i < len(s); i++ {
		c = append(c, Range{s[i], s[i]})
	}
	return c
}

// Defs is an immutable environment of named definitions. The zero value
// is empty.
type Defs struct {
	m frozen.Map
}

// With returns a copy of d with name bound to n.
func (d Defs) With(name string, n Node) Defs {
	return Defs{m: d.m.With(name, n)}
}

// Get returns the definition bound to name, if any.
func (d Defs) Get(name string) (Node, bool) {
	if v, has := d.m.Get(name); has {
		return v.(Node), true
	}
	return nil, false
}

// Has reports whether name is bound.
func (d Defs) Has(name string) bool {
	return d.m.Has(name)
}

// Resolve substitutes every Ref in n with its definition. Undefined and
// cyclic references yield a DefinitionError.
func (d Defs) Resolve(n Node) (Node, error) {
	return d.resolve(n, frozen.Map{})
}

func (d Defs) resolve(n Node, active frozen.Map) (Node, error) {
	switch x := n.(type) {
	case Byte, Class:
		return n, nil
	case Seq:
		out := make(Seq, 0, len(x))
		for _, e := range x {
			r, err := d.resolve(e, active)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	case Alt:
		out := make(Alt, 0, len(x))
		for _, e := range x {
			r, err := d.resolve(e, active)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	case Star:
		r, err := d.resolve(x.Elem, active)
		if err != nil {
			return nil, err
		}
		return Star{Elem: r}, nil
	case Ref:
		if active.Has(string(x)) {
			return nil, definitionErrorf("cyclic reference to {%s}", string(x))
		}
		def, has := d.Get(string(x))
		if !has {
			return nil, definitionErrorf("undefined reference {%s}", string(x))
		}
		return d.resolve(def, active.With(string(x), struct{}{}))
	}
	return nil, definitionErrorf("unknown node %T", n)
}

// nullable reports whether n accepts the empty string. n must be
// resolved (no Refs).
func nullable(n Node) bool {
	switch x := n.(type) {
	case Byte, Class:
		return false
	case Star:
		return true
	case Seq:
		for _, e := range x {
			if !nullable(e) {
				return false
			}
		}
		return true
	case Alt:
		for _, e := range x {
			if nullable(e) {
				return true
			}
		}
		return false
	}
	return false
}
