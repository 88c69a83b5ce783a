package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	defs := Defs{}.
		With("digit", Class{{Lo: '0', Hi: '9'}}).
		With("number", Plus(Ref("digit")))

	resolved, err := defs.Resolve(Ref("number"))
	require.NoError(t, err)
	assert.False(t, nullable(resolved))

	// A resolved tree has no Refs left.
	var hasRef func(n Node) bool
	hasRef = func(n Node) bool {
		switch x := n.(type) {
		case Ref:
			return true
		case Seq:
			for _, e := range x {
				if hasRef(e) {
					return true
				}
			}
		case Alt:
			for _, e := range x {
				if hasRef(e) {
					return true
				}
			}
		case Star:
			return hasRef(x.Elem)
		}
		return false
	}
	assert.False(t, hasRef(resolved))
}

func TestResolveUndefined(t *testing.T) {
	_, err := Defs{}.Resolve(Ref("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undefined reference {nope}`)
}

func TestResolveCycle(t *testing.T) {
	defs := Defs{}.
		With("a", Seq{Byte('x'), Ref("b")}).
		With("b", Ref("a"))

	_, err := defs.Resolve(Ref("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic reference")
}

func TestNullable(t *testing.T) {
	for _, test := range []struct {
		name     string
		node     Node
		nullable bool
	}{
		{"byte", Byte('a'), false},
		{"class", Class{{Lo: 'a', Hi: 'z'}}, false},
		{"empty seq", Seq{}, true},
		{"star", Star{Elem: Byte('a')}, true},
		{"opt", Opt(Byte('a')), true},
		{"plus", Plus(Byte('a')), false},
		{"str", Str("ab"), false},
		{"alt with empty", Alt{Byte('a'), Seq{}}, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.nullable, nullable(test.node))
		})
	}
}
