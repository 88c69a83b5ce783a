package regex

// Thompson construction. Each NFA state carries an accept tag: the
// priority of the lexical rule it accepts, or -1.

type nfaState struct {
	id     int
	edges  []nfaEdge
	accept int
}

type nfaEdge struct {
	eps    bool
	lo, hi byte
	dst    *nfaState
}

type nfaBuilder struct {
	states []*nfaState
}

func (b *nfaBuilder) state() *nfaState {
	s := &nfaState{id: len(b.states), accept: -1}
	b.states = append(b.states, s)
	return s
}

func (b *nfaBuilder) epsilon(from, to *nfaState) {
	from.edges = append(from.edges, nfaEdge{eps: true, dst: to})
}

func (b *nfaBuilder) span(from, to *nfaState, lo, hi byte) {
	from.edges = append(from.edges, nfaEdge{lo: lo, hi: hi, dst: to})
}

// build returns the entry and exit states of the fragment matching n.
// n must be resolved (no Refs).
func (b *nfaBuilder) build(n Node) (start, end *nfaState) {
	switch x := n.(type) {
	case Byte:
		start, end = b.state(), b.state()
		b.span(start, end, byte(x), byte(x))
	case Class:
		start, end = b.state(), b.state()
		for _, r := range x {
			b.span(start, end, r.Lo, r.Hi)
		}
	case Seq:
		start = b.state()
		end = start
		for _, e := range x {
			s, t := b.build(e)
			b.epsilon(end, s)
			end = t
		}
	case Alt:
		start, end = b.state(), b.state()
		for _, e := range x {
			s, t := b.build(e)
			b.epsilon(start, s)
			b.epsilon(t, end)
		}
	case Star:
		start, end = b.state(), b.state()
		s, t := b.build(x.Elem)
		b.epsilon(start, s)
		b.epsilon(start, end)
		b.epsilon(t, s)
		b.epsilon(t, end)
	default:
		panic(definitionErrorf("unresolved node %T in NFA construction", n))
	}
	return start, end
}
