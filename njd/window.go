package njd

// WindowKind tags which positions of a 5-wide cursor are actually present.
// Modeled as a plain tagged struct rather than an interface, favoring
// explicit state over polymorphism.
type WindowKind int

const (
	WindowSingle WindowKind = iota // only curr exists (len(nodes)==1)
	WindowFirst                    // curr + next.. (i == 0, len > 1)
	WindowLast                     // prev.. + curr (i == last)
	WindowFull                     // prev + curr + next (0 < i < last); prev2/next2 may be absent
)

// Window is a 5-wide cursor (prev2, prev, curr, next, next2) centered on
// index I of an NJD, with Kind recording which of those are in bounds.
// Nodes are addressed by pointer so projections observe in-place mutation.
type Window struct {
	Kind  WindowKind
	Nodes []*Node
	I     int
}

// NewWindow builds a Window positioned at index i.
func NewWindow(nodes []*Node, i int) Window {
	w := Window{Nodes: nodes, I: i}
	switch {
	case len(nodes) == 1:
		w.Kind = WindowSingle
	case i == 0:
		w.Kind = WindowFirst
	case i == len(nodes)-1:
		w.Kind = WindowLast
	default:
		w.Kind = WindowFull
	}
	return w
}

func (w Window) at(offset int) (*Node, bool) {
	j := w.I + offset
	if j < 0 || j >= len(w.Nodes) {
		return nil, false
	}
	return w.Nodes[j], true
}

// Curr returns the centered node; always present.
func (w Window) Curr() *Node { n, _ := w.at(0); return n }

// Prev returns (prev, ok): the node immediately before curr.
func (w Window) Prev() (*Node, bool) { return w.at(-1) }

// Next returns (next, ok): the node immediately after curr.
func (w Window) Next() (*Node, bool) { return w.at(1) }

// Prev2 returns (prev2, ok): two nodes before curr.
func (w Window) Prev2() (*Node, bool) { return w.at(-2) }

// Next2 returns (next2, ok): two nodes after curr.
func (w Window) Next2() (*Node, bool) { return w.at(2) }

// Triple narrows the window to (prev, curr, next), reporting ok=false if
// either side is out of bounds.
func (w Window) Triple() (prev, curr, next *Node, ok bool) {
	p, pOk := w.Prev()
	n, nOk := w.Next()
	if !pOk || !nOk {
		return nil, w.Curr(), nil, false
	}
	return p, w.Curr(), n, true
}

// Double narrows the window to (prev, curr), reporting ok=false if prev is
// out of bounds.
func (w Window) Double() (prev, curr *Node, ok bool) {
	p, pOk := w.Prev()
	if !pOk {
		return nil, w.Curr(), false
	}
	return p, w.Curr(), true
}

// ForwardDouble narrows the window to (curr, next).
func (w Window) ForwardDouble() (curr, next *Node, ok bool) {
	n, nOk := w.Next()
	if !nOk {
		return w.Curr(), nil, false
	}
	return w.Curr(), n, true
}

// Each calls fn once per index of nodes with a Window positioned there.
func Each(nodes []*Node, fn func(w Window)) {
	for i := range nodes {
		fn(NewWindow(nodes, i))
	}
}
