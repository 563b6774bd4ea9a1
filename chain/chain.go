package chain

import "github.com/delaneyj/cellchain/cell"

// Notifier is the payload-less capability every upstream provides.
type Notifier interface {
	AddListener(fn func()) *cell.Listener
	RemoveListener(l *cell.Listener)
}

// ValueSource is a readable Notifier. *cell.Cell and every operator in this
// package satisfy it, so operators chain freely.
type ValueSource[T any] interface {
	Notifier
	Value() T
}

type upstreamLink struct {
	src    Notifier
	notify func()
	handle *cell.Listener
}

// node is the shape shared by every operator: an owned out-cell plus one
// internal handler per upstream. The handlers are registered while at least
// one listener is attached downstream and detached when the last one leaves,
// so an unobserved chain costs its upstreams nothing.
//
// Invariant: chained is true exactly when every link holds a live handle.
type node[T comparable] struct {
	out     *cell.Cell[T]
	links   []upstreamLink
	refresh func()
	chained bool
}

func (n *node[T]) init(initial T) {
	n.out = cell.New(initial)
}

func (n *node[T]) link(src Notifier, notify func()) {
	if src == nil {
		panic("chain: nil upstream")
	}
	n.links = append(n.links, upstreamLink{src: src, notify: notify})
}

// chainUp is the unchained→chained transition. The out-cell has no listeners
// whenever this runs, so the refresh never produces a visible notification;
// it only brings a value that went stale while unchained back in sync.
func (n *node[T]) chainUp() {
	if n.chained {
		return
	}
	for i := range n.links {
		l := &n.links[i]
		l.handle = l.src.AddListener(l.notify)
	}
	n.chained = true
	if n.refresh != nil {
		n.refresh()
	}
}

// unchain is the chained→unchained transition: every upstream handler is
// removed, combinator side-sources included.
func (n *node[T]) unchain() {
	if !n.chained {
		return
	}
	for i := range n.links {
		l := &n.links[i]
		l.src.RemoveListener(l.handle)
		l.handle = nil
	}
	n.chained = false
}

func (n *node[T]) Value() T {
	return n.out.Value()
}

func (n *node[T]) AddListener(fn func()) *cell.Listener {
	n.chainUp()
	return n.out.AddListener(fn)
}

func (n *node[T]) RemoveListener(l *cell.Listener) {
	n.out.RemoveListener(l)
	if n.out.ListenerCount() == 0 {
		n.unchain()
	}
}

func (n *node[T]) ListenerCount() int {
	return n.out.ListenerCount()
}

func (n *node[T]) Dispose() {
	n.unchain()
	n.out.Dispose()
}
