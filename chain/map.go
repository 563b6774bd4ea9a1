package chain

// MappedCell projects every upstream value through a transform.
type MappedCell[I, O comparable] struct {
	node[O]
	src ValueSource[I]
	fn  func(I) O
}

// Map derives a cell whose value tracks fn over src. The transform runs once
// eagerly so Value is valid before any listener attaches.
func Map[I, O comparable](src ValueSource[I], fn func(I) O) *MappedCell[I, O] {
	if fn == nil {
		panic("chain: nil transform")
	}
	m := &MappedCell[I, O]{src: src, fn: fn}
	m.init(fn(src.Value()))
	m.link(src, m.recompute)
	m.refresh = m.recompute
	return m
}

func (m *MappedCell[I, O]) recompute() {
	m.out.SetValue(m.fn(m.src.Value()))
}
