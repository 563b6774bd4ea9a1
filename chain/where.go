package chain

// FilteredCell passes through upstream values that satisfy a predicate and
// holds the last passing value otherwise.
type FilteredCell[T comparable] struct {
	node[T]
	src  ValueSource[T]
	pred func(T) bool
}

// Where derives a cell that only takes on upstream values pred accepts. The
// predicate is re-evaluated on every upstream change, so closures over
// mutable state behave as expected. The initial value is the upstream's
// current value whether or not it passes, so Value is never unset.
func Where[T comparable](src ValueSource[T], pred func(T) bool) *FilteredCell[T] {
	if pred == nil {
		panic("chain: nil predicate")
	}
	f := &FilteredCell[T]{src: src, pred: pred}
	f.init(src.Value())
	f.link(src, f.recompute)
	f.refresh = f.recompute
	return f
}

func (f *FilteredCell[T]) recompute() {
	if v := f.src.Value(); f.pred(v) {
		f.out.SetValue(v)
	}
}
