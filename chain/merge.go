package chain

// MergedCell passes through whichever of its sources changed last, with no
// combination function.
type MergedCell[T comparable] struct {
	node[T]
	sources []ValueSource[T]
}

// MergeWith derives a cell over the primary source and any number of others.
// The initial value comes from the primary; afterwards every mutation of any
// source passes through unchanged, one event per mutation, in the order the
// sources fire.
func MergeWith[T comparable](primary ValueSource[T], others ...ValueSource[T]) *MergedCell[T] {
	m := &MergedCell[T]{sources: append([]ValueSource[T]{primary}, others...)}
	m.init(primary.Value())
	for _, src := range m.sources {
		src := src
		m.link(src, func() { m.out.SetValue(src.Value()) })
	}
	return m
}
