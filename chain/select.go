package chain

// ProjectedCell notifies only when the projection of the upstream value
// actually changes, even if the upstream notifies on every assignment.
type ProjectedCell[I, O comparable] struct {
	node[O]
	src  ValueSource[I]
	proj func(I) O
}

// Select derives a distinct projection of src. The construction-time
// projection is the baseline the first upstream change is compared against:
// a change that leaves the projected part alone produces no notification,
// from the very first change on.
func Select[I, O comparable](src ValueSource[I], proj func(I) O) *ProjectedCell[I, O] {
	if proj == nil {
		panic("chain: nil projection")
	}
	p := &ProjectedCell[I, O]{src: src, proj: proj}
	p.init(proj(src.Value()))
	p.link(src, p.recompute)
	p.refresh = p.recompute
	return p
}

func (p *ProjectedCell[I, O]) recompute() {
	next := p.proj(p.src.Value())
	if next == p.out.Value() {
		return
	}
	p.out.SetValue(next)
}
