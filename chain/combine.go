package chain

// CombinedCell2 recombines from the latest value of every source whenever
// any single source changes.
type CombinedCell2[T0, T1, O comparable] struct {
	node[O]
	src0 ValueSource[T0]
	src1 ValueSource[T1]
	fn   func(T0, T1) O
}

func Combine2[T0, T1, O comparable](
	src0 ValueSource[T0],
	src1 ValueSource[T1],
	fn func(T0, T1) O,
) *CombinedCell2[T0, T1, O] {
	if fn == nil {
		panic("chain: nil combiner")
	}
	c := &CombinedCell2[T0, T1, O]{
		src0: src0,
		src1: src1,
		fn:   fn,
	}
	c.init(fn(
		src0.Value(),
		src1.Value(),
	))
	c.link(src0, c.recompute)
	c.link(src1, c.recompute)
	c.refresh = c.recompute
	return c
}

func (c *CombinedCell2[T0, T1, O]) recompute() {
	c.out.SetValue(c.fn(
		c.src0.Value(),
		c.src1.Value(),
	))
}

// CombinedCell3 recombines from the latest value of every source whenever
// any single source changes.
type CombinedCell3[T0, T1, T2, O comparable] struct {
	node[O]
	src0 ValueSource[T0]
	src1 ValueSource[T1]
	src2 ValueSource[T2]
	fn   func(T0, T1, T2) O
}

func Combine3[T0, T1, T2, O comparable](
	src0 ValueSource[T0],
	src1 ValueSource[T1],
	src2 ValueSource[T2],
	fn func(T0, T1, T2) O,
) *CombinedCell3[T0, T1, T2, O] {
	if fn == nil {
		panic("chain: nil combiner")
	}
	c := &CombinedCell3[T0, T1, T2, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		fn:   fn,
	}
	c.init(fn(
		src0.Value(),
		src1.Value(),
		src2.Value(),
	))
	c.link(src0, c.recompute)
	c.link(src1, c.recompute)
	c.link(src2, c.recompute)
	c.refresh = c.recompute
	return c
}

func (c *CombinedCell3[T0, T1, T2, O]) recompute() {
	c.out.SetValue(c.fn(
		c.src0.Value(),
		c.src1.Value(),
		c.src2.Value(),
	))
}

// CombinedCell4 recombines from the latest value of every source whenever
// any single source changes.
type CombinedCell4[T0, T1, T2, T3, O comparable] struct {
	node[O]
	src0 ValueSource[T0]
	src1 ValueSource[T1]
	src2 ValueSource[T2]
	src3 ValueSource[T3]
	fn   func(T0, T1, T2, T3) O
}

func Combine4[T0, T1, T2, T3, O comparable](
	src0 ValueSource[T0],
	src1 ValueSource[T1],
	src2 ValueSource[T2],
	src3 ValueSource[T3],
	fn func(T0, T1, T2, T3) O,
) *CombinedCell4[T0, T1, T2, T3, O] {
	if fn == nil {
		panic("chain: nil combiner")
	}
	c := &CombinedCell4[T0, T1, T2, T3, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		fn:   fn,
	}
	c.init(fn(
		src0.Value(),
		src1.Value(),
		src2.Value(),
		src3.Value(),
	))
	c.link(src0, c.recompute)
	c.link(src1, c.recompute)
	c.link(src2, c.recompute)
	c.link(src3, c.recompute)
	c.refresh = c.recompute
	return c
}

func (c *CombinedCell4[T0, T1, T2, T3, O]) recompute() {
	c.out.SetValue(c.fn(
		c.src0.Value(),
		c.src1.Value(),
		c.src2.Value(),
		c.src3.Value(),
	))
}

// CombinedCell5 recombines from the latest value of every source whenever
// any single source changes.
type CombinedCell5[T0, T1, T2, T3, T4, O comparable] struct {
	node[O]
	src0 ValueSource[T0]
	src1 ValueSource[T1]
	src2 ValueSource[T2]
	src3 ValueSource[T3]
	src4 ValueSource[T4]
	fn   func(T0, T1, T2, T3, T4) O
}

func Combine5[T0, T1, T2, T3, T4, O comparable](
	src0 ValueSource[T0],
	src1 ValueSource[T1],
	src2 ValueSource[T2],
	src3 ValueSource[T3],
	src4 ValueSource[T4],
	fn func(T0, T1, T2, T3, T4) O,
) *CombinedCell5[T0, T1, T2, T3, T4, O] {
	if fn == nil {
		panic("chain: nil combiner")
	}
	c := &CombinedCell5[T0, T1, T2, T3, T4, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		fn:   fn,
	}
	c.init(fn(
		src0.Value(),
		src1.Value(),
		src2.Value(),
		src3.Value(),
		src4.Value(),
	))
	c.link(src0, c.recompute)
	c.link(src1, c.recompute)
	c.link(src2, c.recompute)
	c.link(src3, c.recompute)
	c.link(src4, c.recompute)
	c.refresh = c.recompute
	return c
}

func (c *CombinedCell5[T0, T1, T2, T3, T4, O]) recompute() {
	c.out.SetValue(c.fn(
		c.src0.Value(),
		c.src1.Value(),
		c.src2.Value(),
		c.src3.Value(),
		c.src4.Value(),
	))
}

// CombinedCell6 recombines from the latest value of every source whenever
// any single source changes.
type CombinedCell6[T0, T1, T2, T3, T4, T5, O comparable] struct {
	node[O]
	src0 ValueSource[T0]
	src1 ValueSource[T1]
	src2 ValueSource[T2]
	src3 ValueSource[T3]
	src4 ValueSource[T4]
	src5 ValueSource[T5]
	fn   func(T0, T1, T2, T3, T4, T5) O
}

func Combine6[T0, T1, T2, T3, T4, T5, O comparable](
	src0 ValueSource[T0],
	src1 ValueSource[T1],
	src2 ValueSource[T2],
	src3 ValueSource[T3],
	src4 ValueSource[T4],
	src5 ValueSource[T5],
	fn func(T0, T1, T2, T3, T4, T5) O,
) *CombinedCell6[T0, T1, T2, T3, T4, T5, O] {
	if fn == nil {
		panic("chain: nil combiner")
	}
	c := &CombinedCell6[T0, T1, T2, T3, T4, T5, O]{
		src0: src0,
		src1: src1,
		src2: src2,
		src3: src3,
		src4: src4,
		src5: src5,
		fn:   fn,
	}
	c.init(fn(
		src0.Value(),
		src1.Value(),
		src2.Value(),
		src3.Value(),
		src4.Value(),
		src5.Value(),
	))
	c.link(src0, c.recompute)
	c.link(src1, c.recompute)
	c.link(src2, c.recompute)
	c.link(src3, c.recompute)
	c.link(src4, c.recompute)
	c.link(src5, c.recompute)
	c.refresh = c.recompute
	return c
}

func (c *CombinedCell6[T0, T1, T2, T3, T4, T5, O]) recompute() {
	c.out.SetValue(c.fn(
		c.src0.Value(),
		c.src1.Value(),
		c.src2.Value(),
		c.src3.Value(),
		c.src4.Value(),
		c.src5.Value(),
	))
}
