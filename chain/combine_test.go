package chain_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/cellchain/cell"
	"github.com/delaneyj/cellchain/chain"
	"github.com/stretchr/testify/assert"
)

func TestCombine2RecombinesOnEitherSource(t *testing.T) {
	//  label ──┐
	//          ├──▶ combined "label:count"
	//  count ──┘
	label := cell.New("Start")
	count := cell.New(0)
	combined := chain.Combine2[string, int, string](label, count, func(l string, c int) string {
		return fmt.Sprintf("%s:%d", l, c)
	})
	assert.Equal(t, "Start:0", combined.Value())

	var got []string
	chain.Listen(combined, func(v string, _ *chain.Subscription) { got = append(got, v) })

	count.SetValue(42)
	count.SetValue(43)
	label.SetValue("First")
	count.SetValue(45)
	assert.Equal(t, []string{"Start:42", "Start:43", "First:43", "First:45"}, got)
	assert.Equal(t, "First:45", combined.Value())
}

func TestCombine2SuppressesEqualResult(t *testing.T) {
	a := cell.New(2)
	b := cell.New(3)
	combined := chain.Combine2(a, b, func(x, y int) int { return y })

	calls := 0
	chain.Listen(combined, func(int, *chain.Subscription) { calls++ })

	// a changed but the combiner only looks at b, so the out-cell sees the
	// same value and stays silent
	a.SetValue(1)
	assert.Equal(t, 0, calls)

	b.SetValue(4)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, combined.Value())
}

func TestCombine3(t *testing.T) {
	a := cell.New(1)
	b := cell.New(2)
	c := cell.New(3)
	sum := chain.Combine3(a, b, c, func(x, y, z int) int { return x + y + z })
	assert.Equal(t, 6, sum.Value())

	var got []int
	chain.Listen(sum, func(v int, _ *chain.Subscription) { got = append(got, v) })

	b.SetValue(20)
	c.SetValue(30)
	assert.Equal(t, []int{24, 51}, got)
}

func TestCombine6(t *testing.T) {
	a := cell.New(1)
	b := cell.New(1)
	c := cell.New(1)
	d := cell.New(1)
	e := cell.New(1)
	f := cell.New(1)
	sum := chain.Combine6(a, b, c, d, e, f, func(v0, v1, v2, v3, v4, v5 int) int {
		return v0 + v1 + v2 + v3 + v4 + v5
	})
	assert.Equal(t, 6, sum.Value())

	var got []int
	chain.Listen(sum, func(v int, _ *chain.Subscription) { got = append(got, v) })

	f.SetValue(10)
	a.SetValue(5)
	assert.Equal(t, []int{15, 19}, got)
}

func TestCombineNilCombinerPanics(t *testing.T) {
	a := cell.New(0)
	b := cell.New(0)
	assert.Panics(t, func() { chain.Combine2[int, int, int](a, b, nil) })
}
