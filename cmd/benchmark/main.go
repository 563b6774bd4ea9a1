package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/cellchain/cell"
	"github.com/delaneyj/cellchain/chain"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkMapChains(true)
	benchmarkCombineFanIn(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func addOne(v int) int {
	return v + 1
}

func benchmarkMapChains(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Map Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := cell.New(1)
			bag := chain.NewBag()
			for i := 0; i < w; i++ {
				var last chain.ValueSource[int] = src
				for j := 0; j < h; j++ {
					last = chain.Map(last, addOne)
				}
				bag.Add(chain.Listen(last, func(int, *chain.Subscription) {}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}
			bag.CancelAll()

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}

}

func benchmarkCombineFanIn(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Combine Fan-In")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		var srcs [6]*cell.Cell[int]
		for i := range srcs {
			srcs[i] = cell.New(i)
		}

		bag := chain.NewBag()
		for i := 0; i < w; i++ {
			sum := chain.Combine6(srcs[0], srcs[1], srcs[2], srcs[3], srcs[4], srcs[5],
				func(v0, v1, v2, v3, v4, v5 int) int {
					return v0 + v1 + v2 + v3 + v4 + v5
				})
			bag.Add(chain.Listen(sum, func(int, *chain.Subscription) {}))
		}

		for i := 0; i < iters; i++ {
			src := srcs[i%len(srcs)]
			start := time.Now()
			src.SetValue(src.Value() + 1)
			tach.AddTime(time.Since(start))
		}
		bag.CancelAll()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fan-in: %d * 6", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
