package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cellchain/cell"
	"github.com/delaneyj/cellchain/chain"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting operator benchmark, please wait...")
	defer log.Print("Finished operator benchmark")

	perfTestCfgs := []operatorTestConfig{
		{
			name:        "shallow map fan-out",
			width:       1000,
			totalLayers: 3,
			iterations:  5000,
		},
		{
			name:        "deep map chain",
			width:       5,
			totalLayers: 500,
			iterations:  500,
		},
		{
			name:          "filter heavy",
			width:         100,
			totalLayers:   10,
			whereFraction: 0.5,
			iterations:    5000,
		},
		{
			name:           "distinct heavy",
			width:          100,
			totalLayers:    10,
			selectFraction: 0.5,
			iterations:     5000,
		},
		{
			name:            "combine mesh",
			width:           100,
			totalLayers:     8,
			combineFraction: 0.5,
			iterations:      2000,
		},
		{
			name:          "merge fan-in",
			width:         100,
			totalLayers:   8,
			mergeFraction: 0.5,
			iterations:    2000,
		},
		{
			name:            "mixed pipeline",
			width:           250,
			totalLayers:     8,
			whereFraction:   0.25,
			selectFraction:  0.25,
			combineFraction: 0.25,
			iterations:      2000,
		},
	}

	type results struct {
		checksum   uint64
		deliveries int64
		duration   time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"operators", "size", "where%", "select%", "combine%", "merge%",
		"nTimes", "test", "time",
		"deliveryRate", "checksum", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)

			// rebuild per repeat so the checksum is deterministic
			p := makePipeline(&cfg)
			start := time.Now()
			runPipeline(p, cfg.iterations)
			duration := time.Since(start)
			checksum := p.digest.Sum64()
			p.bag.CancelAll()

			if bestResult.checksum != 0 && bestResult.checksum != checksum {
				log.Fatalf("checksum drift in '%s': %x != %x", cfg.name, checksum, bestResult.checksum)
			}

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.checksum = checksum
				bestResult.deliveries = p.deliveries
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers))
			if cfg.whereFraction > 0 {
				sb.WriteString(" filtered")
			}
			if cfg.selectFraction > 0 {
				sb.WriteString(" distinct")
			}
			if cfg.combineFraction > 0 {
				sb.WriteString(" combined")
			}
			if cfg.mergeFraction > 0 {
				sb.WriteString(" merged")
			}
			return sb.String()
		}

		deliveryRate := float64(bestResult.deliveries) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			"cellchain", // operators
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers), // size
			fmt.Sprint(cfg.whereFraction),                    // where%
			fmt.Sprint(cfg.selectFraction),                   // select%
			fmt.Sprint(cfg.combineFraction),                  // combine%
			fmt.Sprint(cfg.mergeFraction),                    // merge%
			humanize.Comma(int64(cfg.iterations)),            // nTimes
			cfg.name,                                         // test
			fmt.Sprint(bestResult.duration),                  // time
			humanize.Comma(int64(deliveryRate)),              // deliveryRate
			fmt.Sprintf("%016x", bestResult.checksum),        // checksum
			makeTitle(),                                      // title
		})
	}
	table.Render() // Send output
}

type operatorTestConfig struct {
	name            string  // friendly name for the test, should be unique
	width           int     // sources per layer
	totalLayers     int     // depth of the operator graph
	whereFraction   float64 // fraction of nodes that filter to even values
	selectFraction  float64 // fraction of nodes that project distinctly
	combineFraction float64 // fraction of nodes that combine two upstreams
	mergeFraction   float64 // fraction of nodes that merge two upstreams
	iterations      int     // number of source writes per run
}

type pipeline struct {
	sources    []*cell.Cell[int]
	leaves     []chain.ValueSource[int]
	bag        *chain.Bag
	digest     *xxhash.Digest
	deliveries int64
}

func makePipeline(cfg *operatorTestConfig) *pipeline {
	p := &pipeline{
		sources: make([]*cell.Cell[int], cfg.width),
		bag:     chain.NewBag(),
		digest:  xxhash.New(),
	}
	for i := range p.sources {
		p.sources[i] = cell.New(i)
	}

	random := rand.New(rand.NewSource(0))
	prevRow := make([]chain.ValueSource[int], cfg.width)
	for i, src := range p.sources {
		prevRow[i] = src
	}

	for l := 1; l < cfg.totalLayers; l++ {
		row := make([]chain.ValueSource[int], cfg.width)
		for i := range row {
			src := prevRow[i]
			roll := random.Float64()
			switch {
			case roll < cfg.whereFraction:
				row[i] = chain.Where(src, func(v int) bool { return v%2 == 0 })
			case roll < cfg.whereFraction+cfg.selectFraction:
				row[i] = chain.Select(src, func(v int) int { return v >> 1 })
			case roll < cfg.whereFraction+cfg.selectFraction+cfg.combineFraction:
				other := prevRow[(i+1)%len(prevRow)]
				row[i] = chain.Combine2(src, other, func(a, b int) int { return a + b })
			case roll < cfg.whereFraction+cfg.selectFraction+cfg.combineFraction+cfg.mergeFraction:
				other := prevRow[(i+1)%len(prevRow)]
				row[i] = chain.MergeWith[int](src, other)
			default:
				row[i] = chain.Map(src, func(v int) int { return v + 1 })
			}
		}
		prevRow = row
	}
	p.leaves = prevRow

	var buf [8]byte
	for _, leaf := range p.leaves {
		leaf := leaf
		p.bag.Add(chain.Listen(leaf, func(v int, _ *chain.Subscription) {
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			p.digest.Write(buf[:])
			p.deliveries++
		}))
	}

	return p
}

func runPipeline(p *pipeline, iterations int) {
	for i := 0; i < iterations; i++ {
		sourceDex := i % len(p.sources)
		p.sources[sourceDex].SetValue(i + sourceDex)
	}
}
