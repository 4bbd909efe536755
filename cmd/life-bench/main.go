// Command life-bench runs independent random soups headlessly and reports how
// much of each board the engine had to examine per generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	p := defaultParams()
	flag.IntVar(&p.rows, "rows", p.rows, "number of grid rows")
	flag.IntVar(&p.cols, "cols", p.cols, "number of grid columns")
	flag.IntVar(&p.gens, "gens", p.gens, "maximum generations per run")
	flag.Float64Var(&p.density, "density", p.density, "initial fraction of live cells")
	flag.Int64Var(&p.seed, "seed", p.seed, "seed of the first run; run i uses seed+i")
	flag.BoolVar(&p.verify, "verify", p.verify, "cross-check every generation against a full scan")
	runs := flag.Int("runs", 8, "number of independent runs")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if err := checkFanOut(*runs, *workers); err != nil {
		log.Fatalf("flags: %v", err)
	}

	start := time.Now()
	results := make([]result, *runs)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i := range results {
		g.Go(func() error {
			r, err := simulate(ctx, p, p.seed+int64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\tgenerations\tsettled\tpopulation\tevaluated/gen\tboard share\telapsed")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%v\t%d\t%.1f\t%.1f%%\t%v\n",
			r.seed, r.generations, r.settled, r.population, r.meanEvaluated(), 100*r.boardShare(p), r.elapsed.Round(time.Millisecond))
	}
	tw.Flush()
	log.Printf("%d runs of %dx%d in %v", *runs, p.rows, p.cols, time.Since(start).Round(time.Millisecond))
}
