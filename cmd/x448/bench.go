package main

import (
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"x448.mleku.dev"
)

const (
	countFlag   = "count"
	workersFlag = "workers"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Usage:     "Measure X448 scalar multiplication throughput",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    countFlag,
				Usage:   "Total number of scalar multiplications",
				Value:   1000,
				EnvVars: []string{"X448_BENCH_COUNT"},
			},
			&cli.IntFlag{
				Name:    workersFlag,
				Usage:   "Number of goroutines sharing the work",
				Value:   1,
				EnvVars: []string{"X448_BENCH_WORKERS"},
			},
		},
		Action: bench,
	}
}

func bench(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}

	count, workers := c.Int(countFlag), c.Int(workersFlag)
	if count < 1 {
		return errors.Errorf("--%s must be at least 1", countFlag)
	}
	if workers < 1 {
		return errors.Errorf("--%s must be at least 1", workersFlag)
	}

	log.Info().
		Str("cpu", cpuid.CPU.BrandName).
		Int("logical_cores", cpuid.CPU.LogicalCores).
		Int("count", count).
		Int("workers", workers).
		Msg("starting benchmark")

	start := time.Now()
	g, ctx := errgroup.WithContext(c.Context)
	for w := 0; w < workers; w++ {
		n := count / workers
		if w < count%workers {
			n++
		}
		seed := byte(w + 1)
		g.Go(func() error {
			var k, u, out [x448.Size]byte
			for i := range k {
				k[i] = seed
			}
			u = x448.Basepoint
			for i := 0; i < n; i++ {
				// ScalarMult cannot be interrupted; cancellation is checked
				// between calls.
				if err := ctx.Err(); err != nil {
					return err
				}
				x448.ScalarMult(&out, &k, &u)
				u = out
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "benchmark interrupted")
	}
	elapsed := time.Since(start)

	log.Info().
		Int("operations", count).
		Dur("elapsed", elapsed).
		Float64("ops_per_sec", float64(count)/elapsed.Seconds()).
		Msg("benchmark finished")
	return nil
}
