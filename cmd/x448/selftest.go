package main

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"x448.mleku.dev/internal/kat"
)

const (
	iterationsFlag = "iterations"

	progressInterval = 100000
)

func selfTestCommand() *cli.Command {
	return &cli.Command{
		Name:      "selftest",
		Usage:     "Run the RFC 7748 X448 test vectors",
		ArgsUsage: " ",
		Description: `Checks the known-answer vectors of RFC 7748 sections 5.2 and 6.2, then the
iterated test for every published round count up to --iterations. The
1,000,000 round test takes minutes and only runs when asked for.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    iterationsFlag,
				Usage:   "Largest iterated test to run (1, 1000 or 1000000)",
				Value:   1000,
				EnvVars: []string{"X448_SELFTEST_ITERATIONS"},
			},
		},
		Action: selfTest,
	}
}

func selfTest(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}

	for _, v := range kat.Vectors {
		if err := v.Check(); err != nil {
			return errors.Wrap(err, "known-answer test failed")
		}
		log.Debug().Str("vector", v.Name).Msg("known-answer test passed")
	}
	log.Info().Int("vectors", len(kat.Vectors)).Msg("known-answer tests passed")

	for _, n := range iterationRounds(c.Int(iterationsFlag)) {
		start := time.Now()
		progress := func(round int) {
			if round%progressInterval == 0 {
				log.Debug().Int("round", round).Int("of", n).Msg("iterating")
			}
		}
		if err := kat.CheckIterations(n, progress); err != nil {
			return errors.Wrap(err, "iterated test failed")
		}
		log.Info().
			Int("iterations", n).
			Dur("elapsed", time.Since(start)).
			Msg("iterated test passed")
	}
	return nil
}

// iterationRounds returns the published round counts up to limit, ascending.
func iterationRounds(limit int) []int {
	var rounds []int
	for n := range kat.Iterations {
		if n <= limit {
			rounds = append(rounds, n)
		}
	}
	sort.Ints(rounds)
	return rounds
}
