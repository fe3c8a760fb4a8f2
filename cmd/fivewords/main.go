// Command fivewords finds every disjoint five-word, five-letter covering
// of 25 of the 26 letters of the alphabet in a given word list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/stewforster/fivewords"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fivewords:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fivewords", flag.ExitOnError)
	wordFile := fs.String("f", "words_alpha.txt", "input word list, one word per line")
	solutionFile := fs.String("o", "solutions.txt", "output file for accepted solutions")
	threads := fs.Int("t", 0, "worker pool size (0 selects a CPU-count-derived default)")
	verbose := fs.Bool("v", false, "log search diagnostics and timing")
	setDepth := fs.Int("set-depth", 4, "number of tier-mask letters used to sub-partition each base set")
	sampleDepth := fs.Int("sample-depth", 0, "re-derive tier-mask frequencies after this many search-order letters are fixed")
	noPrune := fs.Bool("no-prune", false, "disable pseudo-vowel pruning")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := fivewords.Config{
		SetDepth:       *setDepth,
		SampleDepth:    *sampleDepth,
		NumThreads:     *threads,
		DisablePruning: *noPrune,
	}

	f, err := os.Open(*wordFile)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	logger.Debug("starting search", "word_file", *wordFile, "set_depth", cfg.SetDepth, "sample_depth", cfg.SampleDepth)
	start := time.Now()

	result, err := fivewords.Solve(context.Background(), cfg, f)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	elapsed := time.Since(start)
	logger.Debug("search complete",
		"elapsed", elapsed,
		"unique_candidates", result.Stats.UniqueCandidates,
		"collisions", result.Stats.Collisions,
		"min_search_depth", result.Stats.MinSearchDepth,
		"solutions", len(result.Solutions),
	)

	out, err := os.Create(*solutionFile)
	if err != nil {
		return fmt.Errorf("create solution file: %w", err)
	}
	defer out.Close()

	for _, sol := range result.Solutions {
		rec := sol.Encode()
		if _, err := out.Write(rec[:]); err != nil {
			return fmt.Errorf("write solution file: %w", err)
		}
	}

	if *verbose {
		logger.Info("done", "solutions", len(result.Solutions), "elapsed", elapsed, "output", *solutionFile)
	}
	return nil
}
