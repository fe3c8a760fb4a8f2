package fivewords

import (
	"context"
	"io"
)

// Stats reports diagnostics about a completed Solve call: everything the
// verbose CLI report needs, and nothing the search itself requires to
// run, so computing it never costs a correct, quiet caller anything.
type Stats struct {
	// UniqueCandidates is the number of distinct five-letter, five-
	// distinct-letter masks found after anagram deduplication.
	UniqueCandidates int

	// Collisions is the cumulative linear-probe chain length across every
	// Word Index insert; lookups are not counted.
	Collisions uint32

	// SearchOrder is L[]: search-order position to letter index.
	SearchOrder [26]int

	// MinSearchDepth is the shallowest search-order position with a
	// non-empty base set; positions before it can never start a branch.
	MinSearchDepth int
}

// Result is everything Solve produces: every accepted solution, plus
// diagnostics about the run.
type Result struct {
	Solutions []Solution
	Stats     Stats
}

// Solve runs the whole pipeline spec.md describes: ingest words from r,
// build the Word Index, Key Table, Frequency Model and Tier Builder
// output, then search with a worker pool sized per cfg, returning every
// accepted solution.
//
// cfg is validated before any work begins; an invalid field is reported
// without reading r. ctx is only observed before ingestion and before
// search starts, per the no-cancellation-mid-search design documented on
// runSearch.
func Solve(ctx context.Context, cfg Config, words io.Reader) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ing, err := Ingest(words)
	if err != nil {
		return nil, err
	}

	keys := ing.Keys.Masks()
	fm := buildFrequencyModel(keys, cfg)
	tm := buildTierModel(fm, keys, cfg.SetDepth)
	search := newSearcher(fm, tm, ing.Index, keys, cfg.DisablePruning)

	advanceKeys := tm.letters[0].base.keys[:tm.letters[0].base.length]
	var skipKeys []uint32
	if len(tm.letters[1].regions) > 0 {
		full := tm.letters[1].regions[0]
		skipKeys = full.keys[:full.length]
	}

	sink := newSolutionSink(cfg.SolutionCapacity)
	if err := runSearch(ctx, search, advanceKeys, skipKeys, cfg.NumThreads, sink); err != nil {
		return nil, err
	}

	return &Result{
		Solutions: sink.Solutions(),
		Stats: Stats{
			UniqueCandidates: ing.Index.Len(),
			Collisions:       ing.Index.Collisions(),
			SearchOrder:      fm.Order,
			MinSearchDepth:   tm.minSearchDepth,
		},
	}, nil
}
