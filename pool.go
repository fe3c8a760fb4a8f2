package fivewords

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// defaultThreadCount picks a worker pool size when Config.NumThreads is
// zero: all available cores but two (leaving room for the OS and the
// goroutine driving Solve), floored at 1 and capped at DefaultThreadCap
// per spec.md §4.7's default-policy cap, which is intentionally tighter
// than MaxThreads (the ceiling an explicit override is clamped to).
func defaultThreadCount() int {
	n := runtime.NumCPU() - 2
	if n < 1 {
		n = 1
	}
	if n > DefaultThreadCap {
		n = DefaultThreadCap
	}
	return n
}

// runSearch dispatches the whole search tree across numWorkers goroutines
// and returns once every worker has drained both top-level base sets.
//
// advanceKeys is the rarest letter's base set (search order position 0);
// skipKeys is the second-rarest letter's base set (position 1), searched
// with the rarest letter already burned as the solution's unused letter.
// Splitting work at these two fixed points, rather than at the root of a
// single tree, is what the original two-cursor design bought: both
// top-level branches can be drained by any worker with no coordination
// beyond the two atomic cursors.
//
// The search itself never consults ctx once started — per spec.md §5 the
// recursive scan has no cancellation points, since a 5-deep DFS with
// sound pruning runs to completion in well under the timescales
// cancellation is meant for. ctx is only checked before work begins, so a
// caller that cancels during ingestion or build never pays for a search
// that was never going to run.
func runSearch(ctx context.Context, s *searcher, advanceKeys, skipKeys []uint32, numWorkers int, sink *SolutionSink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var advancePos, skipPos atomic.Int64
	var g errgroup.Group

	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			emit := func(sol Solution) { sink.Add(sol) }

			for {
				i := advancePos.Add(1) - 1
				if i >= int64(len(advanceKeys)) {
					break
				}
				s.StartAdvance(advanceKeys[i], emit)
			}
			for {
				i := skipPos.Add(1) - 1
				if i >= int64(len(skipKeys)) {
					break
				}
				s.StartSkip(skipKeys[i], emit)
			}
			return nil
		})
	}
	return g.Wait()
}
