// Package fivewords finds every way to pick five five-letter words that
// together use 25 of the alphabet's 26 letters with no letter repeated,
// within or across words.
//
// # Overview
//
// Build a Word Index and Key Table from a word list with Ingest, derive a
// Frequency Model and tier partitions with Solve, and collect every
// accepted Solution. A CLI wrapper lives in cmd/fivewords.
//
//	f, _ := os.Open("words_alpha.txt")
//	result, err := fivewords.Solve(context.Background(), fivewords.Config{}, f)
//	for _, sol := range result.Solutions {
//	    rec := sol.Encode()
//	    os.Stdout.Write(rec[:])
//	}
//
// # Design
//
// Each word is reduced to a 26-bit mask (letter presence, not count), so
// the whole search operates on integers: set membership is AND, union is
// OR, letter count is popcount. Candidates are partitioned by their
// rarest letter and further split by which of a handful of common
// letters they carry, so the recursive search can narrow to a small,
// pre-filtered slice at every step instead of rescanning the full
// candidate set.
package fivewords
