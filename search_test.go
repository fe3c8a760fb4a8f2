package fivewords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPosition(t *testing.T) {
	order := [26]int{}
	for i := range order {
		order[i] = i
	}
	// letters 0 and 1 already covered; next uncovered at position 2.
	mask := uint32(0b11)
	assert.Equal(t, 2, nextPosition(mask, &order, 0))
	assert.Equal(t, 26, nextPosition(^uint32(0), &order, 0))
}

func TestPruneGroupsNeverRejectsAReachableSolution(t *testing.T) {
	// One candidate carries all five vowels; budget math must not prune
	// a state one such word away from satisfying the vowel group.
	keys := wordMasks("aeiou", "bcdfg", "hjklm", "npqrs", "tvwxy")
	pg := buildPruneGroups(keys)

	// Zero vowels covered yet, but five words remain and the "aeiou"
	// candidate alone can cover the whole group: must not prune.
	assert.False(t, pg.prune(0, 5, true))
}

func TestPruneGroupsRejectsImpossibleCompletion(t *testing.T) {
	keys := wordMasks("bcdfg", "hjklm", "npqrs", "qwxyz", "ghjkl")
	pg := buildPruneGroups(keys)

	// No candidate carries any vowel, so with zero words remaining and
	// zero vowels covered, the vowel group can never be satisfied.
	assert.True(t, pg.prune(0, 0, false))
}

func TestPruneGroupsSkipAvailableLowersRequirement(t *testing.T) {
	keys := wordMasks("aeiou", "bcdfg")
	pg := buildPruneGroups(keys)

	// With the skip still available, one letter of the group may end up
	// as the globally unused letter, so requiring all 5 is too strict:
	// covering 4 of 5 must be enough to avoid a prune with 0 remaining.
	lowestBit := pg.g1 & -pg.g1
	fourOfFive := pg.g1 &^ lowestBit
	assert.False(t, pg.groupDead(fourOfFive, pg.g1, pg.maxPerWord1, 0, true))
	// Without the skip available, the same coverage is one short.
	assert.True(t, pg.groupDead(fourOfFive, pg.g1, pg.maxPerWord1, 0, false))
}

// BenchmarkWalk measures the recursive scan directly, bypassing ingestion
// and build: the part of this domain spec.md §1 calls out as the actual
// performance-critical path.
func BenchmarkWalk(b *testing.B) {
	keys := wordMasks("abcde", "fghij", "klmno", "pqrst", "uvwxy")
	fm := buildFrequencyModel(keys, Config{}.withDefaults())
	tm := buildTierModel(fm, keys, 4)
	idx := newWordIndex(len(keys))
	for _, w := range []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"} {
		if _, err := idx.Insert(encodeString(w), []byte(w)); err != nil {
			b.Fatalf("insert: %v", err)
		}
	}
	s := newSearcher(fm, tm, idx, keys, false)
	emit := func(Solution) {}

	b.ReportAllocs()
	for b.Loop() {
		for _, k := range keys {
			s.StartAdvance(k, emit)
		}
	}
}
