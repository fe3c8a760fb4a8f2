package fivewords

import "math/bits"

// pruneGroups implements the pseudo-vowel pruning spec.md §4.6 describes
// as optional: two fixed letter groups whose coverage every solution must
// nearly complete, letting a partial search state be rejected once
// finishing it is already mathematically impossible.
//
// The budgets are derived from the key table rather than hand-tuned: for
// a letter group g, maxPerWord(g) is the largest number of g's letters
// any single candidate word carries, so wordsRemaining*maxPerWord(g) is a
// provably safe upper bound on how many more g-letters the rest of the
// solution can add. A branch is dead when that bound, plus what's already
// covered, cannot reach the group's required coverage. This makes the
// prune sound by construction regardless of which two groups are chosen,
// which matters here since the group membership and budgets are this
// module's own choice rather than a reproduction of upstream constants.
type pruneGroups struct {
	g1, g2                   uint32
	maxPerWord1, maxPerWord2 int
}

// pseudovowelGroups are the two letter groups pruning tracks: true vowels,
// and the next most common English letters. Any two groups would be
// sound; these were picked because English five-letter words rarely omit
// both entirely, giving the prune something to bite on in practice.
var pseudovowelGroups = [2]uint32{
	letterSet([]int{0, 4, 8, 14, 20}),    // a e i o u
	letterSet([]int{13, 17, 18, 19, 11}), // n r s t l
}

func buildPruneGroups(keys []uint32) *pruneGroups {
	pg := &pruneGroups{g1: pseudovowelGroups[0], g2: pseudovowelGroups[1]}
	for _, k := range keys {
		if c := bits.OnesCount32(k & pg.g1); c > pg.maxPerWord1 {
			pg.maxPerWord1 = c
		}
		if c := bits.OnesCount32(k & pg.g2); c > pg.maxPerWord2 {
			pg.maxPerWord2 = c
		}
	}
	return pg
}

// prune reports whether mask can be soundly rejected: true only when no
// completion of mask into a full solution is possible. wordsRemaining is
// how many more words must still be chosen; skipAvailable is whether the
// solution may still burn one more letter as the unused one.
func (pg *pruneGroups) prune(mask uint32, wordsRemaining int, skipAvailable bool) bool {
	return pg.groupDead(mask, pg.g1, pg.maxPerWord1, wordsRemaining, skipAvailable) ||
		pg.groupDead(mask, pg.g2, pg.maxPerWord2, wordsRemaining, skipAvailable)
}

func (pg *pruneGroups) groupDead(mask, group uint32, maxPerWord, wordsRemaining int, skipAvailable bool) bool {
	need := bits.OnesCount32(group)
	if skipAvailable {
		need--
	}
	if need <= 0 {
		return false
	}
	have := bits.OnesCount32(mask & group)
	capacity := have + wordsRemaining*maxPerWord
	return capacity < need
}

// searcher holds everything a recursive search step needs. It is built
// once per Solve call and is read-only from then on, so the same
// *searcher is shared across every worker goroutine.
type searcher struct {
	tm      *tierModel
	fm      *FrequencyModel
	index   *WordIndex
	pruning *pruneGroups // nil when pruning is disabled
}

func newSearcher(fm *FrequencyModel, tm *tierModel, index *WordIndex, keys []uint32, disablePruning bool) *searcher {
	s := &searcher{tm: tm, fm: fm, index: index}
	if !disablePruning {
		s.pruning = buildPruneGroups(keys)
	}
	return s
}

// StartAdvance begins one top-level branch: k, drawn from the rarest
// letter's base set, is the solution's first chosen word.
func (s *searcher) StartAdvance(k uint32, emit func(Solution)) {
	var path [5]uint32
	path[0] = k
	s.walk(k, 1, 1, false, path, emit)
}

// StartSkip begins the other top-level branch: the rarest letter is
// burned as the solution's one unused letter, and k, drawn from the
// second-rarest letter's base set, is the solution's first chosen word.
func (s *searcher) StartSkip(k uint32, emit func(Solution)) {
	burned := uint32(1) << uint(s.fm.Order[0])
	var path [5]uint32
	path[0] = k
	s.walk(burned|k, 2, 1, true, path, emit)
}

// walk advances the search from (mask, pos, depth): pos is resumed from,
// not recomputed from scratch, since by the base-set membership rule no
// word chosen at an earlier position ever carries a letter ranked below
// that position, so ranks below pos are already known covered.
func (s *searcher) walk(mask uint32, pos int, depth int, skipUsed bool, path [5]uint32, emit func(Solution)) {
	if depth == 5 {
		s.emitSolution(path, emit)
		return
	}

	pos = nextPosition(mask, &s.fm.Order, pos)
	if pos >= 26 {
		return
	}

	remaining := 5 - depth
	if s.pruning != nil && s.pruning.prune(mask, remaining, !skipUsed) {
		return
	}

	if !skipUsed {
		burned := uint32(1) << uint(s.fm.Order[pos])
		s.walk(mask|burned, pos+1, depth, true, path, emit)
	}

	ls := s.tm.letters[pos]
	var keys []uint32
	var start, end int
	if pos == 0 {
		keys, start, end = ls.base.keys, 0, ls.base.length
	} else {
		keys, start, end = selectRegion(ls, mask, s.tm.tierMaskBits, s.tm.setDepth)
	}

	for i := start; i < end; i++ {
		k := keys[i]
		if k&mask != 0 {
			continue
		}
		path[depth] = k
		s.walk(mask|k, pos+1, depth+1, skipUsed, path, emit)
	}
}

// nextPosition returns the smallest position p >= from such that the
// letter at order[p] is not yet set in mask, or 26 if none remain.
func nextPosition(mask uint32, order *[26]int, from int) int {
	for p := from; p < 26; p++ {
		if mask&(1<<uint(order[p])) == 0 {
			return p
		}
	}
	return 26
}

func (s *searcher) emitSolution(path [5]uint32, emit func(Solution)) {
	var sol Solution
	for i, mask := range path {
		word, ok := s.index.Lookup(mask)
		if !ok {
			panic("fivewords: solution word missing from index")
		}
		sol[i] = word
	}
	emit(sol)
}
