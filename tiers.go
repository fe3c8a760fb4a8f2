package fivewords

import "math/bits"

// numPoisonWords is the padding appended after every tier sub-array's
// logical end: all-ones sentinel words so that a block scan can read a
// fixed-size batch starting anywhere before the logical end without a
// bounds check, and have the out-of-range tail always fail the
// mask-conflict test (spec.md §3, "Poison"). The scan loop in search.go
// tests one key at a time and stops at each region's logical end, so it
// never reads the padding.
const numPoisonWords = 8

// region is one tier sub-array: a contiguous run of candidate masks,
// partitioned into four contiguous regions by presence of two tier-mask
// letters, padded with numPoisonWords sentinel words past length.
type region struct {
	keys   []uint32 // length+numPoisonWords entries
	length int
	toff1, toff2, toff3 int
}

// letterTier holds everything the search engine needs for one position in
// the search order: the letter's own mask, and either its raw base set
// (position 0, the rarest letter — nothing ever derives sub-tiers from
// it) or its 2^SetDepth region-partitioned subsets (every other
// position).
type letterTier struct {
	mask    uint32
	base    region   // valid only when len(regions) == 0
	regions []region // valid for every position except the rarest
}

// tierModel is the built-once, read-only structure the search engine
// walks: one letterTier per search-order position, plus the shared
// tier-mask bit list used to index into regions.
type tierModel struct {
	setDepth       int
	tierMaskBits   []uint32 // length setDepth+2
	letters        []*letterTier // length 26, indexed by position in Order
	minSearchDepth int          // shallowest position with a non-empty base set
}

// buildTierModel partitions keys into per-position base sets (the
// "base-set membership rule" of spec.md §3) and, for every position but
// the rarest, splits and sub-partitions that base set per §4.5.
func buildTierModel(fm *FrequencyModel, keys []uint32, setDepth int) *tierModel {
	var rank [26]int
	for pos, letter := range fm.Order {
		rank[letter] = pos
	}

	baseSets := make([][]uint32, 26)
	for _, key := range keys {
		pos := minRank(key, rank)
		baseSets[pos] = append(baseSets[pos], key)
	}

	tm := make([]uint32, len(fm.TierMaskOrder))
	for i, letter := range fm.TierMaskOrder {
		tm[i] = 1 << uint(letter)
	}

	tmodel := &tierModel{
		setDepth:       setDepth,
		tierMaskBits:   tm,
		letters:        make([]*letterTier, 26),
		minSearchDepth: -1,
	}

	for pos := 0; pos < 26; pos++ {
		ls := &letterTier{mask: 1 << uint(fm.Order[pos])}
		if len(baseSets[pos]) > 0 && tmodel.minSearchDepth < 0 {
			tmodel.minSearchDepth = pos
		}
		if pos == 0 {
			ls.base = region{keys: withPoison(baseSets[pos]), length: len(baseSets[pos])}
		} else {
			ls.regions = buildRegions(baseSets[pos], tm, setDepth)
		}
		tmodel.letters[pos] = ls
	}
	return tmodel
}

// minRank returns the smallest rank[letter] among letters set in key.
func minRank(key uint32, rank [26]int) int {
	best := 26
	for k := key; k != 0; k &= k - 1 {
		letter := bits.TrailingZeros32(k)
		if r := rank[letter]; r < best {
			best = r
		}
	}
	return best
}

// buildRegions builds the 2^setDepth sub-arrays for one non-rarest
// letter's base set: subset 0 is the full base set four-region split;
// subset s>0 additionally excludes candidates carrying any tier-mask
// letter named by a set bit of s, per spec.md §4.5 step 4.
func buildRegions(base []uint32, tm []uint32, setDepth int) []region {
	primary := tm[setDepth]
	secondary := tm[setDepth+1]

	working := append([]uint32(nil), base...)
	toff1, toff2, toff3, length := splitFourRegions(working, primary, secondary)
	full := region{keys: withPoison(working), length: length, toff1: toff1, toff2: toff2, toff3: toff3}

	numSubsets := 1 << uint(setDepth)
	regions := make([]region, numSubsets)
	regions[0] = full
	for s := 1; s < numSubsets; s++ {
		var exclude uint32
		for j := 0; j < setDepth; j++ {
			if s&(1<<uint(j)) != 0 {
				exclude |= tm[j]
			}
		}
		regions[s] = deriveSubset(full, exclude)
	}
	return regions
}

// splitFourRegions partitions keys in place into the four regions
// described in spec.md §3/§4.5 and returns their boundaries. Order
// within a region is unspecified (spec.md §4.6: "scan order within a
// region is irrelevant to correctness").
func splitFourRegions(keys []uint32, primary, secondary uint32) (toff1, toff2, toff3, length int) {
	length = len(keys)
	toff2 = partitionFront(keys[:length], func(k uint32) bool { return k&primary != 0 })
	toff1 = partitionFront(keys[:toff2], func(k uint32) bool { return k&secondary != 0 })
	rest := keys[toff2:length]
	n := partitionFront(rest, func(k uint32) bool { return k&secondary == 0 })
	toff3 = toff2 + n
	return
}

// partitionFront moves every element satisfying pred to the front of s,
// returning the count moved. It is a swap-based partition; relative
// order within either side is not preserved, which is fine since no
// caller relies on it.
func partitionFront(s []uint32, pred func(uint32) bool) int {
	write := 0
	for read := 0; read < len(s); read++ {
		if pred(s[read]) {
			s[read], s[write] = s[write], s[read]
			write++
		}
	}
	return write
}

// deriveSubset filters each of parent's four regions down to the keys
// that carry none of excludeMask's bits, preserving the four-region
// layout in the result (spec.md §4.5 step 4).
func deriveSubset(parent region, excludeMask uint32) region {
	out := make([]uint32, 0, parent.length)
	appendFiltered := func(src []uint32) {
		for _, k := range src {
			if k&excludeMask == 0 {
				out = append(out, k)
			}
		}
	}

	appendFiltered(parent.keys[0:parent.toff1])
	toff1 := len(out)
	appendFiltered(parent.keys[parent.toff1:parent.toff2])
	toff2 := len(out)
	appendFiltered(parent.keys[parent.toff2:parent.toff3])
	toff3 := len(out)
	appendFiltered(parent.keys[parent.toff3:parent.length])

	return region{keys: withPoison(out), length: len(out), toff1: toff1, toff2: toff2, toff3: toff3}
}

// withPoison returns a copy of keys with numPoisonWords all-ones
// sentinels appended.
func withPoison(keys []uint32) []uint32 {
	out := make([]uint32, len(keys)+numPoisonWords)
	copy(out, keys)
	for i := len(keys); i < len(out); i++ {
		out[i] = ^uint32(0)
	}
	return out
}

// selectRegion implements the CALCULATE_SET_AND_END contract of
// spec.md §4.5: given the running solution mask and a non-rarest
// letter's letterTier, returns the tightest contiguous candidate range
// that is guaranteed to contain every non-conflicting key with respect
// to the two tier-mask bits.
func selectRegion(ls *letterTier, solutionMask uint32, tm []uint32, setDepth int) (keys []uint32, start, end int) {
	t := 0
	for j := 0; j < setDepth; j++ {
		if solutionMask&tm[j] != 0 {
			t |= 1 << uint(j)
		}
	}
	r := ls.regions[t]
	mf := solutionMask&tm[setDepth] != 0
	ms := solutionMask&tm[setDepth+1] != 0

	switch {
	case !mf && !ms:
		return r.keys, 0, r.length
	case mf && !ms:
		return r.keys, r.toff2, r.length
	case ms && !mf:
		return r.keys, r.toff1, r.toff3
	default:
		return r.keys, r.toff2, r.toff3
	}
}
