package fivewords

import (
	"math/bits"
	"sort"
)

// FrequencyModel is the search order L[] plus the tier-mask letter list
// mforder[] that the Tier Builder uses to pre-partition each letter's
// base set (spec.md §4.4).
type FrequencyModel struct {
	// Order is the permutation of letter indices 0..25 (L[] in spec.md),
	// ascending by frequency: Order[0] is the rarest letter and must be
	// covered first.
	Order [26]int

	// Counts holds, for each letter index (not position in Order), the
	// raw occurrence count across the key table.
	Counts [26]int

	// TierMaskOrder holds SetDepth+2 letter indices (mforder[] in
	// spec.md), descending by whatever frequency source SampleDepth
	// selects, used uniformly to build every letter's tier masks except
	// the rarest (nothing ever derives a sub-tier from Order[0]'s base
	// set, since the top-level search starts there directly).
	TierMaskOrder []int
}

// buildFrequencyModel computes the search order and tier-mask order for
// keys under cfg. cfg must already be defaulted (see Config.withDefaults).
func buildFrequencyModel(keys []uint32, cfg Config) *FrequencyModel {
	fm := &FrequencyModel{}
	fm.Counts = countLetters(keys)
	fm.Order = searchOrder(fm.Counts, cfg.SearchOrderOverride)

	tierSource := fm.Counts
	if cfg.SampleDepth > 0 {
		excluded := letterSet(fm.Order[:min(cfg.SampleDepth, 26)])
		tierSource = countLettersExcluding(keys, excluded)
	}
	fm.TierMaskOrder = tierMaskOrder(tierSource, cfg.TierMaskOverride, cfg.SetDepth+2)
	return fm
}

// countLetters returns, for each letter index, how many keys in the
// table contain that letter. This is the "raw input-file letter
// frequency" spec.md §4.4 refers to when sample_depth is 0: the key
// table already reflects one entry per anagram class from the input
// file, so counting over it is counting over the (deduplicated) input.
func countLetters(keys []uint32) [26]int {
	var cf [26]int
	for _, key := range keys {
		for k := key; k != 0; k &= k - 1 {
			cf[bits.TrailingZeros32(k)]++
		}
	}
	return cf
}

// countLettersExcluding is countLetters but skips any bit in excluded,
// implementing spec.md §4.4's sample_depth > 0 re-derivation: "recomputed
// from the key table itself after the first sample_depth letters of the
// search order are fixed, with those letters excluded".
func countLettersExcluding(keys []uint32, excluded uint32) [26]int {
	var cf [26]int
	mask := ^excluded
	for _, key := range keys {
		for k := key & mask; k != 0; k &= k - 1 {
			cf[bits.TrailingZeros32(k)]++
		}
	}
	return cf
}

func letterSet(indices []int) uint32 {
	var m uint32
	for _, i := range indices {
		m |= 1 << uint(i)
	}
	return m
}

// searchOrder builds L[]: override letters first (in the order given),
// then the remaining letters ascending by count, ties broken by natural
// letter order.
func searchOrder(counts [26]int, override string) [26]int {
	var order [26]int
	var placed uint32
	n := 0

	for i := 0; i < len(override); i++ {
		letter := int(override[i] - 'a')
		order[n] = letter
		placed |= 1 << uint(letter)
		n++
	}

	rest := make([]int, 0, 26-n)
	for l := 0; l < 26; l++ {
		if placed&(1<<uint(l)) == 0 {
			rest = append(rest, l)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		ci, cj := counts[rest[i]], counts[rest[j]]
		if ci != cj {
			return ci < cj
		}
		return rest[i] < rest[j]
	})
	for _, l := range rest {
		order[n] = l
		n++
	}
	return order
}

// tierMaskOrder builds mforder[0..want-1]: override letters first, then
// the remaining letters descending by count (ties broken by natural
// letter order), truncated or zero-padded to exactly want entries.
func tierMaskOrder(counts [26]int, override string, want int) []int {
	result := make([]int, 0, want)
	var placed uint32

	for i := 0; i < len(override) && len(result) < want; i++ {
		letter := int(override[i] - 'a')
		result = append(result, letter)
		placed |= 1 << uint(letter)
	}

	rest := make([]int, 0, 26)
	for l := 0; l < 26; l++ {
		if placed&(1<<uint(l)) == 0 {
			rest = append(rest, l)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		ci, cj := counts[rest[i]], counts[rest[j]]
		if ci != cj {
			return ci > cj
		}
		return rest[i] < rest[j]
	})
	for _, l := range rest {
		if len(result) == want {
			break
		}
		result = append(result, l)
	}
	return result
}
