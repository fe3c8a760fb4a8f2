package fivewords

import "math/bits"

// A word of interest is always exactly five lowercase ASCII letters with
// no repeated letter. encode folds such a word into a 26-bit mask, bit i
// set meaning letter 'a'+i is present. Words with a repeated letter fold
// down to a mask with popcount < 5 and are rejected by isValidFive; the
// codec never checks byte ranges itself, that's the scanner's job.

// encode folds a five-byte lowercase word into its 26-bit alphabet mask.
// Callers must ensure w has length 5 and bytes in ['a', 'z']; encode does
// not validate either.
func encode(w []byte) uint32 {
	var m uint32
	m |= 1 << (w[0] - 'a')
	m |= 1 << (w[1] - 'a')
	m |= 1 << (w[2] - 'a')
	m |= 1 << (w[3] - 'a')
	m |= 1 << (w[4] - 'a')
	return m
}

// encodeString is the string-argument form of encode, used by tests and
// by callers that already hold a Go string rather than a byte slice.
func encodeString(w string) uint32 {
	var m uint32
	m |= 1 << (w[0] - 'a')
	m |= 1 << (w[1] - 'a')
	m |= 1 << (w[2] - 'a')
	m |= 1 << (w[3] - 'a')
	m |= 1 << (w[4] - 'a')
	return m
}

// isValidFive reports whether mask represents five distinct letters. A
// five-letter word with a repeated letter, or any input that folded from
// fewer than five characters, fails this check and must be discarded
// before entering the key table.
func isValidFive(mask uint32) bool {
	return bits.OnesCount32(mask) == 5
}
