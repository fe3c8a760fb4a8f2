package fivewords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("distinct letters", func(t *testing.T) {
		m := encodeString("about")
		require.True(t, isValidFive(m))
		assert.Equal(t, 5, popcountForTest(m))
	})

	t.Run("repeated letter fails validity", func(t *testing.T) {
		m := encodeString("sassy")
		assert.False(t, isValidFive(m))
	})

	t.Run("bit i is letter a+i", func(t *testing.T) {
		m := encodeString("abcde")
		for i := 0; i < 5; i++ {
			assert.True(t, m&(1<<uint(i)) != 0, "bit %d should be set", i)
		}
		assert.Equal(t, uint32(0b11111), m)
	})

	t.Run("order invariance: anagrams encode identically", func(t *testing.T) {
		assert.Equal(t, encodeString("dance"), encodeString("caned"))
	})

	t.Run("byte-slice and string forms agree", func(t *testing.T) {
		assert.Equal(t, encodeString("mouse"), encode([]byte("mouse")))
	})
}

func popcountForTest(m uint32) int {
	n := 0
	for m != 0 {
		n++
		m &= m - 1
	}
	return n
}
