package fivewords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordIndexInsertAndLookup(t *testing.T) {
	idx := newWordIndex(16)

	inserted, err := idx.Insert(encodeString("about"), []byte("about"))
	require.NoError(t, err)
	assert.True(t, inserted)

	word, ok := idx.Lookup(encodeString("about"))
	require.True(t, ok)
	assert.Equal(t, "about", string(word))

	assert.Equal(t, 1, idx.Len())
}

func TestWordIndexAnagramCollapse(t *testing.T) {
	idx := newWordIndex(16)

	inserted, err := idx.Insert(encodeString("dance"), []byte("dance"))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = idx.Insert(encodeString("caned"), []byte("caned"))
	require.NoError(t, err)
	assert.False(t, inserted, "second anagram should not create a new entry")

	word, ok := idx.Lookup(encodeString("caned"))
	require.True(t, ok)
	assert.Equal(t, "dance", string(word), "first writer wins the canonical spelling")
	assert.Equal(t, 1, idx.Len())
}

func TestWordIndexLookupMiss(t *testing.T) {
	idx := newWordIndex(16)
	_, err := idx.Insert(encodeString("about"), []byte("about"))
	require.NoError(t, err)

	_, ok := idx.Lookup(encodeString("mouse"))
	assert.False(t, ok)
}

func TestWordIndexFullTableIsFatal(t *testing.T) {
	idx := &WordIndex{
		keymap: make([]uint32, 3),
		offset: make([]uint32, 3),
		words:  make([]byte, 0, 15),
	}

	words := []string{"about", "mouse", "dance"}
	for _, w := range words {
		_, err := idx.Insert(encodeString(w), []byte(w))
		require.NoError(t, err)
	}

	_, err := idx.Insert(encodeString("pluck"), []byte("pluck"))
	assert.ErrorIs(t, err, ErrHashTableFull)
}

func TestNextPrime(t *testing.T) {
	assert.Equal(t, 2, nextPrime(0))
	assert.Equal(t, 2, nextPrime(2))
	assert.Equal(t, 3, nextPrime(3))
	assert.Equal(t, 5, nextPrime(4))
	assert.Equal(t, 11, nextPrime(11))
	assert.Equal(t, 101, nextPrime(97+1))
}
