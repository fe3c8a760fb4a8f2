package fivewords

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestDeduplicatesAnagrams(t *testing.T) {
	result, err := Ingest(strings.NewReader("dance\ncaned\nmouse\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Keys.Len())
	word, ok := result.Index.Lookup(encodeString("caned"))
	require.True(t, ok)
	assert.Equal(t, "dance", string(word))
}

func TestIngestSkipsMalformedLines(t *testing.T) {
	result, err := Ingest(strings.NewReader("mouse\n\nabcdefgh\nab\nA1C2E\nMOUSE\n"))
	require.NoError(t, err)

	// "mouse" and its uppercase form "MOUSE" fold to the same candidate.
	assert.Equal(t, 1, result.Keys.Len())
}

func TestIngestRejectsRepeatedLetterWords(t *testing.T) {
	result, err := Ingest(strings.NewReader("sassy\nmouse\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Keys.Len())
}

func TestNormalizeWord(t *testing.T) {
	w, ok := normalizeWord([]byte("Mouse\r"))
	require.True(t, ok)
	assert.Equal(t, "mouse", string(w))

	_, ok = normalizeWord([]byte("ab1de"))
	assert.False(t, ok)

	_, ok = normalizeWord([]byte("abcd"))
	assert.False(t, ok)
}

func TestIngestReportsScannerErrors(t *testing.T) {
	_, err := Ingest(&erroringReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom))
}

var errBoom = errors.New("boom")

type erroringReader struct{}

func (r *erroringReader) Read([]byte) (int, error) { return 0, errBoom }
