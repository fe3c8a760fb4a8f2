package fivewords

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// IngestResult bundles the two structures the rest of the pipeline is
// built on: the deduplicated candidate key table, and the mask-to-
// spelling index used to recover canonical spellings at emit time.
type IngestResult struct {
	Keys  *KeyTable
	Index *WordIndex
}

type candidateWord struct {
	mask uint32
	word []byte
}

// Ingest reads newline-separated words from r and builds a deduplicated
// candidate table. A line is a candidate only if, after trimming
// trailing CR/LF and folding ASCII case, it is exactly five letters with
// five distinct values; anything else — wrong length, a repeated letter,
// a non-letter byte, a blank line — is silently skipped, per spec.md §7
// ("malformed input lines are skipped, not reported, since partial or
// malformed dictionaries are the normal case, not an error case").
//
// File ingestion is this module's one true I/O boundary; everything
// downstream operates on the in-memory KeyTable and WordIndex Ingest
// produces, never on the reader again.
func Ingest(r io.Reader) (*IngestResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 1<<20)

	var candidates []candidateWord
	for scanner.Scan() {
		word, ok := normalizeWord(scanner.Bytes())
		if !ok {
			continue
		}
		mask := encode(word)
		if !isValidFive(mask) {
			continue
		}
		candidates = append(candidates, candidateWord{mask: mask, word: append([]byte(nil), word...)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading word list: %w", err)
	}

	index := newWordIndex(len(candidates))
	keys := newKeyTable(len(candidates))
	for _, c := range candidates {
		inserted, err := index.Insert(c.mask, c.word)
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		if inserted {
			keys.add(c.mask)
		}
	}
	return &IngestResult{Keys: keys, Index: index}, nil
}

// normalizeWord reports the lowercase five-byte form of line, and
// whether line even qualifies: exactly five bytes (after trimming
// trailing CR/LF) and every byte an ASCII letter. It does not check for
// repeated letters; encode's popcount catches that downstream, since a
// word with repeats is a perfectly fine thing to have normalized, just
// not a valid candidate.
func normalizeWord(line []byte) ([]byte, bool) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) != 5 {
		return nil, false
	}
	var out [5]byte
	for i := 0; i < 5; i++ {
		c := line[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c
		case c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		default:
			return nil, false
		}
	}
	return out[:], true
}
