package fivewords

// KeyTable is the densely packed slice of unique valid masks that
// survived anagram deduplication in the Word Index: the universe of
// candidates the Frequency Model and Tier Builder operate over. No zero
// sentinel is stored after the last mask; the slice length marks the end.
// It is built once and never mutated after Ingest returns; the Tier
// Builder copies elements out of it into per-letter tier arrays rather
// than reordering it in place, so the table itself stays a stable,
// read-only view for tests and diagnostics.
type KeyTable struct {
	keys []uint32
}

// newKeyTable returns an empty table with room for at least capacity
// entries before it needs to grow.
func newKeyTable(capacity int) *KeyTable {
	return &KeyTable{keys: make([]uint32, 0, capacity)}
}

// add appends a mask to the table. Callers are responsible for ensuring
// the mask is valid (popcount 5) and not already present; the Word Index
// is what enforces the latter during ingestion.
func (t *KeyTable) add(mask uint32) {
	t.keys = append(t.keys, mask)
}

// Len returns the number of unique candidate masks.
func (t *KeyTable) Len() int { return len(t.keys) }

// Masks returns the table's backing slice. Callers must not retain a
// mutable reference past the build phase.
func (t *KeyTable) Masks() []uint32 { return t.keys }
