package fivewords

// MaxSetDepth bounds Config.SetDepth. Each unit doubles the number of
// derived sub-arrays a base set is split into (2^SetDepth), so this also
// bounds the tier-array memory blow-up described in spec.md §6.
const MaxSetDepth = 8

// MaxSampleDepth bounds Config.SampleDepth: there are only 26 letters in
// the fixed prefix of the search order a sample can exclude.
const MaxSampleDepth = 26

// MaxThreads is the implementation limit an explicit Config.NumThreads is
// clamped against. This is this module's own ceiling, not the original
// program's MAX_THREADS (14): an explicit override is a deliberate choice
// by the caller, so the ceiling here is generous rather than historical.
const MaxThreads = 64

// DefaultThreadCap bounds the CPU-count-derived default pool size per
// spec.md §4.7's stated policy ("clamp to ≈ min(cores−2, 20)"). This is
// separate from MaxThreads: it governs defaultThreadCount's own behavior,
// not the ceiling an explicit override is clamped to.
const DefaultThreadCap = 20

// DefaultSolutionCapacity sizes the preallocated solution buffer. It is
// generous relative to the documented "low thousands" of solutions for
// the canonical corpus; Solve grows the buffer if it is exceeded.
const DefaultSolutionCapacity = 8192

// Config holds every knob spec.md §6 documents. All fields are optional;
// zero values select the documented defaults.
type Config struct {
	// SetDepth is the number of extra tier-mask letters used to
	// sub-partition each letter's base set. Default 4.
	SetDepth int

	// SampleDepth selects the frequency source used to pick tier-mask
	// letters: 0 uses raw input-file letter frequencies; >0 re-derives
	// frequencies from the key table with the first SampleDepth search
	// letters excluded. Default 0.
	SampleDepth int

	// SearchOrderOverride is a prefix of distinct lowercase letters
	// forcing L[0..k-1]; the remainder of the search order is filled by
	// descending frequency as usual.
	SearchOrderOverride string

	// TierMaskOverride is a prefix of distinct lowercase letters forcing
	// mforder[0..k-1], the letters used to sub-partition base sets.
	TierMaskOverride string

	// NumThreads is the worker pool size; 0 selects a CPU-count-derived
	// default (see defaultThreadCount). Clamped to [1, MaxThreads].
	NumThreads int

	// DisablePruning turns off the pseudovowel-group pruning described
	// in spec.md §4.6, for use by the prune-soundness property test.
	DisablePruning bool

	// SolutionCapacity overrides DefaultSolutionCapacity. 0 selects the
	// default.
	SolutionCapacity int
}

// withDefaults returns a copy of c with zero fields set to their
// documented defaults and NumThreads clamped to MaxThreads. It does not
// validate; Solve calls Validate on the result.
func (c Config) withDefaults() Config {
	if c.SetDepth == 0 {
		c.SetDepth = 4
	}
	if c.NumThreads == 0 {
		c.NumThreads = defaultThreadCount()
	}
	if c.NumThreads > MaxThreads {
		c.NumThreads = MaxThreads
	}
	if c.SolutionCapacity == 0 {
		c.SolutionCapacity = DefaultSolutionCapacity
	}
	return c
}

// Validate reports the first out-of-range field found, or nil if every
// field is within its documented bounds. The engine calls this before
// doing any work, per spec.md §7: "refuse to start; report the
// offending value."
func (c Config) Validate() error {
	if c.SetDepth < 0 || c.SetDepth > MaxSetDepth {
		return &ConfigError{Field: "SetDepth", Value: c.SetDepth, Reason: "must be in [0, MaxSetDepth]"}
	}
	if c.SampleDepth < 0 || c.SampleDepth > MaxSampleDepth {
		return &ConfigError{Field: "SampleDepth", Value: c.SampleDepth, Reason: "must be in [0, 26]"}
	}
	if c.NumThreads < 0 {
		return &ConfigError{Field: "NumThreads", Value: c.NumThreads, Reason: "must not be negative"}
	}
	if err := validateLetterPrefix("SearchOrderOverride", c.SearchOrderOverride); err != nil {
		return err
	}
	if err := validateLetterPrefix("TierMaskOverride", c.TierMaskOverride); err != nil {
		return err
	}
	return nil
}

// validateLetterPrefix checks that s is a (possibly empty) sequence of
// distinct lowercase letters, as spec.md §6 requires of both override
// fields.
func validateLetterPrefix(field, s string) error {
	var seen uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return &ConfigError{Field: field, Value: s, Reason: "must contain only lowercase letters"}
		}
		bit := uint32(1) << (c - 'a')
		if seen&bit != 0 {
			return &ConfigError{Field: field, Value: s, Reason: "letters must be distinct"}
		}
		seen |= bit
	}
	return nil
}
