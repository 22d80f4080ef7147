package meta

import "fmt"

// Config controls front-end compilation and search behavior.
//
// Grounded on the teacher's meta.Config (_examples/coregx-coregex/meta/config.go):
// same Default*/Validate shape, narrowed to the knobs this single-strategy
// engine actually has (no DFA/prefilter/ASCII-dual-NFA fields, since there is
// only one execution strategy here).
type Config struct {
	// MaxRecursionDepth limits the nfa.Compiler's recursive descent during
	// NFA compilation. The component G HIR walk (hirfold.Fold) takes no depth
	// limit and does not consult it. Default: 100.
	MaxRecursionDepth int

	// MaxFoldedLiterals caps how many leaf literals component G folds into
	// placeholder bytes (spec.md §4.F: "Only the first L <= 256 leaves are
	// folded"). Default: hirfold.MaxFoldedLiterals (256). Only consulted when
	// compiling with a non-nil matcher.Config (CompileMatch*).
	MaxFoldedLiterals int

	// VisitedCapacity bounds the bounded backtracker's visited-set size, in
	// bits (spec.md §4.H "Capacity bounds"). A search whose
	// nfa.States() * (len(haystack)+1) would exceed this fails with
	// ErrHaystackTooLong instead of running. Default: 256*1024*8 (2M bits),
	// matching nfa.NewBoundedBacktracker's own built-in default.
	VisitedCapacity int
}

// DefaultConfig returns sensible defaults (spec.md §4.H "default capacity is
// set high enough that exceeding it indicates misuse").
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 100,
		MaxFoldedLiterals: 256,
		VisitedCapacity:   256 * 1024 * 8,
	}
}

// Validate checks that cfg's fields are in range.
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 10 and 1,000"}
	}
	if c.MaxFoldedLiterals < 0 || c.MaxFoldedLiterals > 256 {
		return &ConfigError{Field: "MaxFoldedLiterals", Message: "must be between 0 and 256"}
	}
	if c.VisitedCapacity < 1024 {
		return &ConfigError{Field: "VisitedCapacity", Message: "must be at least 1024 bits"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ibmatcher: invalid config: %s: %s", e.Field, e.Message)
}
