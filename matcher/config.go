package matcher

import (
	"github.com/ibgo/ibmatcher/pinyin"
	"github.com/ibgo/ibmatcher/romaji"
)

// Match is a (start, end, is_pattern_partial) triple: byte offsets into the
// haystack, plus whether the match ends partway through a pinyin syllable or
// romaji kana whose remaining prefix equals the pattern's tail (spec.md §3).
type Match struct {
	Start            int
	End              int
	IsPatternPartial bool
}

// Len returns the byte length of the match.
func (m Match) Len() int { return m.End - m.Start }

// PinyinConfig configures the pinyin sub-matcher (spec.md §3).
type PinyinConfig struct {
	// Notations is the set of pinyin spelling systems this matcher may
	// consult. Must equal the set the shared Dict has had InitNotations
	// called for before first search (spec.md §3 invariant).
	Notations pinyin.NotationSet
	// CaseInsensitive controls comparison of the pinyin strings against the
	// pattern tail. Pinyin data is already canonical lower case, so this
	// only affects how the pattern side is compared.
	CaseInsensitive bool
	// Dict is the shared, read-only dictionary instances borrow from. It is
	// never copied.
	Dict *pinyin.Dictionary
}

// RomajiConfig configures the romaji sub-matcher (spec.md §3).
type RomajiConfig struct {
	Dict            *romaji.Dictionary
	CaseInsensitive bool
	// PartialWord enables "partial word" matching for the romaji sub-matcher
	// specifically: the matched haystack word/kanji run may end mid-word
	// provided its romaji prefix consumed so far equals the full remaining
	// pattern. This is the romaji-specific, on-by-default counterpart to
	// Config.IsPatternPartial (spec.md §4.E "Partial-match semantics");
	// either flag being set allows a word or kanji candidate to end partway
	// through its reading. Kana candidates end partway only when
	// Config.IsPatternPartial is set.
	PartialWord bool
}

// Config is the combined match configuration (spec.md §3
// "Combined match config"). Once referenced by a compiled matcher, its
// address must not change: a compiled regex's NFA MatcherCall states borrow
// through the *Config pointer handed to Compile, so callers must keep it
// alive (and unmoved) for as long as any matcher built from it exists — see
// spec.md §3 "Ownership & lifecycles" and §9's pinning guidance. A plain Go
// pointer already gives this guarantee: the struct it points to never moves
// once allocated, only the object is kept alive by whoever holds the
// pointer (here, the CompiledMatcher and every StateMatcherCall that
// references it).
type Config struct {
	Pinyin *PinyinConfig // nil disables pinyin candidates entirely
	Romaji *RomajiConfig // nil disables romaji candidates entirely

	// StartsWith anchors Find to behave like Test (position 0 only). Test
	// always anchors regardless of this field; this only affects Find/IsMatch.
	StartsWith bool

	// IsPatternPartial enables partial-pattern matches at the top level
	// (spec.md §3): both the pinyin and romaji sub-matchers may report a
	// match that ends partway through a syllable/kana whose prefix equals
	// the remaining pattern tail.
	IsPatternPartial bool

	// MixLang allows interleaving pinyin and romaji sub-matches within one
	// committed candidate chain. When false, once a chain has committed to
	// one language for a given pattern-character attempt, later characters
	// in that same chain may not switch language (spec.md §9 Open Question
	// #2). LangOnly is checked first and constrains the choice even when
	// MixLang is true.
	MixLang bool

	// CaseInsensitive controls the plain literal (non-pinyin, non-romaji)
	// character comparison.
	CaseInsensitive bool
}

// DefaultConfig returns a Config with both sub-matchers disabled, plain
// case-insensitive literal comparison, romaji partial-word matching
// semantics left to the caller to enable via RomajiConfig once romaji is
// attached. Callers typically start from this and set Pinyin/Romaji.
func DefaultConfig() *Config {
	return &Config{CaseInsensitive: true}
}
