// Package matcher implements the literal (pattern-as-word) matcher: given a
// pattern typed in Latin letters, walk a haystack character by character and,
// at each position, speculatively interpret the upcoming haystack character
// as a Han character (via package pinyin) or a Japanese kana/kanji/word (via
// package romaji), in addition to plain case-insensitive comparison
// (spec.md §4.E).
package matcher

import (
	"github.com/ibgo/ibmatcher/unicodeutil"
)

// LangOnly restricts which sub-matchers a pattern-character attempt may
// consult (spec.md §3, §9 Open Question #2). It is checked before MixLang:
// LangEnglishOnly short-circuits straight to literal/ASCII comparison and
// never consults pinyin or romaji at all.
type LangOnly int

const (
	// LangNone places no restriction: pinyin and romaji are both
	// candidates, subject to Config.MixLang.
	LangNone LangOnly = iota
	// LangPinyinOnly forbids the romaji sub-matcher.
	LangPinyinOnly
	// LangRomajiOnly forbids the pinyin sub-matcher.
	LangRomajiOnly
	// LangEnglishOnly forbids both; only literal/case-insensitive
	// comparison is attempted.
	LangEnglishOnly
)

// Pattern is an ordered sequence of code points plus the metadata the
// matcher needs to interpret them: the original form, its mono-lowercased
// form, and a language restriction. Immutable once constructed (spec.md §3).
type Pattern struct {
	original string
	runes    []rune
	lower    []rune
	langOnly LangOnly
}

// NewPattern constructs a Pattern from its original text and language
// restriction. The lowercased form is computed once via
// unicodeutil.MonoLowercase, matching spec.md §4.A's context-free,
// single-rune folding contract.
func NewPattern(original string, langOnly LangOnly) *Pattern {
	runes := []rune(original)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicodeutil.MonoLowercase(r)
	}
	return &Pattern{original: original, runes: runes, lower: lower, langOnly: langOnly}
}

// Original returns the pattern's original text.
func (p *Pattern) Original() string { return p.original }

// Lower returns the pattern's mono-lowercased code points. The returned
// slice must not be modified by callers.
func (p *Pattern) Lower() []rune { return p.lower }

// Runes returns the pattern's original (not lowercased) code points, used
// for case-sensitive literal comparison. The returned slice must not be
// modified by callers.
func (p *Pattern) Runes() []rune { return p.runes }

// LangOnly returns the pattern's language restriction.
func (p *Pattern) LangOnly() LangOnly { return p.langOnly }

// IsEmpty reports whether the pattern has zero code points.
func (p *Pattern) IsEmpty() bool { return len(p.lower) == 0 }
