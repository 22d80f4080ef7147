// Package analyzer computes the per-pattern heuristics the literal matcher
// (package matcher) uses to reject candidate start positions quickly and to
// order pinyin notation attempts so a longer notation's failure short-circuits
// a shorter one that could never have succeeded anyway (spec.md §4.D).
package analyzer

import (
	"unicode/utf8"

	"github.com/ibgo/ibmatcher/pinyin"
)

// Config selects how much work Analyze does up front.
type Config int

const (
	// Default skips full analysis and returns conservative fallback values:
	// MinHaystackLen degrades to the pattern's own byte length and both
	// notation groups degrade to "no break-safe ordering" (every enabled
	// notation in NotationsFallback, tried without the break optimization).
	// Appropriate for one-off patterns where the ~65µs analysis cost
	// (spec.md §4.D) would not be amortized over enough matches to pay for
	// itself.
	Default Config = iota
	// Standard runs full analysis: notation prefix-grouping plus the
	// per-rune minimum-length computation. Appropriate for a matcher that
	// will be reused across many searches (spec.md §4.D: amortized over
	// ≥220 matches).
	Standard
)

// Analysis holds the precomputed heuristics for one compiled pattern.
type Analysis struct {
	// MinHaystackLen is a lower bound, in haystack bytes, on the length of
	// any successful match of this pattern. Used by CompiledMatcher.Find in
	// package matcher to reject short haystacks and start positions early
	// (spec.md §8 invariant 6/7).
	MinHaystackLen int

	// NotationsPrefixGroup holds enabled pinyin notations ordered so that
	// if notation a is a prefix of notation b (pinyin.Prefixing(a, b)), a
	// precedes b. The matcher tries this group with "break on first
	// non-match" semantics: a failed attempt at one notation's string means
	// no subsequently-tried notation that extends it can succeed either
	// (spec.md §8 "Prefix-group break correctness").
	NotationsPrefixGroup []pinyin.Notation

	// NotationsFallback holds every other enabled notation, tried without
	// the break optimization.
	NotationsFallback []pinyin.Notation
}

// allNotations enumerates every notation this package's pinyin.Dictionary
// implements, in a fixed canonical order used as the iteration base for
// grouping.
var allNotations = []pinyin.Notation{
	pinyin.NotationAsciiFirstLetter,
	pinyin.NotationAsciiQuanpin,
	pinyin.NotationShuangpinMS,
	pinyin.NotationToneMarked,
}

// Analyze computes the heuristics for pattern (already mono-lowercased) given
// the set of pinyin notations a matcher has enabled.
func Analyze(pattern []rune, notations pinyin.NotationSet, cfg Config) Analysis {
	if cfg == Default {
		return Analysis{
			MinHaystackLen:    defaultMinHaystackLen(pattern),
			NotationsFallback: enabledInOrder(notations),
		}
	}

	prefixGroup, fallback := notationGroups(notations)
	return Analysis{
		MinHaystackLen:       minHaystackLen(pattern, notations),
		NotationsPrefixGroup: prefixGroup,
		NotationsFallback:    fallback,
	}
}

// defaultMinHaystackLen is the conservative Config-Default bound: the
// pattern's own UTF-8 byte length. It is always a valid lower bound because
// no candidate interpretation (literal, pinyin, or romaji) ever consumes
// fewer haystack bytes than one byte per ASCII pattern rune, or fewer bytes
// than a non-ASCII pattern rune's own encoded width.
func defaultMinHaystackLen(pattern []rune) int {
	n := 0
	for _, r := range pattern {
		n += utf8.RuneLen(r)
	}
	return n
}

// minHaystackLen is the Config-Standard bound (spec.md §4.D): for purely
// ASCII patterns, each pattern rune can participate in a pinyin/romaji
// reading no shorter than one haystack byte (a single Han character or kana
// is at least KanaMaxLen's shortest entries, i.e. >=1 byte, but the
// *haystack* span backing it is always >=1 UTF-8 byte per codepoint; using 1
// byte per ASCII pattern rune as the floor is conservative and safe). For
// non-ASCII pattern runes (a Han character or kana typed directly into the
// pattern, matched only literally per spec.md §4.E's ASCII-only short
// circuit) the floor is that rune's own encoded byte width, since such a
// rune only ever matches itself.
func minHaystackLen(pattern []rune, notations pinyin.NotationSet) int {
	_ = notations // reserved: a future per-notation floor could tighten this further
	n := 0
	for _, r := range pattern {
		if r < utf8.RuneSelf {
			n++
		} else {
			n += utf8.RuneLen(r)
		}
	}
	return n
}

// enabledInOrder returns every notation in notations, in canonical order,
// with no prefix/fallback distinction (Config-Default fallback behavior).
func enabledInOrder(notations pinyin.NotationSet) []pinyin.Notation {
	var out []pinyin.Notation
	for _, n := range allNotations {
		if notations.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// notationGroups partitions the enabled notations into a break-safe prefix
// group and a fallback group (spec.md §4.D). Both sides of a prefix
// relationship between two enabled notations belong to the prefix group:
// n when n is a prefix of some other enabled notation m
// (pinyin.Prefixing(n, m)), and m when some other enabled notation is a
// prefix of it. Members keep the canonical allNotations order, which puts
// the shorter notation first. Notations with no such relationship to any
// other enabled notation go to the fallback group, tried without the break
// shortcut.
func notationGroups(notations pinyin.NotationSet) (prefixGroup, fallback []pinyin.Notation) {
	for _, n := range allNotations {
		if !notations.Has(n) {
			continue
		}
		isPrefixOfAnother := false
		for _, m := range allNotations {
			if m == n || !notations.Has(m) {
				continue
			}
			if pinyin.Prefixing(n, m) || pinyin.Prefixing(m, n) {
				isPrefixOfAnother = true
				break
			}
		}
		if isPrefixOfAnother {
			prefixGroup = append(prefixGroup, n)
		} else {
			fallback = append(fallback, n)
		}
	}
	return prefixGroup, fallback
}

// MinKanaOrKanjiLen is the minimum number of haystack bytes any non-ASCII
// candidate interpretation (kana, kanji, or pinyin syllable) could ever
// consume: a single Han character or kana codepoint is always at least 3
// bytes in UTF-8 (the CJK Unified Ideographs and Hiragana/Katakana blocks
// both start past U+0800). No code in this module reads it; Analyze does not
// use it when computing MinHaystackLen.
const MinKanaOrKanjiLen = 3
