// Package romaji provides a Hepburn-romaji dictionary for Japanese kana,
// kanji, and multi-character words, plus the longest-prefix-first lookup
// primitives the literal matcher (package matcher) needs to enumerate
// candidate readings at a haystack position.
package romaji

import (
	"sort"
	"unicode/utf8"

	"github.com/ibgo/ibmatcher/unicodeutil"
)

// Bounds on lookup key length, exposed for package analyzer's
// min_haystack_len computation (spec.md §4.B).
const (
	KanaMaxLen        = 6  // bytes; longest single kana spelling (e.g. combined "kya"-style digraphs)
	WordMaxLen        = 18 // bytes; longest word-dictionary key (e.g. "馬鹿々々しい")
	KanjiRomajiMaxLen = 12 // bytes; longest single kanji reading (e.g. "karanashi")
	// KanjiMinLen is the minimum byte offset into the full haystack at
	// which a 々 (NOMA) repetition mark may look back at a preceding
	// kanji. Below this offset there is no character to repeat.
	KanjiMinLen = 3
)

// Noma is the kanji-repetition mark '々'.
const Noma = '々'

// NomaRomaji is the literal fallback reading always yielded for Noma.
const NomaRomaji = "noma"

// Dictionary is a process-wide, read-only-after-build Hepburn romaji
// dictionary. It represents the "Romaji data" external collaborator of
// spec.md §6: kana->single romaji, kanji->multi romaji, word->multi romaji.
type Dictionary struct {
	kana   map[string]string
	kanji  map[rune][]string
	word   map[string][]string
	kanjiOn bool
}

// Config selects which sub-dictionaries a Dictionary is built with.
type Config struct {
	Kana  bool
	Kanji bool
	Word  bool
}

// DefaultConfig enables kana, kanji, and word lookups.
func DefaultConfig() Config {
	return Config{Kana: true, Kanji: true, Word: true}
}

// NewDictionary builds a Dictionary from the seed reference tables (the full
// romaji reference data is out of scope per spec.md §1; see seed.go for the
// representative subset used by this package's tests and the concrete
// scenarios of spec.md §8).
func NewDictionary(cfg Config) *Dictionary {
	d := &Dictionary{kanjiOn: cfg.Kanji}
	if cfg.Kana {
		d.kana = seedKana()
	}
	if cfg.Kanji {
		d.kanji = seedKanji()
		for r, readings := range d.kanji {
			sorted := append([]string(nil), readings...)
			sort.Strings(sorted)
			d.kanji[r] = sorted
		}
	}
	if cfg.Word {
		d.word = seedWord()
	}
	return d
}

// RomanizeKanaPrefix returns the longest kana spelling at the start of s and
// its byte length, trying lengths from KanaMaxLen down to the shortest valid
// rune boundary so longer (more specific) kana always win ties.
func (d *Dictionary) RomanizeKanaPrefix(s []byte) (n int, romaji string, ok bool) {
	if d.kana == nil || len(s) == 0 {
		return 0, "", false
	}
	max := KanaMaxLen
	if max > len(s) {
		max = len(s)
	}
	for length := max; length > 0; length-- {
		boundary := unicodeutil.FloorCharBoundary(s, length)
		if boundary == 0 {
			continue
		}
		if romaji, ok := d.kana[string(s[:boundary])]; ok {
			return boundary, romaji, true
		}
	}
	return 0, "", false
}

// RomanizeWordAndTryForEach enumerates every possible reading of the
// word/kanji/kanji-repetition at the start of full[pos:], invoking f once
// per candidate (byte length consumed, romaji string). It stops and returns
// (result, true) as soon as f does.
//
// Enumeration order (spec.md §4.B): the longest matching word-dictionary
// entry first (if any), then each kanji reading of the leading character in
// lexicographic order, then — only when that leading character is the
// repetition mark 々 — the preceding kanji's readings followed by the
// literal "noma" fallback.
func (d *Dictionary) RomanizeWordAndTryForEach(full []byte, pos int, f func(n int, romaji string) (any, bool)) (any, bool) {
	s := full[pos:]
	if len(s) == 0 {
		return nil, false
	}

	if d.word != nil {
		max := WordMaxLen
		if max > len(s) {
			max = len(s)
		}
		for length := max; length > 0; length-- {
			boundary := unicodeutil.FloorCharBoundary(s, length)
			if boundary == 0 {
				continue
			}
			readings, ok := d.word[string(s[:boundary])]
			if !ok {
				continue
			}
			for _, romaji := range readings {
				if result, stop := f(boundary, romaji); stop {
					return result, true
				}
			}
			break // longest word match only; shorter sub-words are not separately tried here
		}
	}

	if d.kanji == nil {
		return nil, false
	}

	r, width := utf8.DecodeRune(s)
	if width == 0 {
		return nil, false
	}

	if r != Noma {
		for _, romaji := range d.kanji[r] {
			if result, stop := f(width, romaji); stop {
				return result, true
			}
		}
		return nil, false
	}

	// r is the repetition mark: look back at the preceding kanji in the
	// full haystack, not just the remaining slice.
	if pos >= KanjiMinLen {
		prevStart := unicodeutil.FloorCharBoundary(full, pos-1)
		prevRune, _ := utf8.DecodeRune(full[prevStart:])
		for _, romaji := range d.kanji[prevRune] {
			if result, stop := f(width, romaji); stop {
				return result, true
			}
		}
	}
	if result, stop := f(width, NomaRomaji); stop {
		return result, true
	}
	return nil, false
}
