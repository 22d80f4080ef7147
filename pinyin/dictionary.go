package pinyin

import "sync"

// PinyinEntry is a multi-notation view of one reading of a Han character.
// Only the notations that exist for this reading are set; absent notations
// return ("", false) from Notation.
type PinyinEntry struct {
	quanpin     string
	firstLetter string
	shuangpinMS string
	toneMarked  string
}

// Notation returns the string this entry spells under notation n, and
// whether it has one.
func (e PinyinEntry) Notation(n Notation) (string, bool) {
	switch n {
	case NotationAsciiQuanpin:
		return e.quanpin, e.quanpin != ""
	case NotationAsciiFirstLetter:
		return e.firstLetter, e.firstLetter != ""
	case NotationShuangpinMS:
		return e.shuangpinMS, e.shuangpinMS != ""
	case NotationToneMarked:
		return e.toneMarked, e.toneMarked != ""
	default:
		return "", false
	}
}

// notationGuard guards idempotent initialization per notation: once a
// notation has been initialized, repeated InitNotations calls are a
// no-op and never lose or duplicate data (spec.md §8 "Idempotence of
// notation init").
type notationGuard struct {
	once sync.Once
}

// Dictionary is a process-wide, read-only-after-init pinyin dictionary.
// Represents the "Pinyin data" external collaborator of spec.md §6: a table
// keyed by Han code point, with a list of lowercase strings per enabled
// notation. The seed data below stands in for the full reference table
// (out of scope per spec.md §1) and covers the characters exercised by the
// package's own tests and the concrete scenarios of spec.md §8.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[rune][]PinyinEntry
	guards  map[Notation]*notationGuard
	inited  NotationSet
}

// NewDictionary returns a dictionary holding the seed table, with no
// notation yet recorded as initialized. InitNotations records notations in
// InitedNotations; lookups return every notation of the seed table
// whether or not it has been initialized.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: seedEntries(),
		guards: map[Notation]*notationGuard{
			NotationAsciiQuanpin:     {},
			NotationAsciiFirstLetter: {},
			NotationShuangpinMS:      {},
			NotationToneMarked:       {},
		},
	}
}

// InitNotations idempotently marks each notation in want as initialized.
// Concurrent callers requesting the same notation converge on the same
// result; calling this twice for the same notation never loses data.
func (d *Dictionary) InitNotations(want NotationSet) {
	for _, n := range []Notation{NotationAsciiQuanpin, NotationAsciiFirstLetter, NotationShuangpinMS, NotationToneMarked} {
		if !want.Has(n) {
			continue
		}
		g := d.guards[n]
		g.once.Do(func() {
			d.mu.Lock()
			d.inited = d.inited.With(n)
			d.mu.Unlock()
		})
	}
}

// InitedNotations returns the set of notations initialized so far.
func (d *Dictionary) InitedNotations() NotationSet {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inited
}

// Pinyins returns every reading of c under the given enabled notation set,
// flattened to strings, one per (reading, notation) pair that exists. This
// is a convenience wrapper; the hot path is GetPinyinsAndTryForEach.
func (d *Dictionary) Pinyins(c rune, notations NotationSet) []string {
	var out []string
	for _, entry := range d.entries[c] {
		for _, n := range []Notation{NotationAsciiQuanpin, NotationAsciiFirstLetter, NotationShuangpinMS, NotationToneMarked} {
			if !notations.Has(n) {
				continue
			}
			if s, ok := entry.Notation(n); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// GetPinyinsAndTryForEach invokes f once per PinyinEntry of c, stopping and
// returning (result, true) as soon as f returns (result, true). This is the
// hot-path contract of spec.md §4.C: it must not allocate a per-call
// collection, so callers get a direct range over the backing entry slice
// rather than a copy.
func (d *Dictionary) GetPinyinsAndTryForEach(c rune, f func(PinyinEntry) (any, bool)) (any, bool) {
	for _, entry := range d.entries[c] {
		if result, stop := f(entry); stop {
			return result, true
		}
	}
	return nil, false
}

// seedEntries is the representative seed table: the pinyin reference data
// itself is an out-of-scope external collaborator (spec.md §1, §6); this
// hardcodes enough of it to make the matcher's candidate-chain algorithm
// exercisable and testable end to end.
func seedEntries() map[rune][]PinyinEntry {
	return map[rune][]PinyinEntry{
		'拼': {{quanpin: "pin", firstLetter: "p", toneMarked: "pīn"}},
		'音': {{quanpin: "yin", firstLetter: "y", toneMarked: "yīn"}},
		'搜': {{quanpin: "sou", firstLetter: "s", toneMarked: "sōu"}},
		'索': {{quanpin: "suo", firstLetter: "s", toneMarked: "suǒ"}},
		'行': {
			{quanpin: "xing", firstLetter: "x", toneMarked: "xíng"},
			{quanpin: "hang", firstLetter: "h", toneMarked: "háng"},
		},
		'柯': {{quanpin: "ke", firstLetter: "k", toneMarked: "kē"}},
		'尔': {{quanpin: "er", firstLetter: "e", toneMarked: "ěr"}},
		'水': {{quanpin: "shui", firstLetter: "s", toneMarked: "shuǐ"}},
		'树': {{quanpin: "shu", firstLetter: "s", toneMarked: "shù"}},
	}
}
