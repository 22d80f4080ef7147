// Package pinyin provides a per-Han-character, multi-notation pinyin
// dictionary: for each character and each enabled spelling system it yields
// the distinct lowercase pinyin strings belonging to that character's
// readings.
package pinyin

// Notation identifies one pinyin spelling system. Notations are combined as
// a bitflag set (NotationSet) so a matcher can enable several at once (e.g.
// Quanpin plus AsciiFirstLetter).
type Notation uint32

const (
	// NotationAsciiQuanpin is full pinyin spelled in plain ASCII letters,
	// e.g. "pin" for 拼.
	NotationAsciiQuanpin Notation = 1 << iota
	// NotationAsciiFirstLetter is the first-letter-only shorthand, e.g. "p"
	// for 拼. Always a prefix of NotationAsciiQuanpin for the same reading.
	NotationAsciiFirstLetter
	// NotationShuangpinMS is the Microsoft/Sogou-style double-pinyin
	// shorthand.
	NotationShuangpinMS
	// NotationToneMarked is pinyin with combining tone diacritics, e.g.
	// "pīn".
	NotationToneMarked
)

// NotationSet is a bitflag set of enabled Notation values.
type NotationSet uint32

// Has reports whether n is a member of s.
func (s NotationSet) Has(n Notation) bool {
	return s&NotationSet(n) != 0
}

// With returns s with n added.
func (s NotationSet) With(n Notation) NotationSet {
	return s | NotationSet(n)
}

// AllNotations is the set of every notation this dictionary knows about.
const AllNotations = NotationSet(NotationAsciiQuanpin | NotationAsciiFirstLetter | NotationShuangpinMS | NotationToneMarked)

// Prefixing reports whether a's output is always a prefix of b's output for
// the same reading, for the notations this dictionary implements. Used by
// package analyzer to compute the prefix-break-safe notation ordering
// (spec.md §4.D, §8 "Prefix-group break correctness").
func Prefixing(a, b Notation) bool {
	return a == NotationAsciiFirstLetter && b == NotationAsciiQuanpin
}
