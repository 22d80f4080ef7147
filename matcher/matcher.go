package matcher

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/pinyin"
	"github.com/ibgo/ibmatcher/unicodeutil"
)

// lang identifies which sub-matcher a haystack character was interpreted
// through, used to enforce Config.MixLang / Pattern.LangOnly (spec.md §9
// Open Question #2): once a candidate chain commits to a language for one
// pattern character, later characters in the same chain may not switch
// unless MixLang is set.
type lang int

const (
	langNone lang = iota
	langPinyin
	langRomaji
)

// langAllowed reports whether attempting want is legal given the language a
// chain has already committed to (committed == langNone means nothing has
// been committed yet).
func langAllowed(mixLang bool, committed, want lang) bool {
	if committed == langNone || committed == want {
		return true
	}
	return mixLang
}

// CompiledMatcher is the literal (pattern-as-word) matcher of spec.md §4.E:
// given a Pattern and Config, it walks a haystack and reports the first
// match (possibly partial, with IsPatternPartial) that its candidate order
// finds at a given position; that match is not necessarily the shortest.
// It implements nfa.MatcherCall so a compiled regex can embed it directly as
// an NFA transition (spec.md §4.G/§4.H).
type CompiledMatcher struct {
	pattern  *Pattern
	cfg      *Config
	analysis analyzer.Analysis

	// asciiOnly is true when pattern contains no non-ASCII code points and
	// langOnly forbids both pinyin and romaji: in that case this matcher
	// degrades to a plain literal/case-insensitive search and, for Find
	// (not FindAt), the ASCII fast path below applies.
	asciiOnly bool

	// automaton is the Aho-Corasick automaton over the single literal
	// pattern string, built once in Compile and only for the ASCII fast path used by
	// Find/IsMatch (not FindAt, which always anchors at the given pos and
	// has nothing to gain from a multi-pattern automaton). Left nil unless
	// asciiOnly.
	automaton *ahocorasick.Automaton
}

// Compile builds a CompiledMatcher for pattern under cfg. cfg's address must
// remain stable and the value alive for the matcher's lifetime (see Config's
// doc comment); aconf selects how much per-pattern analysis work Compile does
// up front (analyzer.Default for one-off patterns, analyzer.Standard for a
// matcher that will be reused across many searches, per spec.md §4.D).
func Compile(pattern *Pattern, cfg *Config, aconf analyzer.Config) *CompiledMatcher {
	notations := pinyinNotations(cfg)
	m := &CompiledMatcher{
		pattern:  pattern,
		cfg:      cfg,
		analysis: analyzer.Analyze(pattern.Lower(), notations, aconf),
	}
	m.asciiOnly = pattern.LangOnly() == LangEnglishOnly && isASCIIPattern(pattern)
	if m.asciiOnly {
		m.buildASCIIFastPath()
	}
	return m
}

func pinyinNotations(cfg *Config) pinyin.NotationSet {
	if cfg.Pinyin != nil {
		return cfg.Pinyin.Notations
	}
	return 0
}

func isASCIIPattern(p *Pattern) bool {
	for _, r := range p.Runes() {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// lowerASCIIBytes returns a copy of data with ASCII letters folded to lower
// case, leaving every other byte (including non-ASCII UTF-8 bytes) untouched.
// Used to search the case-insensitive ASCII automaton, which is built from a
// mono-lowercased literal (Match offsets are unaffected: ASCII case-folding
// never changes byte length or position).
func lowerASCIIBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

func (m *CompiledMatcher) buildASCIIFastPath() {
	raw := m.pattern.Original()
	if m.cfg.CaseInsensitive {
		raw = unicodeutil.MonoLowercaseString(raw)
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(raw))
	auto, err := builder.Build()
	if err != nil {
		// A single, already-validated UTF-8 literal can never fail to
		// build; if it does, fall back to the general candidate-chain
		// path rather than panic.
		return
	}
	m.automaton = auto
}

// FindAt implements nfa.MatcherCall: it attempts a match anchored exactly at
// pos and returns the number of haystack bytes consumed. Used when this
// matcher has been embedded as a StateMatcherCall transition inside a
// compiled regex (spec.md §4.G/§4.H).
func (m *CompiledMatcher) FindAt(haystack []byte, pos int) (n int, ok bool) {
	end, _, ok := m.attempt(haystack, pos)
	if !ok {
		return 0, false
	}
	return end - pos, true
}

// Test reports whether the pattern matches starting exactly at the beginning
// of haystack (spec.md §6 "regex.test" semantics: always anchored).
func (m *CompiledMatcher) Test(haystack []byte) bool {
	_, _, ok := m.attempt(haystack, 0)
	return ok
}

// TestMatch is Test but returns the full Match (end offset and partial
// flag) instead of a bare bool, so callers anchored at position 0 can still
// report the true matched span rather than assuming it spans the whole
// haystack (spec.md §8 invariant 5: "test(H) returns None or (0, e, _)").
func (m *CompiledMatcher) TestMatch(haystack []byte) (Match, bool) {
	end, partial, ok := m.attempt(haystack, 0)
	if !ok {
		return Match{}, false
	}
	return Match{Start: 0, End: end, IsPatternPartial: partial}, true
}

// IsMatch reports whether the pattern matches anywhere in haystack.
func (m *CompiledMatcher) IsMatch(haystack []byte) bool {
	_, ok := m.Find(haystack)
	return ok
}

// Find returns the first match in haystack, scanning from position 0 unless
// Config.StartsWith restricts it to position 0 only.
func (m *CompiledMatcher) Find(haystack []byte) (Match, bool) {
	if m.asciiOnly && m.automaton != nil {
		probe := haystack
		if m.cfg.CaseInsensitive {
			probe = lowerASCIIBytes(haystack)
		}
		if match := m.automaton.Find(probe, 0); match != nil {
			if m.cfg.StartsWith && match.Start != 0 {
				return Match{}, false
			}
			return Match{Start: match.Start, End: match.End}, true
		}
		return Match{}, false
	}

	if len(haystack) < m.analysis.MinHaystackLen {
		return Match{}, false
	}

	limit := len(haystack)
	if m.cfg.StartsWith {
		limit = 0
	}
	for start := 0; start <= limit; {
		if len(haystack)-start < m.analysis.MinHaystackLen {
			break
		}
		if end, partial, ok := m.attempt(haystack, start); ok {
			return Match{Start: start, End: end, IsPatternPartial: partial}, true
		}
		if start >= len(haystack) {
			break
		}
		_, width := utf8.DecodeRune(haystack[start:])
		if width == 0 {
			width = 1
		}
		start += width
	}
	return Match{}, false
}

// attempt is the recursive candidate-chain core: it tries to consume the
// whole of m.pattern starting at haystack[pos:], exploring every legal
// literal/pinyin/romaji interpretation of each haystack character in turn
// (spec.md §4.E "sub_test"/"sub_test_pinyin"). committed tracks which
// non-literal language (if any) earlier pattern characters in this chain
// have already consumed, to enforce LangOnly/MixLang.
func (m *CompiledMatcher) attempt(haystack []byte, pos int) (end int, partial bool, ok bool) {
	return m.sub(haystack, pos, 0, langNone)
}

// sub matches pattern runes [patIdx:] against haystack starting at byte
// offset pos. It returns the end offset of a full (or, if the tail allows
// it, partial) match.
func (m *CompiledMatcher) sub(haystack []byte, pos, patIdx int, committed lang) (end int, partial bool, ok bool) {
	pattern := m.pattern.Lower()
	if patIdx >= len(pattern) {
		return pos, false, true
	}
	if pos >= len(haystack) {
		return 0, false, false
	}

	langOnly := m.pattern.LangOnly()

	// Candidate 1: plain literal/case-insensitive rune comparison.
	if end, partial, ok := m.tryLiteral(haystack, pos, patIdx, committed); ok {
		return end, partial, true
	}

	// Candidate 2: romaji (kana/kanji/word at haystack[pos]).
	if langOnly != LangPinyinOnly && langOnly != LangEnglishOnly && m.cfg.Romaji != nil &&
		langAllowed(m.cfg.MixLang, committed, langRomaji) {
		if end, partial, ok := m.tryRomaji(haystack, pos, patIdx); ok {
			return end, partial, true
		}
	}

	// Candidate 3: pinyin (Han character at haystack[pos]).
	if langOnly != LangRomajiOnly && langOnly != LangEnglishOnly && m.cfg.Pinyin != nil &&
		langAllowed(m.cfg.MixLang, committed, langPinyin) {
		if end, partial, ok := m.tryPinyin(haystack, pos, patIdx); ok {
			return end, partial, true
		}
	}

	return 0, false, false
}

// tryLiteral consumes exactly one haystack rune as a direct (optionally
// case-insensitive) match of pattern rune patIdx.
func (m *CompiledMatcher) tryLiteral(haystack []byte, pos, patIdx int, committed lang) (end int, partial bool, ok bool) {
	h, width := utf8.DecodeRune(haystack[pos:])
	if width == 0 {
		return 0, false, false
	}
	if !m.runeMatches(h, patIdx) {
		return 0, false, false
	}
	return m.sub(haystack, pos+width, patIdx+1, committed)
}

func (m *CompiledMatcher) runeMatches(h rune, patIdx int) bool {
	if m.cfg.CaseInsensitive {
		return unicodeutil.MonoLowercase(h) == m.pattern.Lower()[patIdx]
	}
	return h == m.pattern.Runes()[patIdx]
}

// trialResult is the outcome of comparing one candidate spelling string
// against the pattern tail starting at patIdx (spec.md §4.D "sub_test_pinyin"
// prefix-group break semantics).
type trialResult int

const (
	trialMismatch trialResult = iota // spelling and pattern tail share no common prefix
	trialBreak                       // no match after at least one shared rune: the spelling mismatches the pattern tail, or (without allowPartial) the tail runs out first
	trialMatch                       // spelling fully consumed and is a prefix of (or equal to) the pattern tail
)

// trySpelling compares spelling against pattern[patIdx:] rune by rune.
// partial reports whether the pattern ran out while spelling still had
// content left (spec.md §4.E "sub_test_pinyin": "p_s.len() < py.len()") —
// a match only when allowPartial is set, since pattern[patIdx:] is then only
// a prefix of spelling. consumed is the count of pattern runes spelling
// used. The caller's responsibility (the recursion in tryPinyin/tryRomaji) is
// guaranteed patIdx < len(pattern) on entry, so this branch can only be
// reached after at least one rune has already matched (i >= 1).
func trySpelling(pattern []rune, patIdx int, spelling string, allowPartial bool) (result trialResult, consumed int, partial bool) {
	i := 0
	for _, sr := range spelling {
		if patIdx+i >= len(pattern) {
			if allowPartial {
				return trialMatch, i, true
			}
			return trialBreak, i, false
		}
		if unicodeutil.MonoLowercase(sr) != pattern[patIdx+i] {
			if i == 0 {
				return trialMismatch, 0, false
			}
			return trialBreak, i, false
		}
		i++
	}
	// spelling fully consumed; whether or not pattern has runes left over is
	// not "partial" — that is simply where the chain continues matching.
	return trialMatch, i, false
}

// tryPinyin attempts every enabled pinyin notation of the Han character at
// haystack[pos], in the analyzer's break-safe order, per spec.md §4.D/§4.E.
func (m *CompiledMatcher) tryPinyin(haystack []byte, pos, patIdx int) (end int, partial bool, ok bool) {
	h, width := utf8.DecodeRune(haystack[pos:])
	if width == 0 {
		return 0, false, false
	}
	pc := m.cfg.Pinyin
	pattern := m.pattern.Lower()
	if !pc.CaseInsensitive {
		pattern = m.pattern.Runes()
	}

	tryNotation := func(n pinyin.Notation) (end int, partial bool, ok, brk bool) {
		result, _ := pc.Dict.GetPinyinsAndTryForEach(h, func(e pinyin.PinyinEntry) (any, bool) {
			spelling, has := e.Notation(n)
			if !has {
				return nil, false
			}
			res, consumed, isPartial := trySpelling(pattern, patIdx, spelling, m.cfg.IsPatternPartial)
			switch res {
			case trialMismatch:
				return nil, false
			case trialBreak:
				return trialOutcome{brk: true}, true
			case trialMatch:
				if isPartial {
					return trialOutcome{end: pos + width, partial: true, ok: true}, true
				}
				if end, p, ok := m.sub(haystack, pos+width, patIdx+consumed, langPinyin); ok {
					return trialOutcome{end: end, partial: p, ok: true}, true
				}
				return nil, false
			}
			return nil, false
		})
		if result == nil {
			return 0, false, false, false
		}
		out := result.(trialOutcome)
		return out.end, out.partial, out.ok, out.brk
	}

	for _, n := range m.analysis.NotationsPrefixGroup {
		end, partial, ok, brk := tryNotation(n)
		if ok {
			return end, partial, true
		}
		if brk {
			break
		}
	}
	for _, n := range m.analysis.NotationsFallback {
		if end, partial, ok, _ := tryNotation(n); ok {
			return end, partial, true
		}
	}
	return 0, false, false
}

// trialOutcome threads a per-candidate result back out of the
// GetPinyinsAndTryForEach/RomanizeWordAndTryForEach closures, which only
// carry an `any` payload.
type trialOutcome struct {
	end     int
	partial bool
	ok      bool
	brk     bool
}

// tryRomaji attempts the kana reading and, separately, the word/kanji
// reading(s) at haystack[pos], per spec.md §4.B/§4.E. Kana and word/kanji are
// distinct sub-dictionaries (package romaji keeps them split), so both are
// tried here to approximate the spec's single unified enumeration contract.
func (m *CompiledMatcher) tryRomaji(haystack []byte, pos, patIdx int) (end int, partial bool, ok bool) {
	rc := m.cfg.Romaji
	pattern := m.pattern.Lower()

	if n, spelling, has := rc.Dict.RomanizeKanaPrefix(haystack[pos:]); has {
		res, consumed, isPartial := trySpelling(pattern, patIdx, spelling, m.cfg.IsPatternPartial)
		switch res {
		case trialMatch:
			if isPartial {
				return pos + n, true, true
			}
			if end, p, ok := m.sub(haystack, pos+n, patIdx+consumed, langRomaji); ok {
				return end, p, true
			}
		}
	}

	allowPartial := m.cfg.IsPatternPartial || rc.PartialWord
	result, _ := rc.Dict.RomanizeWordAndTryForEach(haystack, pos, func(n int, spelling string) (any, bool) {
		res, consumed, isPartial := trySpelling(pattern, patIdx, spelling, allowPartial)
		if res != trialMatch {
			return nil, false
		}
		if isPartial {
			return trialOutcome{end: pos + n, partial: true, ok: true}, true
		}
		if end, p, ok := m.sub(haystack, pos+n, patIdx+consumed, langRomaji); ok {
			return trialOutcome{end: end, partial: p, ok: true}, true
		}
		return nil, false
	})
	if result == nil {
		return 0, false, false
	}
	out := result.(trialOutcome)
	return out.end, out.partial, out.ok
}
