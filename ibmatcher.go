// Package ibmatcher implements a pinyin- and Hepburn-romaji-aware string
// matcher: searching Latin-typed patterns like "pysousuo" or "kanojo"
// against haystacks containing Han characters or Japanese kana/kanji, as
// well as a regex engine (package meta) whose literal runs can be matched
// through the same pinyin/romaji-aware logic instead of plain bytes.
//
// Two entry points are exposed: Matcher, the literal (pattern-as-word)
// matcher (spec.md §4.E), and Regex, the full regex engine with optional
// literal-folding (spec.md §4.F/§4.G/§4.H/§4.I). Both are safe for
// concurrent use after construction.
package ibmatcher

import (
	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/matcher"
	"github.com/ibgo/ibmatcher/meta"
)

// Matcher is a compiled literal (pattern-as-word) matcher (spec.md §6
// "matcher.find(haystack) -> Match?", "matcher.is_match(haystack) -> bool",
// "matcher.test(haystack) -> Match?").
type Matcher struct {
	compiled *matcher.CompiledMatcher
	pattern  string
}

// NewMatcher compiles pattern into a Matcher under cfg. cfg's address must
// remain stable and the value alive for the Matcher's lifetime (see
// matcher.Config's doc comment on pinning). aconf selects how much
// per-pattern analysis work is done up front; pass analyzer.Standard for a
// Matcher that will be reused across many searches.
func NewMatcher(pattern string, langOnly matcher.LangOnly, cfg *matcher.Config, aconf analyzer.Config) *Matcher {
	p := matcher.NewPattern(pattern, langOnly)
	return &Matcher{compiled: matcher.Compile(p, cfg, aconf), pattern: pattern}
}

// Find returns the leftmost match in haystack, or ok=false if none.
func (m *Matcher) Find(haystack []byte) (matcher.Match, bool) {
	return m.compiled.Find(haystack)
}

// IsMatch reports whether the pattern matches anywhere in haystack.
func (m *Matcher) IsMatch(haystack []byte) bool {
	return m.compiled.IsMatch(haystack)
}

// Test reports whether the pattern matches starting exactly at position 0
// of haystack, returning the match if so.
func (m *Matcher) Test(haystack []byte) (matcher.Match, bool) {
	return m.compiled.TestMatch(haystack)
}

// String returns the source pattern text.
func (m *Matcher) String() string { return m.pattern }

// Regex is a compiled regular expression, optionally with literal runs
// matched through the pinyin/romaji-aware literal matcher (spec.md §6
// "regex.find(input)", "regex.is_match(input)", "regex.captures(...)",
// "regex.find_iter(input)", "regex.captures_iter(input)",
// "regex.try_find(cache, input)", etc.).
//
// A Regex is safe to use concurrently from multiple goroutines: each
// search acquires its own pooled backtracker state (spec.md §5).
type Regex struct {
	engine *meta.Engine
}

// Compile compiles a plain regex pattern (no pinyin/romaji literal
// matching): every literal run compiles to ordinary byte/UTF-8
// transitions, same as Go's stdlib regexp.
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// MustCompile is Compile but panics if pattern is invalid. Intended for
// patterns known to be valid at init time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("ibmatcher: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig is Compile with an explicit meta.Config.
func CompileWithConfig(pattern string, cfg meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// CompileMatch compiles pattern with the literal-folding pass enabled
// (component G): every leaf literal run in the pattern (up to
// meta.Config.MaxFoldedLiterals of them) is matched, at search time,
// through a pinyin/romaji-aware Matcher built from matchCfg instead of as
// plain bytes (spec.md §4.F/§4.G/§4.H).
func CompileMatch(pattern string, matchCfg *matcher.Config, aconf analyzer.Config) (*Regex, error) {
	engine, err := meta.CompileMatch(pattern, matchCfg, aconf)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// CompileMatchWithConfig is CompileMatch with an explicit meta.Config.
func CompileMatchWithConfig(pattern string, matchCfg *matcher.Config, aconf analyzer.Config, cfg meta.Config) (*Regex, error) {
	engine, err := meta.CompileMatchWithConfig(pattern, matchCfg, aconf, cfg)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// MustCompileMatch is CompileMatch but panics if pattern or matchCfg is
// invalid.
func MustCompileMatch(pattern string, matchCfg *matcher.Config, aconf analyzer.Config) *Regex {
	re, err := CompileMatch(pattern, matchCfg, aconf)
	if err != nil {
		panic("ibmatcher: CompileMatch(" + pattern + "): " + err.Error())
	}
	return re
}

// DefaultConfig returns the default meta.Config for Compile*WithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Find returns the leftmost match in haystack, or nil if none. Panics if
// haystack is too long for the configured visited-set capacity (spec.md §7);
// use TryFind to handle that case without a panic.
func (r *Regex) Find(haystack []byte) *meta.Match {
	return r.engine.Find(haystack)
}

// FindAt is Find restricted to a match starting at or after position at.
func (r *Regex) FindAt(haystack []byte, at int) *meta.Match {
	return r.engine.FindAt(haystack, at)
}

// Test reports whether the pattern matches starting exactly at position 0
// of haystack, returning the match if so.
func (r *Regex) Test(haystack []byte) *meta.Match {
	return r.engine.Test(haystack)
}

// IsMatch reports whether the pattern matches anywhere in haystack.
func (r *Regex) IsMatch(haystack []byte) bool {
	return r.engine.IsMatch(haystack)
}

// Captures returns the leftmost match together with its capture-group
// slots, or nil if there is no match.
func (r *Regex) Captures(haystack []byte) *meta.CapturedMatch {
	return r.engine.Captures(haystack)
}

// FindIter returns an iterator over every non-overlapping match in haystack
// (spec.md §6 "regex.find_iter(input)").
func (r *Regex) FindIter(haystack []byte) *meta.MatchIter {
	return r.engine.FindIter(haystack)
}

// CapturesIter returns an iterator over every non-overlapping match in
// haystack, each with its capture-group slots (spec.md §6
// "regex.captures_iter(input)").
func (r *Regex) CapturesIter(haystack []byte) *meta.CapturesIter {
	return r.engine.CapturesIter(haystack)
}

// TryFind is Find but returns an error instead of panicking when haystack
// is too long for the configured capacity (spec.md §6
// "regex.try_find(cache, input) -> Result<Option<Match>, MatchError>").
func (r *Regex) TryFind(haystack []byte) (*meta.Match, error) {
	return r.engine.TryFind(haystack)
}

// TryIsMatch is IsMatch but returns an error instead of panicking (spec.md
// §6 "regex.try_is_match(cache, input) -> Result<bool, MatchError>").
func (r *Regex) TryIsMatch(haystack []byte) (bool, error) {
	return r.engine.TryIsMatch(haystack)
}

// TryCaptures is Captures but returns an error instead of panicking
// (spec.md §6 "regex.try_captures(cache, input, &mut caps) -> Result<bool,
// MatchError>").
func (r *Regex) TryCaptures(haystack []byte) (*meta.CapturedMatch, error) {
	return r.engine.TryCaptures(haystack)
}

// String returns the source pattern text.
func (r *Regex) String() string { return r.engine.String() }

// NumSubexp returns the number of capture groups, including group 0.
func (r *Regex) NumSubexp() int { return r.engine.NumCaptures() }

// SubexpNames returns the capture group names (index 0 is always "").
func (r *Regex) SubexpNames() []string { return r.engine.SubexpNames() }

// Clone returns a Regex sharing the same immutable compiled engine but with
// a fresh backtracker pool, for callers with hot short-haystack loops that
// want to avoid contending on the original Regex's pool (spec.md §4.I).
func (r *Regex) Clone() *Regex {
	return &Regex{engine: r.engine.Clone()}
}
