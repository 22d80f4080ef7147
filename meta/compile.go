package meta

import (
	"regexp/syntax"

	"github.com/ibgo/ibmatcher/analyzer"
	"github.com/ibgo/ibmatcher/hirfold"
	"github.com/ibgo/ibmatcher/matcher"
	"github.com/ibgo/ibmatcher/nfa"
)

// Compile compiles a plain regex pattern (no pinyin/romaji literal matching)
// into an Engine. Equivalent to the teacher's meta.Compile, narrowed to this
// package's single execution strategy.
func Compile(pattern string) (*Engine, error) {
	return CompileMatchWithConfig(pattern, nil, analyzer.Default, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit Config.
func CompileWithConfig(pattern string, cfg Config) (*Engine, error) {
	return CompileMatchWithConfig(pattern, nil, analyzer.Default, cfg)
}

// CompileMatch compiles pattern with the literal-folding pass enabled
// (component G): every leaf literal run in the parsed HIR (up to
// Config.MaxFoldedLiterals of them) is matched, at search time, through a
// pinyin/romaji-aware literal matcher built from matchCfg rather than as
// plain bytes (spec.md §4.F/§4.G/§4.H). Passing a nil matchCfg is equivalent
// to Compile: no folding is performed and every literal run compiles to
// ordinary byte-range/UTF-8 transitions.
func CompileMatch(pattern string, matchCfg *matcher.Config, aconf analyzer.Config) (*Engine, error) {
	return CompileMatchWithConfig(pattern, matchCfg, aconf, DefaultConfig())
}

// CompileMatchWithConfig is CompileMatch with an explicit Config.
func CompileMatchWithConfig(pattern string, matchCfg *matcher.Config, aconf analyzer.Config, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		UTF8:              true,
		MaxRecursionDepth: cfg.MaxRecursionDepth,
	})

	if matchCfg == nil {
		n, err := compiler.CompileRegexp(re)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		return newEngine(n, pattern, cfg), nil
	}

	folded := hirfold.Fold(re, cfg.MaxFoldedLiterals)
	n, err := compiler.CompileFolded(folded.Root, folded.Placeholders)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	if len(folded.Literals) > 0 {
		got := n.CountPlaceholderByteRanges(len(folded.Literals))
		if got != len(folded.Literals) {
			return nil, &CompileError{Pattern: pattern, Err: ErrFoldCountMismatch}
		}

		matchers := make([]nfa.MatcherCall, len(folded.Literals))
		for i, lit := range folded.Literals {
			matchers[i] = buildLiteralMatcher(lit, folded.FoldCase[i], matchCfg, aconf)
		}
		patched := n.PatchPlaceholderLiterals(matchers)
		if patched != len(matchers) {
			return nil, &CompileError{Pattern: pattern, Err: ErrFoldCountMismatch}
		}
	}

	return newEngine(n, pattern, cfg), nil
}

// buildLiteralMatcher constructs the pinyin/romaji-aware literal matcher for
// one folded literal. foldCase reflects that literal's own (?i) flag in the
// source pattern (spec.md §4.F); it is combined with matchCfg's own
// CaseInsensitive via a small per-literal config copy so a (?i)-flagged
// literal is matched case-insensitively even when matchCfg itself is not —
// each copy is its own pinned struct, referenced only by the one
// CompiledMatcher built from it, so this never violates the "config address
// must not change" rule (spec.md §3 "Ownership & lifecycles").
func buildLiteralMatcher(lit string, foldCase bool, matchCfg *matcher.Config, aconf analyzer.Config) *matcher.CompiledMatcher {
	cfg := matchCfg
	if foldCase && !matchCfg.CaseInsensitive {
		copied := *matchCfg
		copied.CaseInsensitive = true
		cfg = &copied
	}
	pattern := matcher.NewPattern(lit, matcher.LangNone)
	return matcher.Compile(pattern, cfg, aconf)
}
