// Package hirfold implements the regex HIR literal-folding pass (spec.md
// §4.F, component G): it walks a parsed regexp/syntax tree left to right and
// replaces leaf literal nodes with single-byte placeholder nodes, collecting
// the original literal text in fold order. The rewritten tree compiles
// (via nfa.Compiler.CompileFolded) into an NFA whose placeholder byte-range
// transitions the caller patches into MatcherCall states (component H),
// embedding the pinyin/romaji-aware literal matcher at each folded literal.
package hirfold

import "regexp/syntax"

// MaxFoldedLiterals is the largest number of literal leaves Fold will ever
// fold in one pass: byte values 0..MaxFoldedLiterals-1 are the reserved
// placeholder alphabet (spec.md §4.F "NFA placeholder byte alphabet"), so a
// fold count beyond this would no longer fit in a single byte tag.
const MaxFoldedLiterals = 256

// Result is Fold's output.
type Result struct {
	// Root is the rewritten tree. The original tree passed to Fold is left
	// untouched; Root shares unchanged subtrees with it and only replaces
	// the spine down to each folded literal leaf.
	Root *syntax.Regexp

	// Literals holds each folded literal's original text, in placeholder
	// index order: Literals[i] is the text the NFA's MatcherCall for
	// placeholder byte i must be built from.
	Literals []string

	// FoldCase reports, per entry in Literals, whether that literal carried
	// the case-insensitive flag in the source pattern.
	FoldCase []bool

	// Placeholders maps each placeholder node in Root (by pointer identity)
	// to its index into Literals. Pass this directly to
	// nfa.Compiler.CompileFolded.
	Placeholders map[*syntax.Regexp]int
}

// Fold walks re in left-to-right order and folds its first min(limit,
// leafCount) literal leaves into placeholder nodes. Concat, alternation,
// capture, repetition, class, and look-around nodes are preserved
// structurally; only OpLiteral leaves with at least one rune are candidates.
// limit is clamped to [0, MaxFoldedLiterals].
func Fold(re *syntax.Regexp, limit int) Result {
	if limit > MaxFoldedLiterals {
		limit = MaxFoldedLiterals
	}
	if limit < 0 {
		limit = 0
	}
	f := &folder{limit: limit, placeholders: make(map[*syntax.Regexp]int)}
	root := f.walk(re)
	return Result{
		Root:         root,
		Literals:     f.literals,
		FoldCase:     f.foldCase,
		Placeholders: f.placeholders,
	}
}

type folder struct {
	limit        int
	literals     []string
	foldCase     []bool
	placeholders map[*syntax.Regexp]int
}

// walk returns a tree equivalent to re with any eligible literal leaves
// folded. Structural nodes whose children are unaffected are returned
// as-is; nodes on the path to a folded leaf are shallow-copied so the
// caller's original tree is never mutated.
func (f *folder) walk(re *syntax.Regexp) *syntax.Regexp {
	if re == nil {
		return nil
	}
	if re.Op == syntax.OpLiteral {
		return f.foldLiteral(re)
	}
	if len(re.Sub) == 0 {
		return re
	}
	changed := false
	subs := make([]*syntax.Regexp, len(re.Sub))
	for i, sub := range re.Sub {
		subs[i] = f.walk(sub)
		if subs[i] != sub {
			changed = true
		}
	}
	if !changed {
		return re
	}
	cp := *re
	cp.Sub = subs
	return &cp
}

// foldLiteral decides whether re is still eligible (the fold limit has not
// been reached) and, if so, replaces it with a placeholder node; otherwise
// it is left as an ordinary literal to be compiled normally.
func (f *folder) foldLiteral(re *syntax.Regexp) *syntax.Regexp {
	if len(re.Rune) == 0 || len(f.literals) >= f.limit {
		return re
	}
	idx := len(f.literals)
	f.literals = append(f.literals, string(re.Rune))
	f.foldCase = append(f.foldCase, re.Flags&syntax.FoldCase != 0)

	placeholder := &syntax.Regexp{
		Op:    syntax.OpLiteral,
		Flags: re.Flags &^ syntax.FoldCase,
		Rune:  []rune{rune(idx)},
	}
	f.placeholders[placeholder] = idx
	return placeholder
}
