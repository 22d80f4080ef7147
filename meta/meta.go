// Package meta implements the regex front-end orchestrator: it parses a
// pattern, optionally runs it through the literal-folding pass (component G,
// package hirfold) so that folded literal runs are matched through the
// pinyin/romaji-aware literal matcher (package matcher) instead of plain
// bytes, compiles the result to an NFA (package nfa), and wraps a pooled
// bounded backtracker (component I) for searching (spec.md §4.G/§4.H/§4.I,
// §6 "Library API").
//
// Unlike the teacher's meta package, this one has exactly one execution
// strategy: bounded backtracking over a single NFA. There is no DFA, no
// prefilter selection, and no strategy dispatch table — spec.md names one
// matching strategy, so this package does not carry the machinery for
// choosing between several.
package meta
