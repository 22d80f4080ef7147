package meta

import (
	"sync"

	"github.com/ibgo/ibmatcher/nfa"
)

// Engine is the compiled, searchable form of a pattern: an NFA (classic
// Thompson states, plus any StateMatcherCall states component H patched in)
// together with a pool of BoundedBacktrackers for concurrent search (spec.md
// §4.I "Cache and pool").
//
// Grounded on the teacher's meta.Engine (_examples/coregx-coregex/meta/engine.go):
// same "compile once, pool per-search state" shape, narrowed to the one
// execution strategy this spec names.
//
// Thread safety: Engine's search methods are safe for concurrent use. The
// underlying NFA is immutable after compilation; each call acquires a
// pooled BoundedBacktracker for its own mutable visited-set state and
// returns it afterward (spec.md §5 "Pooled caches ... accessed under a
// mutex or equivalent; the lock is held only for acquire/release").
type Engine struct {
	nfa     *nfa.NFA
	pattern string
	cfg     Config
	pool    sync.Pool
}

func newEngine(n *nfa.NFA, pattern string, cfg Config) *Engine {
	e := &Engine{nfa: n, pattern: pattern, cfg: cfg}
	e.pool.New = func() any {
		return nfa.NewBoundedBacktrackerWithCapacity(n, cfg.VisitedCapacity)
	}
	return e
}

func (e *Engine) acquire() *nfa.BoundedBacktracker {
	return e.pool.Get().(*nfa.BoundedBacktracker)
}

func (e *Engine) release(bt *nfa.BoundedBacktracker) {
	e.pool.Put(bt)
}

// canHandle reports whether haystackLen fits the configured visited-set cap.
func (e *Engine) canHandle(haystackLen int) bool {
	return e.nfa.States()*(haystackLen+1) <= e.cfg.VisitedCapacity
}

// String returns the source pattern text.
func (e *Engine) String() string { return e.pattern }

// NumCaptures returns the number of capture groups, including group 0.
func (e *Engine) NumCaptures() int { return e.nfa.CaptureCount() }

// SubexpNames returns the capture group names (index 0 is always "").
func (e *Engine) SubexpNames() []string { return e.nfa.SubexpNames() }

// Clone returns an Engine sharing the same immutable NFA but with a fresh
// pool, so a caller with a hot short-haystack loop can avoid contending on
// the original Engine's pool (spec.md §4.I "Callers with hot short-haystack
// loops are expected to clone").
func (e *Engine) Clone() *Engine {
	return newEngine(e.nfa, e.pattern, e.cfg)
}
