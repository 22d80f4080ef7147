package meta

// MatchIter yields successive leftmost-first, non-overlapping matches over a
// haystack (spec.md §5 "Ordering guarantees": "successive elements are the
// leftmost-first non-overlapping matches", §6 "regex.find_iter(input)").
// An empty match advances the scan position by one byte to guarantee
// forward progress, matching the teacher's FindAll loop
// (_examples/coregx-coregex/meta/find.go's pos-advancement rule).
type MatchIter struct {
	engine   *Engine
	haystack []byte
	pos      int
	done     bool
}

// FindIter returns an iterator over every non-overlapping match in haystack.
func (e *Engine) FindIter(haystack []byte) *MatchIter {
	return &MatchIter{engine: e, haystack: haystack}
}

// Next returns the next match, or nil when exhausted.
func (it *MatchIter) Next() *Match {
	if it.done || it.pos > len(it.haystack) {
		return nil
	}
	m := it.engine.FindAt(it.haystack, it.pos)
	if m == nil {
		it.done = true
		return nil
	}
	if m.end > it.pos {
		it.pos = m.end
	} else {
		it.pos++
	}
	return m
}

// CapturesIter is the capture-aware counterpart of MatchIter (spec.md §6
// "regex.captures_iter(input)").
type CapturesIter struct {
	engine   *Engine
	haystack []byte
	pos      int
	done     bool
}

// CapturesIter returns an iterator over every non-overlapping match in
// haystack, each with its capture-group slots.
func (e *Engine) CapturesIter(haystack []byte) *CapturesIter {
	return &CapturesIter{engine: e, haystack: haystack}
}

// Next returns the next captured match, or nil when exhausted.
func (it *CapturesIter) Next() *CapturedMatch {
	if it.done || it.pos > len(it.haystack) {
		return nil
	}
	bt := it.engine.acquire()
	slots, ok := bt.FindCapturesFrom(it.haystack, it.pos)
	it.engine.release(bt)
	if !ok {
		it.done = true
		return nil
	}
	if slots[1] > it.pos {
		it.pos = slots[1]
	} else {
		it.pos++
	}
	return &CapturedMatch{Match: NewMatch(slots[0], slots[1], it.haystack), Slots: slots}
}
