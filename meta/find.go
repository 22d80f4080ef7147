package meta

// Find returns the leftmost match anywhere in haystack, or nil if none
// (spec.md §6 "regex.find(input) -> Match?").
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt finds the leftmost match starting at or after position at in
// haystack, evaluating zero-width assertions against absolute positions in
// the full haystack (spec.md §6; grounded on the teacher's
// meta.Engine.FindAt doc comment on why FindAll* must pass the full
// haystack rather than a slice).
//
// FindAt panics if haystack exceeds the configured visited-set capacity
// (spec.md §7: "the convenience routines propagate [search errors] as a
// panic because the default capacity is set high enough that exceeding it
// indicates misuse"). Callers that expect oversized input should use
// TryFindAt instead.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	if at > len(haystack) {
		return nil
	}
	if !e.canHandle(len(haystack)) {
		panic(&MatchError{Err: ErrHaystackTooLong})
	}
	bt := e.acquire()
	defer e.release(bt)

	start, end, ok := bt.SearchFrom(haystack, at)
	if !ok {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// Test reports whether the pattern matches starting exactly at position 0
// of haystack, returning the match if so (spec.md §6 "test(haystack) ->
// Match?", anchored). Test panics if haystack is too long for the
// configured capacity; use TryTest to handle that case without a panic.
func (e *Engine) Test(haystack []byte) *Match {
	if !e.canHandle(len(haystack)) {
		panic(&MatchError{Err: ErrHaystackTooLong})
	}
	bt := e.acquire()
	defer e.release(bt)

	end, ok := bt.SearchAnchored(haystack)
	if !ok {
		return nil
	}
	return NewMatch(0, end, haystack)
}
