package meta

// Captures returns the leftmost match together with its capture-group slot
// offsets (spec.md §6 "regex.captures(input, &mut caps)"), or nil if there
// is no match. Captures panics if haystack is too long for the configured
// capacity; use TryCaptures to handle that case without a panic.
func (e *Engine) Captures(haystack []byte) *CapturedMatch {
	if !e.canHandle(len(haystack)) {
		panic(&MatchError{Err: ErrHaystackTooLong})
	}
	bt := e.acquire()
	defer e.release(bt)

	slots, ok := bt.FindCaptures(haystack)
	if !ok {
		return nil
	}
	return &CapturedMatch{
		Match: NewMatch(slots[0], slots[1], haystack),
		Slots: slots,
	}
}

// CapturesAnchored is Captures restricted to a match starting exactly at
// position 0. Panics if haystack is too long for the configured capacity.
func (e *Engine) CapturesAnchored(haystack []byte) *CapturedMatch {
	if !e.canHandle(len(haystack)) {
		panic(&MatchError{Err: ErrHaystackTooLong})
	}
	bt := e.acquire()
	defer e.release(bt)

	slots, ok := bt.FindCapturesAnchored(haystack)
	if !ok {
		return nil
	}
	return &CapturedMatch{
		Match: NewMatch(slots[0], slots[1], haystack),
		Slots: slots,
	}
}
