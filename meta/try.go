package meta

// TryFind is Find but surfaces the haystack-too-long condition as an error
// instead of panicking (spec.md §6 "regex.try_find(cache, input) ->
// Result<Option<Match>, MatchError>", §7 "Search errors ... surfaced from
// low-level try_* routines"). Grounded on the teacher's fallible search
// entry points (_examples/coregx-coregex/meta/find.go).
func (e *Engine) TryFind(haystack []byte) (*Match, error) {
	return e.TryFindAt(haystack, 0)
}

// TryFindAt is FindAt but returns a *MatchError wrapping ErrHaystackTooLong
// rather than panicking when haystack exceeds the configured visited-set
// capacity.
func (e *Engine) TryFindAt(haystack []byte, at int) (*Match, error) {
	if at > len(haystack) {
		return nil, nil
	}
	if !e.canHandle(len(haystack)) {
		return nil, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.FindAt(haystack, at), nil
}

// TryTest is Test but returns an error instead of panicking when haystack is
// too long for the configured capacity.
func (e *Engine) TryTest(haystack []byte) (*Match, error) {
	if !e.canHandle(len(haystack)) {
		return nil, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.Test(haystack), nil
}

// TryIsMatch is IsMatch but returns an error instead of panicking when
// haystack is too long for the configured capacity (spec.md §6
// "regex.try_is_match(cache, input) -> Result<bool, MatchError>").
func (e *Engine) TryIsMatch(haystack []byte) (bool, error) {
	if !e.canHandle(len(haystack)) {
		return false, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.IsMatch(haystack), nil
}

// TryIsMatchAnchored is IsMatchAnchored but returns an error instead of
// panicking when haystack is too long for the configured capacity.
func (e *Engine) TryIsMatchAnchored(haystack []byte) (bool, error) {
	if !e.canHandle(len(haystack)) {
		return false, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.IsMatchAnchored(haystack), nil
}

// TryCaptures is Captures but returns an error instead of panicking when
// haystack is too long for the configured capacity (spec.md §6
// "regex.try_captures(cache, input, &mut caps) -> Result<bool, MatchError>").
func (e *Engine) TryCaptures(haystack []byte) (*CapturedMatch, error) {
	if !e.canHandle(len(haystack)) {
		return nil, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.Captures(haystack), nil
}

// TryCapturesAnchored is CapturesAnchored but returns an error instead of
// panicking when haystack is too long for the configured capacity.
func (e *Engine) TryCapturesAnchored(haystack []byte) (*CapturedMatch, error) {
	if !e.canHandle(len(haystack)) {
		return nil, &MatchError{Err: ErrHaystackTooLong}
	}
	return e.CapturesAnchored(haystack), nil
}
