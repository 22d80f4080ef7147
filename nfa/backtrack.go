package nfa

import "unicode/utf8"

// BoundedBacktracker implements a bounded backtracking regex matcher.
// It uses a bit vector to track visited (state, position) pairs, providing
// O(1) lookup with low constant overhead - faster than a sparse set for small inputs.
//
// This engine is selected when:
//   - len(haystack) * nfa.States() <= maxVisitedSize (default 256KB)
//
// Beyond the usual byte-range/split/capture states, this executor also
// dispatches StateMatcherCall: it hands the current position to an embedded
// MatcherCall (see package matcher) and, on success, resumes at next with
// the cursor advanced by however many bytes the matcher consumed. This is
// what lets a single NFA transition match a whole pinyin or romaji reading
// instead of one literal byte.
type BoundedBacktracker struct {
	nfa *NFA

	// visited is a bit vector tracking (state, position) pairs.
	// Layout: bit at index (state * (inputLen+1) + pos) indicates visited.
	// Using []uint64 for efficient 64-bit operations.
	visited []uint64

	// inputLen is cached for index calculations
	inputLen int

	// numStates is cached for bounds checking
	numStates int

	// maxVisitedSize limits memory usage (in bits)
	// Default: 256 * 1024 * 8 = 2M bits = 256KB
	maxVisitedSize int
}

// NewBoundedBacktracker creates a new bounded backtracker for the given NFA.
func NewBoundedBacktracker(nfa *NFA) *BoundedBacktracker {
	return NewBoundedBacktrackerWithCapacity(nfa, 256*1024*8) // 256KB = 2M bits
}

// NewBoundedBacktrackerWithCapacity creates a bounded backtracker whose
// visited-set cap is maxVisitedBits bits instead of the 2M-bit default
// (spec.md §4.H "Capacity bounds" / §5 "Resource limits": callers that know
// their haystacks run long may raise this; callers matching short patterns
// against short haystacks may lower it).
func NewBoundedBacktrackerWithCapacity(nfa *NFA, maxVisitedBits int) *BoundedBacktracker {
	return &BoundedBacktracker{
		nfa:            nfa,
		numStates:      nfa.States(),
		maxVisitedSize: maxVisitedBits,
	}
}

// CanHandle returns true if this engine can handle the given input size.
// Returns false if the visited bit vector would exceed maxVisitedSize.
func (b *BoundedBacktracker) CanHandle(haystackLen int) bool {
	bitsNeeded := b.numStates * (haystackLen + 1)
	return bitsNeeded <= b.maxVisitedSize
}

// reset prepares the backtracker for a new search.
func (b *BoundedBacktracker) reset(haystackLen int) {
	b.inputLen = haystackLen

	bitsNeeded := b.numStates * (haystackLen + 1)
	wordsNeeded := (bitsNeeded + 63) / 64

	if cap(b.visited) >= wordsNeeded {
		b.visited = b.visited[:wordsNeeded]
		for i := range b.visited {
			b.visited[i] = 0
		}
	} else {
		b.visited = make([]uint64, wordsNeeded)
	}
}

// shouldVisit checks if (state, pos) has been visited and marks it if not.
// Returns true if we should visit (not yet visited), false if already visited.
// This is the hot path - must be as fast as possible.
func (b *BoundedBacktracker) shouldVisit(state StateID, pos int) bool {
	idx := int(state)*(b.inputLen+1) + pos

	word := idx / 64
	bit := uint64(1) << (idx % 64)

	if b.visited[word]&bit != 0 {
		return false
	}
	b.visited[word] |= bit
	return true
}

// IsMatch returns true if the pattern matches anywhere in the haystack.
// This is optimized for boolean-only matching.
func (b *BoundedBacktracker) IsMatch(haystack []byte) bool {
	if !b.CanHandle(len(haystack)) {
		return false
	}

	b.reset(len(haystack))

	for startPos := 0; startPos <= len(haystack); startPos++ {
		if b.backtrack(haystack, startPos, b.nfa.StartAnchored()) {
			return true
		}
	}
	return false
}

// IsMatchAnchored returns true if the pattern matches at the start of haystack.
func (b *BoundedBacktracker) IsMatchAnchored(haystack []byte) bool {
	if !b.CanHandle(len(haystack)) {
		return false
	}

	b.reset(len(haystack))
	return b.backtrack(haystack, 0, b.nfa.StartAnchored())
}

// Search finds the first match in the haystack.
// Returns (start, end, true) if found, (-1, -1, false) otherwise.
func (b *BoundedBacktracker) Search(haystack []byte) (int, int, bool) {
	if !b.CanHandle(len(haystack)) {
		return -1, -1, false
	}

	b.reset(len(haystack))

	for startPos := 0; startPos <= len(haystack); startPos++ {
		if end := b.backtrackFind(haystack, startPos, b.nfa.StartAnchored()); end >= 0 {
			return startPos, end, true
		}
		for i := range b.visited {
			b.visited[i] = 0
		}
	}
	return -1, -1, false
}

// SearchFrom finds the first match starting at or after position from in
// the haystack. Unlike slicing haystack[from:] and calling Search, this
// keeps zero-width assertions (^, $, word boundaries) evaluated against
// absolute haystack positions, so an anchored pattern correctly still only
// matches at from==0 (spec.md §6 "FindAt ... takes the FULL haystack and a
// starting position").
func (b *BoundedBacktracker) SearchFrom(haystack []byte, from int) (int, int, bool) {
	if !b.CanHandle(len(haystack)) {
		return -1, -1, false
	}
	if from > len(haystack) {
		return -1, -1, false
	}

	b.reset(len(haystack))
	for startPos := from; startPos <= len(haystack); startPos++ {
		if end := b.backtrackFind(haystack, startPos, b.nfa.StartAnchored()); end >= 0 {
			return startPos, end, true
		}
		for i := range b.visited {
			b.visited[i] = 0
		}
	}
	return -1, -1, false
}

// SearchAnchored finds a match starting exactly at position 0, returning its
// end offset (spec.md §6 "regex.test" / "test(H) -> start is always 0").
func (b *BoundedBacktracker) SearchAnchored(haystack []byte) (int, bool) {
	if !b.CanHandle(len(haystack)) {
		return -1, false
	}
	b.reset(len(haystack))
	end := b.backtrackFind(haystack, 0, b.nfa.StartAnchored())
	return end, end >= 0
}

// backtrack performs recursive backtracking search for IsMatch.
// Returns true if a match is found from the given (pos, state).
//
//nolint:gocyclo,cyclop // complexity is inherent to state machine dispatch
func (b *BoundedBacktracker) backtrack(haystack []byte, pos int, state StateID) bool {
	if state == InvalidState || int(state) >= b.numStates {
		return false
	}

	if !b.shouldVisit(state, pos) {
		return false
	}

	s := b.nfa.State(state)
	if s == nil {
		return false
	}

	switch s.Kind() {
	case StateMatch:
		return true

	case StateByteRange:
		lo, hi, next := s.ByteRange()
		if pos < len(haystack) {
			c := haystack[pos]
			if c >= lo && c <= hi {
				return b.backtrack(haystack, pos+1, next)
			}
		}
		return false

	case StateSparse:
		if pos >= len(haystack) {
			return false
		}
		c := haystack[pos]
		for _, tr := range s.Transitions() {
			if c >= tr.Lo && c <= tr.Hi {
				return b.backtrack(haystack, pos+1, tr.Next)
			}
		}
		return false

	case StateSplit:
		left, right := s.Split()
		return b.backtrack(haystack, pos, left) || b.backtrack(haystack, pos, right)

	case StateEpsilon:
		return b.backtrack(haystack, pos, s.Epsilon())

	case StateCapture:
		_, _, next := s.Capture()
		return b.backtrack(haystack, pos, next)

	case StateLook:
		look, next := s.LookAssertion()
		if checkLookAssertion(look, haystack, pos) {
			return b.backtrack(haystack, pos, next)
		}
		return false

	case StateRuneAny:
		if pos < len(haystack) {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrack(haystack, pos+width, s.RuneAny())
			}
		}
		return false

	case StateRuneAnyNotNL:
		if pos < len(haystack) && haystack[pos] != '\n' {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrack(haystack, pos+width, s.RuneAnyNotNL())
			}
		}
		return false

	case StateMatcherCall:
		idx, next := s.MatcherCallRef()
		if m := b.nfa.MatcherAt(idx); m != nil {
			if n, ok := m.FindAt(haystack, pos); ok {
				return b.backtrack(haystack, pos+n, next)
			}
		}
		return false

	case StateFail:
		return false
	}

	return false
}

// backtrackFind performs recursive backtracking to find match end position.
// Returns end position if match found, -1 otherwise.
//
//nolint:gocyclo,cyclop // complexity is inherent to state machine dispatch
func (b *BoundedBacktracker) backtrackFind(haystack []byte, pos int, state StateID) int {
	if state == InvalidState || int(state) >= b.numStates {
		return -1
	}

	if !b.shouldVisit(state, pos) {
		return -1
	}

	s := b.nfa.State(state)
	if s == nil {
		return -1
	}

	switch s.Kind() {
	case StateMatch:
		return pos

	case StateByteRange:
		lo, hi, next := s.ByteRange()
		if pos < len(haystack) {
			c := haystack[pos]
			if c >= lo && c <= hi {
				return b.backtrackFind(haystack, pos+1, next)
			}
		}
		return -1

	case StateSparse:
		if pos >= len(haystack) {
			return -1
		}
		c := haystack[pos]
		for _, tr := range s.Transitions() {
			if c >= tr.Lo && c <= tr.Hi {
				return b.backtrackFind(haystack, pos+1, tr.Next)
			}
		}
		return -1

	case StateSplit:
		left, right := s.Split()
		if end := b.backtrackFind(haystack, pos, left); end >= 0 {
			return end
		}
		return b.backtrackFind(haystack, pos, right)

	case StateEpsilon:
		return b.backtrackFind(haystack, pos, s.Epsilon())

	case StateCapture:
		_, _, next := s.Capture()
		return b.backtrackFind(haystack, pos, next)

	case StateLook:
		look, next := s.LookAssertion()
		if checkLookAssertion(look, haystack, pos) {
			return b.backtrackFind(haystack, pos, next)
		}
		return -1

	case StateRuneAny:
		if pos < len(haystack) {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackFind(haystack, pos+width, s.RuneAny())
			}
		}
		return -1

	case StateRuneAnyNotNL:
		if pos < len(haystack) && haystack[pos] != '\n' {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackFind(haystack, pos+width, s.RuneAnyNotNL())
			}
		}
		return -1

	case StateMatcherCall:
		idx, next := s.MatcherCallRef()
		if m := b.nfa.MatcherAt(idx); m != nil {
			if n, ok := m.FindAt(haystack, pos); ok {
				return b.backtrackFind(haystack, pos+n, next)
			}
		}
		return -1

	case StateFail:
		return -1
	}

	return -1
}

// FindCaptures finds the leftmost match and returns its capture-group slot
// offsets: slots[2*i]/slots[2*i+1] are the start/end byte offsets of group i
// (group 0 is the whole match), or -1 where a group did not participate.
// Returns ok=false if there is no match or the haystack is too long for this
// backtracker's visited-set cap (spec.md §4.H capacity bound).
func (b *BoundedBacktracker) FindCaptures(haystack []byte) (slots []int, ok bool) {
	if !b.CanHandle(len(haystack)) {
		return nil, false
	}

	b.reset(len(haystack))
	numSlots := b.nfa.CaptureCount() * 2
	for startPos := 0; startPos <= len(haystack); startPos++ {
		slots = make([]int, numSlots)
		for i := range slots {
			slots[i] = -1
		}
		if b.backtrackCaptures(haystack, startPos, b.nfa.StartAnchored(), slots) {
			slots[0] = startPos
			return slots, true
		}
		for i := range b.visited {
			b.visited[i] = 0
		}
	}
	return nil, false
}

// FindCapturesAnchored is FindCaptures restricted to a match starting exactly
// at position 0.
func (b *BoundedBacktracker) FindCapturesAnchored(haystack []byte) (slots []int, ok bool) {
	if !b.CanHandle(len(haystack)) {
		return nil, false
	}
	b.reset(len(haystack))
	numSlots := b.nfa.CaptureCount() * 2
	slots = make([]int, numSlots)
	for i := range slots {
		slots[i] = -1
	}
	if b.backtrackCaptures(haystack, 0, b.nfa.StartAnchored(), slots) {
		slots[0] = 0
		return slots, true
	}
	return nil, false
}

// FindCapturesFrom is FindCaptures restricted to matches starting at or
// after position from, evaluating assertions against absolute positions in
// the full haystack (the capture-aware counterpart of SearchFrom, used by
// iterators that must resume scanning past a prior match without re-basing
// ^ / $ / \b against a sliced haystack).
func (b *BoundedBacktracker) FindCapturesFrom(haystack []byte, from int) (slots []int, ok bool) {
	if !b.CanHandle(len(haystack)) || from > len(haystack) {
		return nil, false
	}

	b.reset(len(haystack))
	numSlots := b.nfa.CaptureCount() * 2
	for startPos := from; startPos <= len(haystack); startPos++ {
		slots = make([]int, numSlots)
		for i := range slots {
			slots[i] = -1
		}
		if b.backtrackCaptures(haystack, startPos, b.nfa.StartAnchored(), slots) {
			slots[0] = startPos
			return slots, true
		}
		for i := range b.visited {
			b.visited[i] = 0
		}
	}
	return nil, false
}

// backtrackCaptures mirrors backtrack/backtrackFind but additionally records
// capture-group boundaries into slots as it commits to a path, restoring the
// previous value of a slot when a branch fails so that captures reflect only
// the winning (leftmost-first) path. This is the same (state, pos) visited
// memoization as the boolean/end-position variants; it is sound for captures
// for the same reason it is sound in the upstream bounded backtracker this
// was forked from: a (state, pos) pair that failed once can never succeed on
// a later visit within the same search attempt, regardless of which slots
// got it there.
//
//nolint:gocyclo,cyclop // complexity is inherent to state machine dispatch
func (b *BoundedBacktracker) backtrackCaptures(haystack []byte, pos int, state StateID, slots []int) bool {
	if state == InvalidState || int(state) >= b.numStates {
		return false
	}

	if !b.shouldVisit(state, pos) {
		return false
	}

	s := b.nfa.State(state)
	if s == nil {
		return false
	}

	switch s.Kind() {
	case StateMatch:
		if len(slots) > 1 {
			slots[1] = pos
		}
		return true

	case StateByteRange:
		lo, hi, next := s.ByteRange()
		if pos < len(haystack) {
			c := haystack[pos]
			if c >= lo && c <= hi {
				return b.backtrackCaptures(haystack, pos+1, next, slots)
			}
		}
		return false

	case StateSparse:
		if pos >= len(haystack) {
			return false
		}
		c := haystack[pos]
		for _, tr := range s.Transitions() {
			if c >= tr.Lo && c <= tr.Hi {
				return b.backtrackCaptures(haystack, pos+1, tr.Next, slots)
			}
		}
		return false

	case StateSplit:
		left, right := s.Split()
		return b.backtrackCaptures(haystack, pos, left, slots) ||
			b.backtrackCaptures(haystack, pos, right, slots)

	case StateEpsilon:
		return b.backtrackCaptures(haystack, pos, s.Epsilon(), slots)

	case StateCapture:
		idx, isStart, next := s.Capture()
		slot := int(idx) * 2
		if !isStart {
			slot++
		}
		if slot >= len(slots) {
			return b.backtrackCaptures(haystack, pos, next, slots)
		}
		prev := slots[slot]
		slots[slot] = pos
		if b.backtrackCaptures(haystack, pos, next, slots) {
			return true
		}
		slots[slot] = prev
		return false

	case StateLook:
		look, next := s.LookAssertion()
		if checkLookAssertion(look, haystack, pos) {
			return b.backtrackCaptures(haystack, pos, next, slots)
		}
		return false

	case StateRuneAny:
		if pos < len(haystack) {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackCaptures(haystack, pos+width, s.RuneAny(), slots)
			}
		}
		return false

	case StateRuneAnyNotNL:
		if pos < len(haystack) && haystack[pos] != '\n' {
			width := runeWidth(haystack[pos:])
			if width > 0 {
				return b.backtrackCaptures(haystack, pos+width, s.RuneAnyNotNL(), slots)
			}
		}
		return false

	case StateMatcherCall:
		idx, next := s.MatcherCallRef()
		if m := b.nfa.MatcherAt(idx); m != nil {
			if n, ok := m.FindAt(haystack, pos); ok {
				return b.backtrackCaptures(haystack, pos+n, next, slots)
			}
		}
		return false

	case StateFail:
		return false
	}

	return false
}

// runeWidth returns the width in bytes of the first UTF-8 rune in b.
// Returns 0 if b is empty.
func runeWidth(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	if b[0] < utf8.RuneSelf {
		return 1
	}
	switch {
	case b[0]&0xE0 == 0xC0 && len(b) >= 2:
		return 2
	case b[0]&0xF0 == 0xE0 && len(b) >= 3:
		return 3
	case b[0]&0xF8 == 0xF0 && len(b) >= 4:
		return 4
	default:
		return 1 // invalid UTF-8, treat as single byte
	}
}

// isWordByte reports whether b is an ASCII word byte ([0-9A-Za-z_]).
// Word-boundary assertions (\b, \B) are defined over ASCII word characters,
// matching stdlib regexp/RE2 semantics rather than full Unicode word classes.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// checkLookAssertion evaluates a zero-width assertion at pos in haystack.
func checkLookAssertion(look Look, haystack []byte, pos int) bool {
	switch look {
	case LookStartText:
		return pos == 0
	case LookEndText:
		return pos == len(haystack)
	case LookStartLine:
		return pos == 0 || haystack[pos-1] == '\n'
	case LookEndLine:
		return pos == len(haystack) || haystack[pos] == '\n'
	case LookWordBoundary:
		before := pos > 0 && isWordByte(haystack[pos-1])
		after := pos < len(haystack) && isWordByte(haystack[pos])
		return before != after
	case LookNoWordBoundary:
		before := pos > 0 && isWordByte(haystack[pos-1])
		after := pos < len(haystack) && isWordByte(haystack[pos])
		return before == after
	default:
		return false
	}
}
