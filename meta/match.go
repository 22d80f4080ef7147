package meta

// Match represents a successful regex match (spec.md §3 "Match", narrowed
// here to the regex-engine-visible start/end pair; the pinyin/romaji partial
// flag is a property of the literal matcher's own Match type, package
// matcher, not of a whole-regex search result).
//
// Grounded on the teacher's meta.Match (_examples/coregx-coregex/meta/match.go):
// same shape and accessor names.
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch constructs a Match. The haystack is stored by reference.
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{start: start, end: end, haystack: haystack}
}

// Start returns the inclusive start byte offset.
func (m *Match) Start() int { return m.start }

// End returns the exclusive end byte offset.
func (m *Match) End() int { return m.end }

// Len returns the match length in bytes.
func (m *Match) Len() int { return m.end - m.start }

// Bytes returns the matched bytes as a view into the original haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String copies the matched bytes into a new string.
func (m *Match) String() string { return string(m.Bytes()) }

// IsEmpty reports whether the match has zero length.
func (m *Match) IsEmpty() bool { return m.start == m.end }

// CapturedMatch is a Match plus capture-group slot offsets (spec.md §6
// "regex.captures"). Slots[2*i]/Slots[2*i+1] are the start/end byte offsets
// of group i (group 0 is the whole match); -1 where a group did not
// participate.
type CapturedMatch struct {
	*Match
	Slots []int
}

// NumCaptures returns the number of capture groups, including group 0.
func (c *CapturedMatch) NumCaptures() int { return len(c.Slots) / 2 }

// GroupIndex returns the [start, end] byte offsets of group i, or nil if the
// group did not participate in the match.
func (c *CapturedMatch) GroupIndex(i int) []int {
	if 2*i+1 >= len(c.Slots) {
		return nil
	}
	start, end := c.Slots[2*i], c.Slots[2*i+1]
	if start < 0 || end < 0 {
		return nil
	}
	return []int{start, end}
}

// Group returns the matched bytes of group i, or nil if it did not
// participate.
func (c *CapturedMatch) Group(i int) []byte {
	idx := c.GroupIndex(i)
	if idx == nil {
		return nil
	}
	return c.haystack[idx[0]:idx[1]]
}
