package bitset

// Set is a fixed-width multi-word bit set over vertices 0..n-1, for n the
// width the Set was created with. Every routine is allocation-free and runs
// in O(m) words, m = ceil(n/64); padding bits beyond n-1 in the final word
// are always kept at 0.
//
// Complexity annotations below use m for len(words).
type Set struct {
	words []Word
	n     int // number of vertices this set is sized for
}

// NewSet allocates a Set able to hold vertices 0..n-1, initially empty.
//
// Complexity: O(m) time and space.
func NewSet(n int) *Set {
	return &Set{words: make([]Word, WordsNeeded(n)), n: n}
}

// WordsNeeded returns ceil(n/64), the number of words required to hold n
// vertices.
func WordsNeeded(n int) int {
	return (n + WordSize - 1) / WordSize
}

// Len returns the vertex-count width the set was constructed with.
func (s *Set) Len() int { return s.n }

// Words exposes the underlying word slice as a read-only view, for callers
// (densegraph row access, refine splitter counting) that need direct word
// arithmetic without a copy.
func (s *Set) Words() []Word { return s.words }

// Clear zeros every word.
//
// Complexity: O(m).
func (s *Set) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// FillToN sets exactly bits 0..n-1 and zeros the remaining padding.
//
// Complexity: O(m).
func (s *Set) FillToN() {
	full := s.n / WordSize
	rem := s.n % WordSize
	for i := 0; i < full; i++ {
		s.words[i] = ^Word(0)
	}
	for i := full; i < len(s.words); i++ {
		s.words[i] = 0
	}
	if rem > 0 && full < len(s.words) {
		s.words[full] = PrefixMask(uint(rem))
	}
}

// Test reports whether vertex v is a member.
func (s *Set) Test(v int) bool {
	return TestBit(s.words[v>>6], uint(v&63))
}

// Add inserts vertex v.
func (s *Set) Add(v int) {
	s.words[v>>6] = AddBit(s.words[v>>6], uint(v&63))
}

// Remove deletes vertex v.
func (s *Set) Remove(v int) {
	s.words[v>>6] = RemoveBit(s.words[v>>6], uint(v&63))
}

// Flip toggles membership of vertex v.
func (s *Set) Flip(v int) {
	s.words[v>>6] = FlipBit(s.words[v>>6], uint(v&63))
}

// Size returns the number of members, summing popcount across all words.
//
// Complexity: O(m).
func (s *Set) Size() int {
	total := 0
	for _, w := range s.words {
		total += Popcount(w)
	}
	return total
}

// Copy overwrites s in place with the contents of other. Both must share the
// same width.
//
// Complexity: O(m).
func (s *Set) Copy(other *Set) {
	copy(s.words, other.words)
}

// Clone returns a newly allocated duplicate of s.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]Word, len(s.words)), n: s.n}
	copy(c.words, s.words)
	return c
}

// Equal reports whether s and other have identical words.
//
// Complexity: O(m).
func (s *Set) Equal(other *Set) bool {
	if len(s.words) != len(other.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// UnionInPlace sets s |= other.
func (s *Set) UnionInPlace(other *Set) {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
}

// IntersectInPlace sets s &= other.
func (s *Set) IntersectInPlace(other *Set) {
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// DifferenceInPlace sets s &^= other (removes other's members from s).
func (s *Set) DifferenceInPlace(other *Set) {
	for i := range s.words {
		s.words[i] &^= other.words[i]
	}
}

// XorInPlace sets s ^= other.
func (s *Set) XorInPlace(other *Set) {
	for i := range s.words {
		s.words[i] ^= other.words[i]
	}
}

// IntersectionSize returns |s ∩ other| without mutating either set.
//
// Complexity: O(m). Used on the equitable-refinement hot path, so it avoids
// allocating a scratch set.
func (s *Set) IntersectionSize(other *Set) int {
	total := 0
	for i := range s.words {
		total += Popcount(s.words[i] & other.words[i])
	}
	return total
}

// NextElement returns the smallest member strictly greater than pos, or -1
// if none exists. pos may be -1 to mean "from the start".
//
// Implementation contract (spec): mask the current word above pos and scan
// forward; the returned order is the numeric vertex order.
//
// Complexity: O(m) worst case, O(1) amortized for iterating a sparse set.
func (s *Set) NextElement(pos int) int {
	wordIdx := 0
	r := -1
	if pos >= 0 {
		wordIdx = pos >> 6
		r = pos & 63
	}
	if wordIdx >= len(s.words) {
		return -1
	}
	masked := s.words[wordIdx] & suffixAboveMask(r)
	if masked != 0 {
		return wordIdx*WordSize + FirstSetBit(masked)
	}
	for i := wordIdx + 1; i < len(s.words); i++ {
		if s.words[i] != 0 {
			return i*WordSize + FirstSetBit(s.words[i])
		}
	}
	return -1
}

// Elements returns every member of s in ascending order. Convenience for
// tests and non-hot-path callers; the hot path should iterate via
// NextElement directly to stay allocation-free.
func (s *Set) Elements() []int {
	out := make([]int, 0, s.Size())
	for v := s.NextElement(-1); v != -1; v = s.NextElement(v) {
		out = append(out, v)
	}
	return out
}
