package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of board squares, one bit per square.
// Bits 0-63 live in the first word and 64-99 in the second.
type SquareSet [2]uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	s[sq>>6] |= 1 << (sq & 63)
	return s
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	s[sq>>6] &^= 1 << (sq & 63)
	return s
}

// Has returns true if sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	if !sq.IsValid() {
		return false
	}
	return s[sq>>6]&(1<<(sq&63)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// IsEmpty returns true if the set has no squares.
func (s SquareSet) IsEmpty() bool {
	return s[0]|s[1] == 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return SquareSet{s[0] | o[0], s[1] | o[1]}
}

// Minus returns the squares in s that are not in o.
func (s SquareSet) Minus(o SquareSet) SquareSet {
	return SquareSet{s[0] &^ o[0], s[1] &^ o[1]}
}

// ForEach calls fn for every square in ascending order.
func (s SquareSet) ForEach(fn func(Square)) {
	for w := 0; w < 2; w++ {
		word := s[w]
		for word != 0 {
			fn(Square(w*64 + bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	s.ForEach(func(sq Square) {
		out = append(out, sq)
	})
	return out
}

// String lists the squares, e.g. "{a1 b3}".
func (s SquareSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.ForEach(func(sq Square) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(sq.String())
	})
	sb.WriteByte('}')
	return sb.String()
}
