package scan

import (
	"encoding/binary"
	"math/bits"
)

// Word-at-a-time byte search helpers, 8 lanes per step. Matching lanes get
// their high bit set. hasZero and hasByte are exact per lane; hasLess may
// also flag lanes after a real match (borrow corruption from lane
// subtraction), but its first marked lane is always a true match, so its
// callers take the lowest lane and re-verify anything beyond it.

const (
	wordSize = 8
	ones     = 0x0101010101010101
	highs    = 0x8080808080808080
)

// loadWord reads 8 little-endian bytes at src[i:].
func loadWord(src []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(src[i:])
}

// hasZero sets the high bit of every zero lane in x. Exact per lane: the
// low seven bits of each lane are added within the lane, so no carry or
// borrow crosses into a neighbour.
func hasZero(x uint64) uint64 {
	const lows = 0x7F7F7F7F7F7F7F7F
	return ^(((x & lows) + lows) | x) & highs
}

// hasByte sets the high bit of every lane of x equal to b. Exact per lane.
func hasByte(x uint64, b byte) uint64 {
	return hasZero(x ^ (ones * uint64(b)))
}

// hasLess marks lanes strictly below n. The lowest marked lane is exact;
// later lanes may be false positives. Valid for n <= 0x80.
func hasLess(x uint64, n byte) uint64 {
	return (x - ones*uint64(n)) &^ x & highs
}

// anyLess reports whether any lane of x is strictly below n. Exact as a
// boolean. Valid for n <= 0x80.
func anyLess(x uint64, n byte) bool {
	return hasLess(x, n) != 0
}

// anyMore reports whether any lane of x is strictly above n. Exact as a
// boolean. Valid for n <= 0x7F.
func anyMore(x uint64, n byte) bool {
	return ((x + ones*uint64(0x7F-n)) | x) & highs != 0
}

// firstLane returns the index (0..7) of the lowest marked lane.
// mask must be non-zero.
func firstLane(mask uint64) int {
	return bits.TrailingZeros64(mask) >> 3
}

// allDigits reports whether every lane of w is an ASCII digit.
func allDigits(w uint64) bool {
	return !anyLess(w, '0') && !anyMore(w, '9')
}

// wsMask marks whitespace lanes: 0x09..0x0D, 0x1C..0x1F, space, comma.
// The semicolon is deliberately excluded; a comment needs byte-level
// handling, so words containing one drop out of the vector loop.
func wsMask(w uint64) uint64 {
	m := hasByte(w, ' ') | hasByte(w, ',')
	m |= hasByte(w, 0x09) | hasByte(w, 0x0A) | hasByte(w, 0x0B)
	m |= hasByte(w, 0x0C) | hasByte(w, 0x0D)
	m |= hasByte(w, 0x1C) | hasByte(w, 0x1D) | hasByte(w, 0x1E) | hasByte(w, 0x1F)
	return m
}

// candidateStopMask marks lanes that might end an identifier token: every
// lane below 0x21 plus the structural bytes. A superset of the true
// delimiter set; callers confirm the hit against delimTable.
func candidateStopMask(w uint64) uint64 {
	m := hasLess(w, 0x21)
	m |= hasByte(w, '"')
	m |= hasByte(w, ',')
	m |= hasByte(w, ';')
	m |= hasByte(w, '(')
	m |= hasByte(w, ')')
	m |= hasByte(w, '[')
	m |= hasByte(w, ']')
	m |= hasByte(w, '{')
	m |= hasByte(w, '}')
	return m
}
