// Package sketch holds the packed bit-sketch storage and the
// primitives the joiner builds on: exact Hamming distance via
// XOR-then-popcount, chunk extraction, and the rotated lexicographic
// comparator used as the sort key for each rotation of the
// sketch-sorting join.
//
// A sketch of width H = 64*C bits is stored as C 64-bit words in
// little-endian bit order: bit k of word w is LSH output 64w+k. All
// sketches produced in one run share the same C, enforced by Set.
package sketch

import (
	"fmt"
	"math/bits"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

// MaxWords bounds n*C so a pathological request fails fast with
// ErrResourceExhaustion instead of attempting a multi-gigabyte
// allocation and letting the runtime OOM-kill the process.
const MaxWords = 1 << 32 // 32 GiB of sketch storage

// Set is the read-only array of sketches the joiner consumes: a single
// contiguous block of n*C words, sketch i occupying words
// [i*C, i*C+C). IDs records the original document id for each sketch
// position, since the joiner only ever deals in positions.
type Set struct {
	C     int
	Words []uint64
	IDs   []int
}

// NewSet allocates storage for n sketches of C words each. It returns
// ErrResourceExhaustion instead of allocating when n*C exceeds
// MaxWords, and ErrInputShape when C < 1.
func NewSet(n, c int) (*Set, error) {
	if c < 1 {
		return nil, fmt.Errorf("%w: chunk count must be >= 1, got %d", errs.ErrInputShape, c)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: document count must be >= 0, got %d", errs.ErrInputShape, n)
	}
	words := n * c
	if words > MaxWords {
		return nil, fmt.Errorf("%w: %d words requested, budget is %d", errs.ErrResourceExhaustion, words, MaxWords)
	}
	return &Set{
		C:     c,
		Words: make([]uint64, 0, words),
		IDs:   make([]int, 0, n),
	}, nil
}

// Width reports H, the bit width of every sketch in the set.
func (s *Set) Width() int { return 64 * s.C }

// Len reports the number of sketches currently held.
func (s *Set) Len() int { return len(s.IDs) }

// Add appends one document's sketch to the set. words must have
// length C (P1); mismatched widths are a programming error.
func (s *Set) Add(id int, words []uint64) error {
	if len(words) != s.C {
		return fmt.Errorf("%w: sketch has %d words, set width is %d words", errs.ErrInvariant, len(words), s.C)
	}
	s.Words = append(s.Words, words...)
	s.IDs = append(s.IDs, id)
	return nil
}

// At returns the word slice for the sketch at position i (not
// document id i — positions and ids coincide only absent
// de-duplication upstream). The returned slice aliases Set's backing
// array and must not be mutated.
func (s *Set) At(i int) []uint64 {
	return s.Words[i*s.C : (i+1)*s.C]
}

// PopcountXOR computes the exact Hamming distance between two equal
// length sketches: the population count of their XOR. This is the
// exact filter every candidate pair must pass (P3, P5).
func PopcountXOR(a, b []uint64) int {
	d := 0
	for i := range a {
		d += bits.OnesCount64(a[i] ^ b[i])
	}
	return d
}

// Chunk returns the b-th 64-bit word of a sketch.
func Chunk(s []uint64, b int) uint64 { return s[b] }

// CmpRotated lexicographically compares two sketches' word sequences
// starting at word start and wrapping modulo C. For each of the C
// possible values of start it is a total order, and it is used as the sort key for one
// pass of the sketch-sorting join.
func CmpRotated(a, b []uint64, start int) int {
	c := len(a)
	for k := 0; k < c; k++ {
		idx := start + k
		if idx >= c {
			idx -= c
		}
		if a[idx] != b[idx] {
			if a[idx] < b[idx] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// PrefixEqual reports whether a and b agree on the first l chunks of
// the rotation starting at start. l <= 0 is trivially true: it is the
// degenerate case where the agreement length has collapsed to nothing
// and every sketch belongs to a single block for this
// rotation.
func PrefixEqual(a, b []uint64, start, l int) bool {
	c := len(a)
	for k := 0; k < l; k++ {
		idx := start + k
		if idx >= c {
			idx -= c
		}
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}
