// Package minwise implements 1-bit minwise hashing: the LSH scheme
// behind the Jaccard join. A document is a set of tokens; the sketch
// bit at index p is the low bit of the minimum of h_p over the set,
// which makes the expected normalized Hamming distance of two
// sketches an unbiased estimator of (1-J)/2 for Jaccard similarity J.
//
// The min-finding loop is the per-document hot path: for every token
// we fan its hash out across all H projections and keep a running
// minimum, mirroring how the retrieval kernel this was grounded on
// hashes a shingle once and then varies a cheap coefficient per
// permutation instead of re-hashing per permutation.
package minwise

import (
	"math"

	"github.com/daac-tools/find-simdoc/internal/hashfamily"
)

// Sketch computes the H = 64*c bit minwise sketch of a token set and
// returns it as c little-endian 64-bit words. An empty set yields the
// all-zero sketch, per the spec's definition of m_p = 0 for S = ∅.
func Sketch(tokens [][]byte, c int, fam *hashfamily.Family) []uint64 {
	h := 64 * c
	words := make([]uint64, c)
	if len(tokens) == 0 {
		return words
	}

	mins := make([]uint64, h)
	for p := range mins {
		mins[p] = math.MaxUint64
	}

	for _, tok := range tokens {
		th := fam.TokenHash(hashfamily.DomainMinwise, tok)
		for p := 0; p < h; p++ {
			if v := hashfamily.Project(th, p); v < mins[p] {
				mins[p] = v
			}
		}
	}

	for p := 0; p < h; p++ {
		if mins[p]&1 == 1 {
			words[p/64] |= 1 << uint(p%64)
		}
	}
	return words
}

// SketchSet is a convenience wrapper over Sketch for callers holding
// their token set as a map (the natural representation of a
// duplicate-free set of n-grams).
func SketchSet(tokens map[string]struct{}, c int, fam *hashfamily.Family) []uint64 {
	flat := make([][]byte, 0, len(tokens))
	for t := range tokens {
		flat = append(flat, []byte(t))
	}
	return Sketch(flat, c, fam)
}
