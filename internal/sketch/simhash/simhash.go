// Package simhash implements the simplified SimHash scheme behind the
// Cosine join: a document is a weighted token map; the sketch bit at
// index p is the sign of a weighted sum of +-1 random projections, one
// per token. The expected normalized Hamming distance of two sketches
// is an unbiased estimator of theta/pi, where theta is the angle
// between the two weighted vectors.
package simhash

import "github.com/daac-tools/find-simdoc/internal/hashfamily"

// Sketch computes the H = 64*c bit SimHash sketch of a weighted
// feature map and returns it as c little-endian 64-bit words. Ties
// (accumulator exactly zero, including the all-weights-zero or
// empty-map case) break to bit 0.
func Sketch(features map[string]float64, c int, fam *hashfamily.Family) []uint64 {
	h := 64 * c
	words := make([]uint64, c)
	if len(features) == 0 {
		return words
	}

	acc := make([]float64, h)
	for tok, w := range features {
		th := fam.TokenHash(hashfamily.DomainSimhash, []byte(tok))
		for p := 0; p < h; p++ {
			if hashfamily.Project(th, p)>>63 == 1 {
				acc[p] += w
			} else {
				acc[p] -= w
			}
		}
	}

	for p := 0; p < h; p++ {
		if acc[p] > 0 {
			words[p/64] |= 1 << uint(p%64)
		}
	}
	return words
}
