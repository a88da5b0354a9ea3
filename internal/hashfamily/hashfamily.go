// Package hashfamily derives the pseudo-random hash materials consumed
// by the two sketchers: per-token, per-index hash values for 1-bit
// minwise hashing, and per-token, per-index sign bits for SimHash.
//
// Everything is reproducible from a single 64-bit seed: a document
// token is hashed once per sketcher domain with xxhash, and the result
// is fanned out to H independent-looking 64-bit values with a cheap
// avalanche mixer keyed by the projection index. This mirrors the
// two-step shape of classic MinHash implementations (hash the shingle
// once, then vary a coefficient per permutation) without the
// correlation risk of reusing one hash under many weak seeds.
package hashfamily

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Domain separates the minwise and simhash hash spaces so that the two
// sketchers never observe the same derived values for a given token,
// even though both descend from the same seed.
type Domain byte

const (
	DomainMinwise Domain = 0
	DomainSimhash Domain = 1
)

// Family produces deterministic hash materials keyed by a 64-bit seed.
// It holds no per-document state and is safe for concurrent use.
type Family struct {
	seed uint64
}

// New returns a hash family derived from seed. The same seed always
// yields the same hash materials (P2).
func New(seed uint64) *Family {
	return &Family{seed: seed}
}

// Seed reports the seed the family was constructed with.
func (f *Family) Seed() uint64 { return f.seed }

// TokenHash hashes a token once for the given domain. Callers fan this
// value out across projection indices with Project, avoiding a full
// xxhash pass per (token, index) pair.
func (f *Family) TokenHash(domain Domain, token []byte) uint64 {
	var prefix [9]byte
	prefix[0] = byte(domain)
	binary.LittleEndian.PutUint64(prefix[1:], f.seed)

	d := xxhash.New()
	d.Write(prefix[:])
	d.Write(token)
	return d.Sum64()
}

// Project fans a token hash out to the p-th independent value in the
// family. This stands in for h_p(t) (minwise) or the mixing step that
// yields sign_p(t) (simhash): the high bit of Project's result supplies
// the SimHash sign, the low bit supplies the minwise bit.
//
// The mixer is a splitmix64 finalizer keyed by p; splitmix64's
// avalanche is well studied and cheap enough to call H times per
// token without dominating the sketch build.
func Project(tokenHash uint64, p int) uint64 {
	x := tokenHash + uint64(p)*0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// MinHash returns h_p(t): the p-th minwise hash value of token.
func (f *Family) MinHash(token []byte, p int) uint64 {
	return Project(f.TokenHash(DomainMinwise, token), p)
}

// SimSign returns sign_p(t) as +1 or -1, derived from the high bit of
// the p-th projection of token in the SimHash domain.
func (f *Family) SimSign(token []byte, p int) float64 {
	v := Project(f.TokenHash(DomainSimhash, token), p)
	if v>>63 == 1 {
		return 1
	}
	return -1
}
