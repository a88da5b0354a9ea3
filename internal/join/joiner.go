// Package join implements the sketch-sorting joiner: the engine that
// enumerates every pair of sketches within a Hamming radius without
// materializing the O(n^2) distance matrix.
//
// The idea is pigeonhole on chunks. A sketch is C 64-bit words; a pair
// within the bit-level radius R = floor(H*r) differs in at most
// k = min(R, C) of those words, so its agreeing words fall into at most
// k cyclic runs and the longest of them is at least L = (C-k)/k words
// (L = C when k = 0). Sorting the sketch array C times, once per
// cyclic rotation of the chunk sequence, brings every close pair into
// one run (a "block") that shares the rotation's first L chunks in at
// least one of those sorts. Within a block, the block members are
// exhaustively paired and the exact popcount-XOR test against R
// decides which pairs are reported. When L < 1, every rotation is a
// single block and the sweep is an all-pairs scan.
package join

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daac-tools/find-simdoc/internal/errs"
	"github.com/daac-tools/find-simdoc/internal/sketch"
)

// Result is a qualifying pair, i < j, with the normalized Hamming
// distance that admitted it.
type Result struct {
	I, J int
	Dist float64
}

// Options configures a join. The zero value is a valid, sequential,
// unlogged join with seed 0.
type Options struct {
	// Seed is accepted for interface symmetry with the sketchers and
	// is not needed by the default rotation family, which requires no
	// randomness. A caller supplying an alternate, randomized rotation family would
	// thread it through here.
	Seed uint64
	// Parallel runs the C rotations concurrently across goroutines.
	// This is the optional extension from the design: the algorithm
	// does not require it, and turning it on must not change the
	// observable output, only the wall-clock time and the order in
	// which candidates are discovered before deduplication.
	Parallel bool
	// Logger receives the degenerate-radius warning, if any. Nil is
	// valid and silences it.
	Logger *zap.Logger
}

// Join returns every pair (i, j), i < j, of sketch positions in set
// with PopcountXOR(set.At(i), set.At(j)) <= floor(H*r), each reported
// at most once, in ascending (i, j) order.
//
// Positions, not document ids, are what Join reports: callers map back
// to document ids via set.IDs if they differ.
func Join(set *sketch.Set, r float64, opts Options) ([]Result, error) {
	if r < 0 || r > 1 {
		return nil, fmt.Errorf("%w: radius must be in [0,1], got %v", errs.ErrInputShape, r)
	}
	if set.C < 1 {
		return nil, fmt.Errorf("%w: chunk count must be >= 1, got %d", errs.ErrInputShape, set.C)
	}
	n := set.Len()
	if n == 0 {
		return nil, nil
	}

	c := set.C
	h := set.Width()
	radius := int(math.Floor(float64(h) * r))

	// A qualifying pair differs in at most k = min(radius, c) chunks,
	// which split its agreeing chunks into at most k cyclic runs; the
	// longest of those runs is at least (c-k)/k chunks, so that is the
	// agreement length the block sweep can rely on in some rotation.
	k := radius
	if k > c {
		k = c
	}
	l := c
	if k > 0 {
		l = (c - k) / k
	}

	if l < 1 && opts.Logger != nil {
		opts.Logger.Warn("degenerate radius: agreement length collapsed, each rotation degrades to an all-pairs scan",
			zap.Int("chunks", c),
			zap.Int("agreement_length", l),
			zap.Int("hamming_radius", radius),
			zap.Float64("requested_radius", r),
		)
	}

	e := newEmitter(h)

	if !opts.Parallel {
		for start := 0; start < c; start++ {
			runRotation(set, start, l, radius, e)
		}
	} else {
		var g errgroup.Group
		for start := 0; start < c; start++ {
			start := start
			g.Go(func() error {
				runRotation(set, start, l, radius, e)
				return nil
			})
		}
		// runRotation never returns an error; Wait only synchronizes.
		_ = g.Wait()
	}

	return e.sorted(), nil
}

// runRotation performs one of the C sorts and the subsequent block
// sweep, reporting every candidate pair that passes the exact Hamming
// test to e.
func runRotation(set *sketch.Set, start, l, radius int, e *emitter) {
	n := set.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return sketch.CmpRotated(set.At(idx[a]), set.At(idx[b]), start) < 0
	})

	// Sweep state machine: Idle / InBlock(prefix, first_index).
	// blockStart marks the first index of the current run; a
	// prefix-mismatch (or end of sequence) closes the block.
	blockStart := 0
	for i := 1; i <= n; i++ {
		inSameBlock := i < n && sketch.PrefixEqual(set.At(idx[i]), set.At(idx[blockStart]), start, l)
		if inSameBlock {
			continue
		}
		if i-blockStart > 1 {
			emitBlock(set, idx[blockStart:i], radius, e)
		}
		blockStart = i
	}
}

// emitBlock exhaustively pairs every two members of a block and
// applies the exact Hamming test. Pair generation order within the
// block is unspecified; the emitter absorbs duplicates.
func emitBlock(set *sketch.Set, block []int, radius int, e *emitter) {
	for a := 0; a < len(block); a++ {
		for b := a + 1; b < len(block); b++ {
			u, v := block[a], block[b]
			d := sketch.PopcountXOR(set.At(u), set.At(v))
			if d <= radius {
				e.emit(u, v, d)
			}
		}
	}
}
