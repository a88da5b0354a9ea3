package simhash

import (
	"testing"

	"github.com/daac-tools/find-simdoc/internal/hashfamily"
)

func TestWidthUniformity(t *testing.T) {
	fam := hashfamily.New(3)
	s := Sketch(map[string]float64{"a": 1, "b": 2}, 5, fam)
	if len(s) != 5 {
		t.Fatalf("expected 5 words, got %d", len(s))
	}
}

func TestEmptyMapIsZero(t *testing.T) {
	fam := hashfamily.New(3)
	s := Sketch(nil, 4, fam)
	for _, w := range s {
		if w != 0 {
			t.Fatalf("expected all-zero sketch for empty map, got %v", s)
		}
	}
}

func TestDeterministic(t *testing.T) {
	features := map[string]float64{"quick": 1.5, "brown": 0.8, "fox": 2.1}
	a := Sketch(features, 4, hashfamily.New(11))
	b := Sketch(features, 4, hashfamily.New(11))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must give identical sketches (P2): word %d differs", i)
		}
	}
}

func TestIdenticalWeightsGiveIdenticalSketch(t *testing.T) {
	fam := hashfamily.New(1)
	features := map[string]float64{"x": 1, "y": 1, "z": 1}
	a := Sketch(features, 4, fam)
	b := Sketch(features, 4, fam)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("identical feature maps must produce identical sketches")
		}
	}
}

func TestScalingWeightsPreservesSign(t *testing.T) {
	fam := hashfamily.New(5)
	base := map[string]float64{"alpha": 1, "beta": 2, "gamma": -1}
	scaled := map[string]float64{"alpha": 10, "beta": 20, "gamma": -10}
	a := Sketch(base, 6, fam)
	b := Sketch(scaled, 6, fam)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("uniformly scaling weights must not flip any sign bit")
		}
	}
}
