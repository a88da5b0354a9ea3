package minwise

import (
	"testing"

	"github.com/daac-tools/find-simdoc/internal/hashfamily"
)

func tokensOf(s string) [][]byte {
	var out [][]byte
	for _, w := range s {
		out = append(out, []byte(string(w)))
	}
	return out
}

func TestWidthUniformity(t *testing.T) {
	fam := hashfamily.New(42)
	s := Sketch(tokensOf("abcdef"), 4, fam)
	if len(s) != 4 {
		t.Fatalf("expected 4 words, got %d", len(s))
	}
}

func TestEmptySetIsZero(t *testing.T) {
	fam := hashfamily.New(42)
	s := Sketch(nil, 4, fam)
	for _, w := range s {
		if w != 0 {
			t.Fatalf("expected all-zero sketch for empty set, got %v", s)
		}
	}
}

func TestDeterministic(t *testing.T) {
	fam1 := hashfamily.New(7)
	fam2 := hashfamily.New(7)
	toks := tokensOf("the quick brown fox")
	a := Sketch(toks, 4, fam1)
	b := Sketch(toks, 4, fam2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed must give identical sketches (P2): word %d differs", i)
		}
	}
}

func TestIdenticalSetsGiveIdenticalSketch(t *testing.T) {
	fam := hashfamily.New(1)
	a := Sketch(tokensOf("abcabc"), 4, fam)
	b := Sketch(tokensOf("abcabc"), 4, fam)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("identical inputs must give identical sketch: word %d differs", i)
		}
	}
}

func TestDisjointSetsDiffer(t *testing.T) {
	fam := hashfamily.New(1)
	a := Sketch(tokensOf("aaaaaaaa"), 64, fam)
	b := Sketch(tokensOf("zzzzzzzz"), 64, fam)

	allEqual := true
	for i := range a {
		if a[i] != b[i] {
			allEqual = false
			break
		}
	}
	if allEqual {
		t.Fatal("expected disjoint token sets to produce different sketches")
	}
}
