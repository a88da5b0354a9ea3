package token

import (
	"errors"
	"testing"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

func TestCharNGrams(t *testing.T) {
	set, err := CharNGrams("abcabc", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]struct{}{"abc": {}, "bca": {}, "cab": {}}
	if len(set) != len(want) {
		t.Fatalf("expected %d distinct 3-grams, got %d: %v", len(want), len(set), set)
	}
	for k := range want {
		if _, ok := set[k]; !ok {
			t.Fatalf("missing expected n-gram %q", k)
		}
	}
}

func TestCharNGramsRejectsBadWindow(t *testing.T) {
	if _, err := CharNGrams("abc", 0); !errors.Is(err, errs.ErrInputShape) {
		t.Fatalf("expected ErrInputShape, got %v", err)
	}
}

func TestWordNGrams(t *testing.T) {
	set, err := WordNGrams("the quick brown fox", 2, " ")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"the quick", "quick brown", "brown fox"}
	if len(set) != len(want) {
		t.Fatalf("expected %d bigrams, got %d: %v", len(want), len(set), set)
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Fatalf("missing expected bigram %q in %v", w, set)
		}
	}
}

func TestWordNGramsRequiresDelimiter(t *testing.T) {
	if _, err := WordNGrams("a b c", 2, ""); !errors.Is(err, errs.ErrInputShape) {
		t.Fatalf("expected ErrInputShape for empty delimiter, got %v", err)
	}
}

func TestWordNGramsShortDocYieldsEmptySet(t *testing.T) {
	set, err := WordNGrams("only", 2, " ")
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set for doc shorter than window, got %v", set)
	}
}
