package sketch

import (
	"errors"
	"testing"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

func TestSetAddAndAt(t *testing.T) {
	s, err := NewSet(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(10, []uint64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(11, []uint64{3, 4}); err != nil {
		t.Fatal(err)
	}

	if s.Len() != 2 {
		t.Fatalf("expected len 2, got %d", s.Len())
	}
	if got := s.At(0); got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected sketch at 0: %v", got)
	}
	if got := s.At(1); got[0] != 3 || got[1] != 4 {
		t.Fatalf("unexpected sketch at 1: %v", got)
	}
	if s.Width() != 128 {
		t.Fatalf("expected width 128, got %d", s.Width())
	}
}

func TestSetRejectsMismatchedWidth(t *testing.T) {
	s, err := NewSet(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add(0, []uint64{1}); !errors.Is(err, errs.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestNewSetRejectsOversizedRequest(t *testing.T) {
	_, err := NewSet(1, MaxWords+1)
	if !errors.Is(err, errs.ErrResourceExhaustion) {
		t.Fatalf("expected ErrResourceExhaustion, got %v", err)
	}
}

func TestPopcountXORSymmetric(t *testing.T) {
	a := []uint64{0xF0F0F0F0, 0x1}
	b := []uint64{0x0F0F0F0F, 0x3}
	if PopcountXOR(a, b) != PopcountXOR(b, a) {
		t.Fatal("popcount_xor must be symmetric (P3)")
	}
}

func TestPopcountXORIdentity(t *testing.T) {
	a := []uint64{0xDEADBEEF, 0x1234}
	if d := PopcountXOR(a, a); d != 0 {
		t.Fatalf("expected 0 distance for identical sketch, got %d", d)
	}
}

func TestCmpRotatedTotalOrder(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{1, 2, 4}
	if CmpRotated(a, b, 0) >= 0 {
		t.Fatal("expected a < b at rotation 0")
	}
	if CmpRotated(a, a, 1) != 0 {
		t.Fatal("expected equal sketches to compare equal at any rotation")
	}
}

func TestPrefixEqualWraps(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{1, 9, 3}
	// Starting at word 2, the first two chunks (index 2, then index 0
	// after wrapping) agree.
	if !PrefixEqual(a, b, 2, 2) {
		t.Fatal("expected prefix starting at 2 of length 2 to match")
	}
	// Starting at word 1 they disagree immediately.
	if PrefixEqual(a, b, 1, 1) {
		t.Fatal("expected prefix starting at 1 to mismatch")
	}
}

func TestPrefixEqualDegenerate(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{9, 9, 9}
	if !PrefixEqual(a, b, 0, 0) {
		t.Fatal("zero-length prefix must be trivially equal")
	}
}
