package types

import (
	"math"
	"testing"
)

func TestUVArithmetic(t *testing.T) {
	a := UV{U: 1, V: 2}
	b := UV{U: 3, V: 5}

	if got := a.Add(b); got != (UV{U: 4, V: 7}) {
		t.Fatalf("unexpected sum: %+v", got)
	}
	if got := b.Sub(a); got != (UV{U: 2, V: 3}) {
		t.Fatalf("unexpected difference: %+v", got)
	}
	if got := a.Scale(2); got != (UV{U: 2, V: 4}) {
		t.Fatalf("unexpected scale: %+v", got)
	}
}

func TestUVDistanceSq(t *testing.T) {
	a := UV{U: 0, V: 0}
	b := UV{U: 3, V: 4}
	if got := a.DistanceSq(b); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestUVLerp(t *testing.T) {
	a := UV{U: 0, V: 0}
	b := UV{U: 1, V: 2}
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.U-0.5) > 1e-15 || math.Abs(mid.V-1) > 1e-15 {
		t.Fatalf("unexpected midpoint: %+v", mid)
	}
}
