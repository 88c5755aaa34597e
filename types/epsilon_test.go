package types

import (
	"testing"

	"github.com/golang/geo/r3"
)

func TestEpsilonNormalization(t *testing.T) {
	e := NewEpsilon(-1e-6, -1e-3)
	if e.Abs < 0 || e.Rel < 0 {
		t.Fatalf("expected non-negative tolerances, got %+v", e)
	}
}

func TestEpsilonTolForPoints(t *testing.T) {
	e := NewEpsilon(1e-3, 1e-2)
	points := []r3.Vector{
		{X: 10, Y: -5, Z: 1},
		{X: -20, Y: 3, Z: -7},
	}

	got := e.TolForPoints(points...)
	want := e.Abs + e.Rel*20
	if got != want {
		t.Fatalf("expected tolerance %.6f, got %.6f", want, got)
	}
}

func TestEpsilonMergeDistance(t *testing.T) {
	e := DefaultEpsilon().WithAbs(1e-4).WithRel(1e-3)
	a := r3.Vector{X: 100, Y: 1, Z: 0}
	b := r3.Vector{X: 101, Y: 2, Z: 0}

	got := e.MergeDistance(a, b)
	want := e.Abs + e.Rel*101
	if got != want {
		t.Fatalf("expected merge distance %.6f, got %.6f", want, got)
	}
}
