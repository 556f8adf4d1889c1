package geom

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	if got := a.Add(b); got != New(4, 1) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != New(-2, 3) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v want 1", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross: got %v want -7", got)
	}
}

func TestVectorNormalizedZero(t *testing.T) {
	if got := Zero.Normalized(); got != Zero {
		t.Errorf("Normalized of zero vector should be zero, got %v", got)
	}
}

func TestPerpendiculars(t *testing.T) {
	v := New(1, 0)
	if got := v.PerpCW(); !got.ApproxEqual(New(0, -1), 1e-9) {
		t.Errorf("PerpCW: got %v", got)
	}
	if got := v.PerpCCW(); !got.ApproxEqual(New(0, 1), 1e-9) {
		t.Errorf("PerpCCW: got %v", got)
	}
}

func TestAngleToRange(t *testing.T) {
	a := New(1, 0)
	b := New(-1, 0)
	got := a.AngleTo(b)
	if got != math.Pi {
		t.Errorf("AngleTo opposite vector: got %v want pi", got)
	}
	if got := a.AngleTo(a); got != 0 {
		t.Errorf("AngleTo self: got %v want 0", got)
	}
}

func TestLess(t *testing.T) {
	if !New(1, 5).Less(New(2, 0)) {
		t.Error("expected (1,5) < (2,0)")
	}
	if !New(1, 0).Less(New(1, 5)) {
		t.Error("expected (1,0) < (1,5)")
	}
}

func TestRotatedAbout(t *testing.T) {
	p := New(1, 0)
	got := p.RotatedAbout(Zero, math.Pi/2)
	if !got.ApproxEqual(New(0, 1), 1e-9) {
		t.Errorf("RotatedAbout: got %v", got)
	}
}
