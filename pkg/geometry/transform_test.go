package geometry

import (
	"math"
	"testing"
)

func TestTransformIdentity(t *testing.T) {
	tr := IdentityTransform()
	p := NewVector3(1, 2, 3)

	if got := tr.Apply(p); got.Distance(p) > 1e-12 {
		t.Errorf("identity Apply changed the point: %v", got)
	}
	if got := tr.ApplyInverse(p); got.Distance(p) > 1e-12 {
		t.Errorf("identity ApplyInverse changed the point: %v", got)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{
		Translation: NewVector3(10, -4, 2.5),
		Rotation:    NewVector3(0.3, 1.1, -0.7),
		Scale:       2.0,
	}

	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 2, 3),
		NewVector3(-5, 0.5, 7),
	}
	for _, p := range points {
		back := tr.ApplyInverse(tr.Apply(p))
		if back.Distance(p) > 1e-9 {
			t.Errorf("round trip failed for %v: got %v", p, back)
		}
	}
}

func TestTransformScale(t *testing.T) {
	tr := Transform{Scale: 3.0}
	p := tr.Apply(NewVector3(1, 1, 1))
	expected := NewVector3(3, 3, 3)
	if p.Distance(expected) > 1e-12 {
		t.Errorf("scale failed: expected %v, got %v", expected, p)
	}
}

func TestTransformZeroScaleTreatedAsIdentityScale(t *testing.T) {
	// A zero-valued Transform must not collapse geometry to the origin
	var tr Transform
	p := NewVector3(4, 5, 6)
	if got := tr.Apply(p); got.Distance(p) > 1e-12 {
		t.Errorf("zero scale should behave as 1.0: got %v", got)
	}
}

func TestTransformRotationY(t *testing.T) {
	tr := Transform{Rotation: NewVector3(0, math.Pi/2, 0), Scale: 1}
	p := tr.Apply(NewVector3(1, 0, 0))
	expected := NewVector3(0, 0, -1)
	if p.Distance(expected) > 1e-9 {
		t.Errorf("Y rotation failed: expected %v, got %v", expected, p)
	}
}
