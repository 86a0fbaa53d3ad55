package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.Normal()
	expected := NewVector3(0, 0, 1)

	if normal.Distance(expected) > 1e-10 {
		t.Errorf("Normal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	centroid := tri.Centroid()
	expected := NewVector3(1, 1, 0)

	if centroid != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, centroid)
	}
}

func TestTriangleIsFinite(t *testing.T) {
	good := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if !good.IsFinite() {
		t.Error("finite triangle reported as non-finite")
	}

	bad := NewTriangle(NewVector3(math.NaN(), 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	if bad.IsFinite() {
		t.Error("NaN triangle reported as finite")
	}
}
