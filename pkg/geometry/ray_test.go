package geometry

import (
	"math"
	"testing"
)

func TestRayIntersectTriangleHit(t *testing.T) {
	tri := NewTriangle(
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)
	ray := NewRay(NewVector3(0, 0, 5), NewVector3(0, 0, -1))

	dist, ok := ray.IntersectTriangle(tri)
	if !ok {
		t.Fatal("expected hit, got miss")
	}
	if math.Abs(dist-5.0) > 1e-10 {
		t.Errorf("hit distance: expected 5.0, got %v", dist)
	}
}

func TestRayIntersectTriangleMiss(t *testing.T) {
	tri := NewTriangle(
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)
	ray := NewRay(NewVector3(5, 5, 5), NewVector3(0, 0, -1))

	if _, ok := ray.IntersectTriangle(tri); ok {
		t.Error("expected miss, got hit")
	}
}

func TestRayIntersectTriangleBackface(t *testing.T) {
	tri := NewTriangle(
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)
	// Approach from behind the triangle plane
	ray := NewRay(NewVector3(0, 0, -5), NewVector3(0, 0, 1))

	if _, ok := ray.IntersectTriangle(tri); !ok {
		t.Error("expected backface hit")
	}
}

func TestRayIntersectTriangleParallel(t *testing.T) {
	tri := NewTriangle(
		NewVector3(-1, -1, 0),
		NewVector3(1, -1, 0),
		NewVector3(0, 1, 0),
	)
	ray := NewRay(NewVector3(0, 0, 1), NewVector3(1, 0, 0))

	if _, ok := ray.IntersectTriangle(tri); ok {
		t.Error("parallel ray should not hit")
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 2, 3), NewVector3(0, 1, 0))
	p := ray.At(4)
	expected := NewVector3(1, 6, 3)
	if p.Distance(expected) > 1e-10 {
		t.Errorf("At failed: expected %v, got %v", expected, p)
	}
}
