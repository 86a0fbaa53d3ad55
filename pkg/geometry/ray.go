package geometry

import "math"

// Ray represents a half-line from an origin along a direction.
// Direction is expected to be normalized by the caller.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectTriangle tests the ray against a triangle using the
// Möller–Trumbore algorithm. Returns the ray parameter of the hit.
// Backfaces are reported too, so painting works on either side of a
// panel regardless of winding.
func (r Ray) IntersectTriangle(tri Triangle) (float64, bool) {
	const epsilon = 1e-9

	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		// Ray is parallel to the triangle plane
		return 0, false
	}

	f := 1.0 / a
	s := r.Origin.Sub(tri.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t < epsilon {
		return 0, false
	}
	return t, true
}
