package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal computes the unit normal vector for the triangle
func (t Triangle) Normal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Centroid returns the centroid of the triangle
func (t Triangle) Centroid() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// IsFinite reports whether all three vertices have finite coordinates
func (t Triangle) IsFinite() bool {
	return t.V1.IsFinite() && t.V2.IsFinite() && t.V3.IsFinite()
}
