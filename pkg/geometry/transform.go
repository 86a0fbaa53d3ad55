package geometry

import "math"

// Transform places a local coordinate space in the world: uniform
// scale, then rotation (X, Y, Z order, radians), then translation.
type Transform struct {
	Translation Vector3
	Rotation    Vector3
	Scale       float64
}

// IdentityTransform returns a transform that maps local space onto
// world space unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: 1.0}
}

// Apply maps a local-space point into world space
func (tr Transform) Apply(p Vector3) Vector3 {
	s := tr.Scale
	if s == 0 {
		s = 1.0
	}
	p = p.Mul(s)
	p = rotateX(p, tr.Rotation.X)
	p = rotateY(p, tr.Rotation.Y)
	p = rotateZ(p, tr.Rotation.Z)
	return p.Add(tr.Translation)
}

// ApplyInverse maps a world-space point into local space
func (tr Transform) ApplyInverse(p Vector3) Vector3 {
	s := tr.Scale
	if s == 0 {
		s = 1.0
	}
	p = p.Sub(tr.Translation)
	p = rotateZ(p, -tr.Rotation.Z)
	p = rotateY(p, -tr.Rotation.Y)
	p = rotateX(p, -tr.Rotation.X)
	return p.Mul(1.0 / s)
}

// RotateVector applies only the rotation part, for directions
func (tr Transform) RotateVector(v Vector3) Vector3 {
	v = rotateX(v, tr.Rotation.X)
	v = rotateY(v, tr.Rotation.Y)
	return rotateZ(v, tr.Rotation.Z)
}

// RotateVectorInverse applies only the inverse rotation, for directions
func (tr Transform) RotateVectorInverse(v Vector3) Vector3 {
	v = rotateZ(v, -tr.Rotation.Z)
	v = rotateY(v, -tr.Rotation.Y)
	return rotateX(v, -tr.Rotation.X)
}

func rotateX(v Vector3, angle float64) Vector3 {
	if angle == 0 {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Vector3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
}

func rotateY(v Vector3, angle float64) Vector3 {
	if angle == 0 {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Vector3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
}

func rotateZ(v Vector3, angle float64) Vector3 {
	if angle == 0 {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return Vector3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}
