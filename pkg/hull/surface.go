// Package hull converts ship offset tables into renderable
// triangulated surfaces: the hull body, the bow/stern/deck caps,
// face-to-region classification and per-vertex coloring.
package hull

import (
	"sync/atomic"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
)

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

var surfaceIDs atomic.Uint32

// Surface is one independently generated triangle mesh. Vertices are
// in the surface's local space; Transform places it in the world. The
// ID is unique across all live surfaces, so (ID, triangle index) is a
// usable composite face identity.
type Surface struct {
	ID        uint32
	Name      string
	Vertices  []geometry.Vector3
	Indices   []uint32 // 3 per triangle
	Colors    []Color  // per vertex, parallel to Vertices
	Transform geometry.Transform
}

// NewSurface creates an empty surface with a fresh unique ID.
func NewSurface(name string) *Surface {
	return &Surface{
		ID:        surfaceIDs.Add(1),
		Name:      name,
		Transform: geometry.IdentityTransform(),
	}
}

// TriangleCount returns the number of triangles in the surface
func (s *Surface) TriangleCount() int {
	return len(s.Indices) / 3
}

// IsEmpty reports whether the surface has no triangles
func (s *Surface) IsEmpty() bool {
	return len(s.Indices) == 0
}

// Triangle returns triangle i in local space
func (s *Surface) Triangle(i int) geometry.Triangle {
	return geometry.NewTriangle(
		s.Vertices[s.Indices[i*3]],
		s.Vertices[s.Indices[i*3+1]],
		s.Vertices[s.Indices[i*3+2]],
	)
}

// Centroid returns the local-space centroid of triangle i
func (s *Surface) Centroid(i int) geometry.Vector3 {
	return s.Triangle(i).Centroid()
}

// WorldCentroid returns the world-space centroid of triangle i
func (s *Surface) WorldCentroid(i int) geometry.Vector3 {
	return s.Transform.Apply(s.Centroid(i))
}

// WorldTriangle returns triangle i mapped into world space
func (s *Surface) WorldTriangle(i int) geometry.Triangle {
	t := s.Triangle(i)
	return geometry.NewTriangle(
		s.Transform.Apply(t.V1),
		s.Transform.Apply(t.V2),
		s.Transform.Apply(t.V3),
	)
}

// Raycast tests a world-space ray against every triangle of the
// surface and returns the nearest hit point in world space along with
// its distance from the ray origin.
func (s *Surface) Raycast(ray geometry.Ray) (geometry.Vector3, float64, bool) {
	local := geometry.Ray{
		Origin:    s.Transform.ApplyInverse(ray.Origin),
		Direction: s.Transform.RotateVectorInverse(ray.Direction),
	}

	best := -1.0
	for i := 0; i < s.TriangleCount(); i++ {
		if t, ok := local.IntersectTriangle(s.Triangle(i)); ok {
			if best < 0 || t < best {
				best = t
			}
		}
	}
	if best < 0 {
		return geometry.Vector3{}, 0, false
	}

	world := s.Transform.Apply(local.At(best))
	return world, world.Distance(ray.Origin), true
}

// hasFiniteVertices reports whether every vertex coordinate is finite
func (s *Surface) hasFiniteVertices() bool {
	for _, v := range s.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}

func (s *Surface) addVertex(v geometry.Vector3) uint32 {
	s.Vertices = append(s.Vertices, v)
	return uint32(len(s.Vertices) - 1)
}

func (s *Surface) addTriangle(a, b, c uint32) {
	s.Indices = append(s.Indices, a, b, c)
}
