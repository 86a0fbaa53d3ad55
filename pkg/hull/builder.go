package hull

import (
	"errors"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

// ErrInvalidGeometry signals that generation produced no usable
// geometry (no faces, or a non-finite coordinate). Callers receive a
// placeholder surface alongside it and may still render that.
var ErrInvalidGeometry = errors.New("hull geometry invalid, placeholder substituted")

const (
	// keelDrop is how far below the lowest waterline the keel spine
	// sits, in table units.
	keelDrop = 0.05

	// chineInsetRatio is the fraction of the local half-breadth at
	// which chine inset vertices are placed.
	chineInsetRatio = 0.8
)

// Side distinguishes the two halves of the hull.
type Side int

const (
	SideStarboard Side = iota
	SidePort
)

// VertexKey addresses a generated hull-body vertex by station index,
// global waterline index and side.
type VertexKey struct {
	Station   int
	Waterline int
	Side      Side
}

type chineKey struct {
	Station int
	Side    Side
}

// BodyMesh is the generated hull body plus the lookups face
// generation and later passes need.
type BodyMesh struct {
	Surface *Surface
	Lookup  map[VertexKey]uint32
	Keel    map[int]uint32 // station index -> keel spine vertex
	chine   map[chineKey]uint32
}

// Placeholder returns the minimal, clearly-invalid surface substituted
// when generation fails wholesale: a single magenta triangle.
func Placeholder() *Surface {
	s := NewSurface("invalid")
	s.addVertex(geometry.NewVector3(0, 0, 0))
	s.addVertex(geometry.NewVector3(1, 0, 0))
	s.addVertex(geometry.NewVector3(0, 1, 0))
	s.addTriangle(0, 1, 2)
	magenta := Color{R: 255, G: 0, B: 255, A: 255}
	s.Colors = []Color{magenta, magenta, magenta}
	return s
}

// BuildBody generates the hull body surface from an offset table.
// Stations are walked ascending by position and waterlines ascending
// by height; panels with missing corners are skipped silently so
// sparse input degrades instead of failing. A wholly invalid result
// (zero faces or any non-finite coordinate) yields a placeholder
// surface and ErrInvalidGeometry.
func BuildBody(t *offsets.Table) (*BodyMesh, error) {
	scale := t.Units.Scale()
	heights := t.WaterlineHeights()

	body := &BodyMesh{
		Surface: NewSurface("hull"),
		Lookup:  make(map[VertexKey]uint32),
		Keel:    make(map[int]uint32),
		chine:   make(map[chineKey]uint32),
	}

	body.emitVertices(t, heights, scale)
	body.emitFaces(t, heights)

	if body.Surface.IsEmpty() || !body.Surface.hasFiniteVertices() {
		return &BodyMesh{
			Surface: Placeholder(),
			Lookup:  map[VertexKey]uint32{},
			Keel:    map[int]uint32{},
			chine:   map[chineKey]uint32{},
		}, ErrInvalidGeometry
	}
	return body, nil
}

func (b *BodyMesh) emitVertices(t *offsets.Table, heights []float64, scale float64) {
	for i, st := range t.Stations {
		x := st.Position * scale

		for j, h := range heights {
			sample, ok := st.SampleAt(h, offsets.HeightTolerance)
			if !ok {
				continue
			}
			y := h * scale

			stbd := geometry.NewVector3(x, y, -sample.StarboardBreadth()*scale)
			port := geometry.NewVector3(x, y, sample.Port*scale)
			b.Lookup[VertexKey{i, j, SideStarboard}] = b.Surface.addVertex(stbd)
			b.Lookup[VertexKey{i, j, SidePort}] = b.Surface.addVertex(port)
		}

		lowest, ok := lowestSample(st)
		if !ok {
			continue
		}

		if t.HasKeel {
			keel := geometry.NewVector3(x, (lowest.Height-keelDrop)*scale, 0)
			b.Keel[i] = b.Surface.addVertex(keel)
		}
		if t.HasChine {
			y := lowest.Height * scale
			inset := func(breadth float64, sign float64) uint32 {
				return b.Surface.addVertex(geometry.NewVector3(x, y, sign*breadth*chineInsetRatio*scale))
			}
			b.chine[chineKey{i, SideStarboard}] = inset(lowest.StarboardBreadth(), -1)
			b.chine[chineKey{i, SidePort}] = inset(lowest.Port, 1)
		}
	}
}

func (b *BodyMesh) emitFaces(t *offsets.Table, heights []float64) {
	for i := 0; i < len(t.Stations)-1; i++ {
		for j := 0; j < len(heights)-1; j++ {
			bottomRow := j == 0

			for _, side := range []Side{SideStarboard, SidePort} {
				if bottomRow && t.HasChine {
					b.emitChinePanel(i, j, side)
				} else {
					b.emitPanel(i, j, side)
				}
				if bottomRow && t.HasKeel {
					b.emitKeelConnection(i, j, side)
				}
			}
		}
	}
}

// emitPanel triangulates one quad panel side: two triangles, with
// opposite winding per side so both halves face outward.
func (b *BodyMesh) emitPanel(i, j int, side Side) {
	ll, ok1 := b.Lookup[VertexKey{i, j, side}]
	lr, ok2 := b.Lookup[VertexKey{i + 1, j, side}]
	ul, ok3 := b.Lookup[VertexKey{i, j + 1, side}]
	ur, ok4 := b.Lookup[VertexKey{i + 1, j + 1, side}]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	b.addQuad(ll, lr, ul, ur, side == SideStarboard)
}

// emitChinePanel replaces a bottom-row panel with the eight-triangle
// inset transition through the chine vertices.
func (b *BodyMesh) emitChinePanel(i, j int, side Side) {
	ll, ok1 := b.Lookup[VertexKey{i, j, side}]
	lr, ok2 := b.Lookup[VertexKey{i + 1, j, side}]
	ul, ok3 := b.Lookup[VertexKey{i, j + 1, side}]
	ur, ok4 := b.Lookup[VertexKey{i + 1, j + 1, side}]
	cl, ok5 := b.chine[chineKey{i, side}]
	cr, ok6 := b.chine[chineKey{i + 1, side}]
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return
	}
	// Upper strip down to the chine line, then chine line out to the
	// full-breadth bottom edge.
	b.addQuad(cl, cr, ul, ur, side == SideStarboard)
	b.addQuad(ll, lr, cl, cr, side == SideStarboard)
}

// emitKeelConnection joins the bottom row of a panel to the keel spine
// vertices of its two stations.
func (b *BodyMesh) emitKeelConnection(i, j int, side Side) {
	ll, ok1 := b.Lookup[VertexKey{i, j, side}]
	lr, ok2 := b.Lookup[VertexKey{i + 1, j, side}]
	ki, ok3 := b.Keel[i]
	kn, ok4 := b.Keel[i+1]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	if side == SideStarboard {
		b.Surface.addTriangle(ll, ki, lr)
		b.Surface.addTriangle(lr, ki, kn)
	} else {
		b.Surface.addTriangle(ll, lr, ki)
		b.Surface.addTriangle(lr, kn, ki)
	}
}

func (b *BodyMesh) addQuad(ll, lr, ul, ur uint32, flip bool) {
	if flip {
		b.Surface.addTriangle(ll, ul, lr)
		b.Surface.addTriangle(lr, ul, ur)
	} else {
		b.Surface.addTriangle(ll, lr, ul)
		b.Surface.addTriangle(lr, ur, ul)
	}
}

func lowestSample(st offsets.Station) (offsets.Sample, bool) {
	if len(st.Samples) == 0 {
		return offsets.Sample{}, false
	}
	lowest := st.Samples[0]
	for _, s := range st.Samples[1:] {
		if s.Height < lowest.Height {
			lowest = s
		}
	}
	return lowest, true
}
