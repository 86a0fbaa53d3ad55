// Package paint implements the brush-based face selection engine:
// ray casts against candidate surfaces, brush-radius selection in the
// struck surface's local space, continuous-stroke interpolation and
// add/remove bookkeeping across multiple surfaces.
package paint

import (
	"math"
	"sort"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
)

// strokeStepRatio controls how densely a drag path is interpolated:
// one step per brushRadius*strokeStepRatio of stroke distance.
const strokeStepRatio = 0.3

// FaceRef identifies a face across all live surfaces. Local triangle
// indices repeat between surfaces, so identity is the composite of the
// owning surface's unique ID and the index.
type FaceRef struct {
	Surface uint32
	Index   int
}

// Entry is one selected face with the geometry cached at selection
// time, so highlights render without re-querying the mesh.
type Entry struct {
	Ref           FaceRef
	Surface       *hull.Surface
	LocalCentroid geometry.Vector3
	WorldCentroid geometry.Vector3
	Tag           string
}

// Summary describes the current (uncommitted) selection.
type Summary struct {
	Count  int
	ByTag  map[string]int
	Weight float64 // implied weight at the current weight-per-face
}

// Painter is the selection engine state machine: Idle or Painting,
// gated by an external weight-edit mode flag. Remove mode is
// orthogonal and only changes the effect of a stroke.
type Painter struct {
	Radius        float64
	WeightPerFace float64

	// Visible filters ray-cast candidates. Nil means every candidate
	// surface is visible.
	Visible func(*hull.Surface) bool

	// Tag classifies a face for the selection summary. Nil falls back
	// to the owning surface's name.
	Tag func(*hull.Surface, int) string

	editMode bool
	painting bool
	removing bool

	lastPoint  *geometry.Vector3
	brushPoint *geometry.Vector3
	selection  map[FaceRef]Entry
}

// NewPainter creates an idle painter.
func NewPainter(radius, weightPerFace float64) *Painter {
	return &Painter{
		Radius:        radius,
		WeightPerFace: weightPerFace,
		selection:     make(map[FaceRef]Entry),
	}
}

// SetEditMode toggles the external weight-edit mode flag. Turning it
// off forces Idle and clears the current selection.
func (p *Painter) SetEditMode(on bool) {
	p.editMode = on
	if !on {
		p.StopPainting()
		p.Clear()
	}
}

// EditMode reports whether weight-edit mode is active
func (p *Painter) EditMode() bool { return p.editMode }

// SetRemoveMode switches between adding to and erasing from the
// selection. It does not change the state machine.
func (p *Painter) SetRemoveMode(on bool) { p.removing = on }

// RemoveMode reports whether strokes erase instead of add
func (p *Painter) RemoveMode() bool { return p.removing }

// StartPainting transitions Idle -> Painting. It has no effect and
// reports false while weight-edit mode is off.
func (p *Painter) StartPainting() bool {
	if !p.editMode {
		return false
	}
	p.painting = true
	p.lastPoint = nil
	return true
}

// StopPainting transitions back to Idle and ends the current stroke.
func (p *Painter) StopPainting() {
	p.painting = false
	p.lastPoint = nil
}

// Painting reports whether a stroke is in progress
func (p *Painter) Painting() bool { return p.painting }

// BrushPoint returns the brush preview position, if one is shown.
func (p *Painter) BrushPoint() (geometry.Vector3, bool) {
	if p.brushPoint == nil {
		return geometry.Vector3{}, false
	}
	return *p.brushPoint, true
}

// PaintAt casts the pointer ray against the visible candidate surfaces
// and paints around the nearest hit. With a previous point in the
// stroke, intermediate points along the drag path are selected first,
// each resolved to a surface by re-casting along the stroke direction.
// A miss hides the brush preview and resets the stroke, so the next
// hit starts fresh instead of interpolating across the gap. Reports
// whether anything was struck.
func (p *Painter) PaintAt(ray geometry.Ray, surfaces []*hull.Surface) bool {
	if !p.editMode || !p.painting {
		return false
	}

	point, surface, ok := p.castNearest(ray, surfaces)
	if !ok {
		p.brushPoint = nil
		p.lastPoint = nil
		return false
	}

	if p.lastPoint != nil {
		p.interpolateStroke(*p.lastPoint, point, surfaces)
	}
	p.selectAround(point, surface)

	shown := point
	p.brushPoint = &shown
	remembered := point
	p.lastPoint = &remembered
	return true
}

// castNearest returns the nearest world-space hit over the candidate
// surfaces that pass the visibility filter.
func (p *Painter) castNearest(ray geometry.Ray, surfaces []*hull.Surface) (geometry.Vector3, *hull.Surface, bool) {
	var (
		bestPoint   geometry.Vector3
		bestSurface *hull.Surface
		bestDist    = math.Inf(1)
	)
	for _, s := range surfaces {
		if s == nil || s.IsEmpty() {
			continue
		}
		if p.Visible != nil && !p.Visible(s) {
			continue
		}
		if point, dist, ok := s.Raycast(ray); ok && dist < bestDist {
			bestPoint, bestSurface, bestDist = point, s, dist
		}
	}
	return bestPoint, bestSurface, bestSurface != nil
}

// interpolateStroke selects faces at intermediate points between two
// consecutive pointer hits, so fast drags leave no gaps.
func (p *Painter) interpolateStroke(from, to geometry.Vector3, surfaces []*hull.Surface) {
	dist := from.Distance(to)
	if p.Radius <= 0 {
		return
	}
	steps := int(math.Ceil(dist / (p.Radius * strokeStepRatio)))
	if steps < 2 {
		return
	}

	dir := to.Sub(from).Normalize()
	for k := 1; k < steps; k++ {
		t := float64(k) / float64(steps)
		mid := from.Lerp(to, t)

		// Re-cast along the stroke direction to land the point back on
		// a surface; fall back to the opposite direction on a miss.
		forward := geometry.Ray{Origin: mid.Sub(dir.Mul(p.Radius)), Direction: dir}
		point, surface, ok := p.castNearest(forward, surfaces)
		if !ok {
			backward := geometry.Ray{Origin: mid.Add(dir.Mul(p.Radius)), Direction: dir.Mul(-1)}
			point, surface, ok = p.castNearest(backward, surfaces)
		}
		if ok {
			p.selectAround(point, surface)
		}
	}
}

// selectAround inserts (or, in remove mode, erases) every face of the
// surface whose local centroid lies within the brush radius of the hit
// point. The test runs in the surface's local space, so the brush is
// stable under surface transforms.
func (p *Painter) selectAround(point geometry.Vector3, s *hull.Surface) {
	local := s.Transform.ApplyInverse(point)

	for i := 0; i < s.TriangleCount(); i++ {
		centroid := s.Centroid(i)
		if centroid.Distance(local) > p.Radius {
			continue
		}
		ref := FaceRef{Surface: s.ID, Index: i}
		if p.removing {
			delete(p.selection, ref)
			continue
		}
		p.selection[ref] = Entry{
			Ref:           ref,
			Surface:       s,
			LocalCentroid: centroid,
			WorldCentroid: s.Transform.Apply(centroid),
			Tag:           p.tagFor(s, i),
		}
	}
}

func (p *Painter) tagFor(s *hull.Surface, face int) string {
	if p.Tag != nil {
		return p.Tag(s, face)
	}
	return s.Name
}

// Clear removes every cached entry and hides the brush preview.
func (p *Painter) Clear() {
	p.selection = make(map[FaceRef]Entry)
	p.brushPoint = nil
	p.lastPoint = nil
}

// Count returns the number of selected faces
func (p *Painter) Count() int { return len(p.selection) }

// Selected reports whether a face is currently selected
func (p *Painter) Selected(ref FaceRef) bool {
	_, ok := p.selection[ref]
	return ok
}

// Entries returns the selection in a stable order.
func (p *Painter) Entries() []Entry {
	out := make([]Entry, 0, len(p.selection))
	for _, e := range p.selection {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ref.Surface != out[j].Ref.Surface {
			return out[i].Ref.Surface < out[j].Ref.Surface
		}
		return out[i].Ref.Index < out[j].Ref.Index
	})
	return out
}

// Summarize describes the current selection: face count, counts per
// classification tag and the total weight the selection implies at the
// current weight-per-face setting.
func (p *Painter) Summarize() Summary {
	s := Summary{
		Count: len(p.selection),
		ByTag: make(map[string]int),
	}
	for _, e := range p.selection {
		s.ByTag[e.Tag]++
	}
	s.Weight = float64(s.Count) * p.WeightPerFace
	return s
}
