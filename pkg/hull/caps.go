package hull

import (
	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

// Cap surfaces close the open ends of the hull body: bow (first
// station), stern/transom (last station) and deck (highest waterline).
// They are always built from the original table, so caps stay at base
// resolution even when the body is densified.

// BuildBowCap builds the cap across the first station.
func BuildBowCap(t *offsets.Table) *Surface {
	if len(t.Stations) == 0 {
		return NewSurface("bow")
	}
	return buildStationCap(t, 0, "bow", false)
}

// BuildSternCap builds the transom cap across the last station.
func BuildSternCap(t *offsets.Table) *Surface {
	if len(t.Stations) == 0 {
		return NewSurface("stern")
	}
	return buildStationCap(t, len(t.Stations)-1, "stern", true)
}

// buildStationCap strips port/starboard vertex pairs up a station and
// triangulates between consecutive pairs. Fewer than two pairs yields
// an empty surface.
func buildStationCap(t *offsets.Table, station int, name string, flip bool) *Surface {
	s := NewSurface(name)
	st := t.Stations[station]
	scale := t.Units.Scale()
	x := st.Position * scale

	var pairs [][2]uint32
	for _, sample := range st.Samples {
		y := sample.Height * scale
		port := s.addVertex(geometry.NewVector3(x, y, sample.Port*scale))
		stbd := s.addVertex(geometry.NewVector3(x, y, -sample.StarboardBreadth()*scale))
		pairs = append(pairs, [2]uint32{port, stbd})
	}

	stripPairs(s, pairs, flip)
	return s
}

// BuildDeckCap builds the cap across the highest waterline, strung
// along stations ascending by position.
func BuildDeckCap(t *offsets.Table) *Surface {
	s := NewSurface("deck")
	heights := t.WaterlineHeights()
	if len(heights) == 0 {
		return s
	}
	top := heights[len(heights)-1]
	scale := t.Units.Scale()

	var pairs [][2]uint32
	for _, st := range t.Stations {
		sample, ok := st.SampleAt(top, offsets.HeightTolerance)
		if !ok {
			continue
		}
		x := st.Position * scale
		y := sample.Height * scale
		port := s.addVertex(geometry.NewVector3(x, y, sample.Port*scale))
		stbd := s.addVertex(geometry.NewVector3(x, y, -sample.StarboardBreadth()*scale))
		pairs = append(pairs, [2]uint32{port, stbd})
	}

	stripPairs(s, pairs, false)
	return s
}

// stripPairs triangulates a point strip of port/starboard pairs as a
// quad strip between consecutive pairs.
func stripPairs(s *Surface, pairs [][2]uint32, flip bool) {
	for k := 0; k+1 < len(pairs); k++ {
		p0, s0 := pairs[k][0], pairs[k][1]
		p1, s1 := pairs[k+1][0], pairs[k+1][1]
		if flip {
			s.addTriangle(p0, p1, s0)
			s.addTriangle(s0, p1, s1)
		} else {
			s.addTriangle(p0, s0, p1)
			s.addTriangle(s0, s1, p1)
		}
	}
}
