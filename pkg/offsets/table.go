// Package offsets models a ship hull offset table: transverse stations
// along the longitudinal axis, each sampled at a set of waterline
// heights with port (and optionally starboard) half-breadths.
package offsets

import (
	"math"
	"sort"
)

// HeightTolerance is the near-equality tolerance, in table units, used
// when matching waterline heights between stations.
const HeightTolerance = 0.001

// Units is the linear unit of an offset table.
type Units string

const (
	UnitsMeters Units = "meters"
	UnitsFeet   Units = "feet"
	UnitsInches Units = "inches"
)

// Scale returns the unit-to-meter factor. Unknown units scale as meters.
func (u Units) Scale() float64 {
	switch u {
	case UnitsFeet:
		return 0.3048
	case UnitsInches:
		return 0.0254
	default:
		return 1.0
	}
}

// Sample is one waterline measurement at a station. A nil Starboard
// means the hull is symmetric at this sample and consumers must fall
// back to the port value.
type Sample struct {
	Height    float64  `yaml:"height"`
	Port      float64  `yaml:"half_breadth_port"`
	Starboard *float64 `yaml:"half_breadth_starboard,omitempty"`
}

// StarboardBreadth returns the starboard half-breadth, falling back to
// the port value when starboard is not recorded. This per-sample check
// is the only symmetric-fallback trigger; the table-level Symmetric
// flag is advisory metadata and is never consulted here.
func (s Sample) StarboardBreadth() float64 {
	if s.Starboard != nil {
		return *s.Starboard
	}
	return s.Port
}

// Station is a transverse slice of the hull at a fixed longitudinal
// position, with its waterline samples ordered by ascending height.
type Station struct {
	Position float64  `yaml:"position"`
	Samples  []Sample `yaml:"waterlines"`
}

// SampleAt finds the sample whose height matches the given height
// within tolerance. First match in scan order wins.
func (st Station) SampleAt(height, tolerance float64) (Sample, bool) {
	for _, s := range st.Samples {
		if math.Abs(s.Height-height) <= tolerance {
			return s, true
		}
	}
	return Sample{}, false
}

// Table is a complete offset table plus its hull metadata. Metadata is
// immutable input: generation reads it but never mutates the table.
type Table struct {
	Name      string    `yaml:"name"`
	Weight    float64   `yaml:"weight"`
	Units     Units     `yaml:"units"`
	Symmetric bool      `yaml:"symmetric"` // advisory only, see Sample.StarboardBreadth
	HasKeel   bool      `yaml:"has_keel"`
	HasChine  bool      `yaml:"has_chine"`
	Thickness float64   `yaml:"thickness"`
	Stations  []Station `yaml:"stations"`
}

// IsEmpty reports whether the table has no usable samples at all.
func (t *Table) IsEmpty() bool {
	for _, st := range t.Stations {
		if len(st.Samples) > 0 {
			return false
		}
	}
	return true
}

// StationPositions returns the longitudinal positions of all stations,
// in table order.
func (t *Table) StationPositions() []float64 {
	positions := make([]float64, len(t.Stations))
	for i, st := range t.Stations {
		positions[i] = st.Position
	}
	return positions
}

// WaterlineHeights returns the sorted set of distinct waterline heights
// across all stations. Heights closer than HeightTolerance collapse
// into one.
func (t *Table) WaterlineHeights() []float64 {
	var heights []float64
	for _, st := range t.Stations {
		for _, s := range st.Samples {
			heights = append(heights, s.Height)
		}
	}
	sort.Float64s(heights)

	var unique []float64
	for _, h := range heights {
		if len(unique) == 0 || h-unique[len(unique)-1] > HeightTolerance {
			unique = append(unique, h)
		}
	}
	return unique
}

// sortGeometry orders stations by position and samples by height.
// Generation iterates both ascending.
func (t *Table) sortGeometry() {
	sort.SliceStable(t.Stations, func(i, j int) bool {
		return t.Stations[i].Position < t.Stations[j].Position
	})
	for i := range t.Stations {
		samples := t.Stations[i].Samples
		sort.SliceStable(samples, func(a, b int) bool {
			return samples[a].Height < samples[b].Height
		})
	}
}
