package offsets

import (
	"errors"
	"fmt"
	"math"
)

// MaxMultiplier bounds the level-of-detail densification factors.
const MaxMultiplier = 10.0

// ErrEmptyTable signals that interpolation was asked to densify a table
// with no usable samples. The input table is still returned unchanged;
// callers may treat this as a warning.
var ErrEmptyTable = errors.New("offset table has no stations or waterlines")

// LODConfig controls how densely an offset table is resampled. A
// multiplier of 1 means no densification on that axis.
type LODConfig struct {
	StationMultiplier   float64 `yaml:"station_multiplier"`
	WaterlineMultiplier float64 `yaml:"waterline_multiplier"`
	Smoothing           bool    `yaml:"smoothing"`
}

// DefaultLOD returns the no-densification configuration.
func DefaultLOD() LODConfig {
	return LODConfig{StationMultiplier: 1, WaterlineMultiplier: 1}
}

// Validate rejects configurations outside the supported range.
func (c LODConfig) Validate() error {
	for _, m := range []float64{c.StationMultiplier, c.WaterlineMultiplier} {
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 || m > MaxMultiplier {
			return fmt.Errorf("level of detail multiplier %v out of range (0, %v]", m, MaxMultiplier)
		}
	}
	return nil
}

// Interpolate densifies an offset table according to the level-of-detail
// configuration and returns a new synthetic table. The input is never
// mutated. With both multipliers at or below 1 the input is returned
// unchanged. Dense positions stay inside the original station and
// waterline ranges: edges clamp, nothing extrapolates.
func Interpolate(t *Table, lod LODConfig) (*Table, error) {
	if err := lod.Validate(); err != nil {
		return nil, err
	}
	if lod.StationMultiplier <= 1 && lod.WaterlineMultiplier <= 1 {
		return t, nil
	}
	heights := t.WaterlineHeights()
	if len(t.Stations) == 0 || len(heights) == 0 {
		return t, ErrEmptyTable
	}

	positions := denseAxis(
		t.Stations[0].Position,
		t.Stations[len(t.Stations)-1].Position,
		len(t.Stations),
		lod.StationMultiplier,
	)
	denseHeights := denseAxis(
		heights[0],
		heights[len(heights)-1],
		len(heights),
		lod.WaterlineMultiplier,
	)

	dense := &Table{
		Name:      t.Name,
		Weight:    t.Weight,
		Units:     t.Units,
		Symmetric: t.Symmetric,
		HasKeel:   t.HasKeel,
		HasChine:  t.HasChine,
		Thickness: t.Thickness,
		Stations:  make([]Station, 0, len(positions)),
	}

	for _, pos := range positions {
		lo, hi, ratio := bracketStations(t.Stations, pos)
		station := Station{Position: pos}

		for _, h := range denseHeights {
			a, okA := sampleAtHeight(t.Stations[lo], h)
			b, okB := sampleAtHeight(t.Stations[hi], h)
			if !okA || !okB {
				continue
			}

			sample := Sample{
				Height: h,
				Port:   lerp(a.Port, b.Port, ratio),
			}
			if a.Starboard != nil && b.Starboard != nil {
				stbd := lerp(*a.Starboard, *b.Starboard, ratio)
				sample.Starboard = &stbd
			}
			station.Samples = append(station.Samples, sample)
		}

		if len(station.Samples) > 0 {
			dense.Stations = append(dense.Stations, station)
		}
	}

	return dense, nil
}

// denseAxis resamples [first, last] linearly: round((n-1)*multiplier)+1
// points, never fewer than 2.
func denseAxis(first, last float64, n int, multiplier float64) []float64 {
	count := int(math.Round(float64(n-1)*multiplier)) + 1
	if count < 2 {
		count = 2
	}
	out := make([]float64, count)
	step := (last - first) / float64(count-1)
	for i := range out {
		out[i] = first + float64(i)*step
	}
	// Pin the endpoint against accumulated rounding
	out[count-1] = last
	return out
}

// bracketStations locates the pair of original stations enclosing the
// given position and the interpolation ratio between them. Positions
// outside the original range clamp to the nearest station at ratio 0.
func bracketStations(stations []Station, pos float64) (lo, hi int, ratio float64) {
	n := len(stations)
	if pos <= stations[0].Position {
		return 0, 0, 0
	}
	if pos >= stations[n-1].Position {
		return n - 1, n - 1, 0
	}
	for i := 0; i < n-1; i++ {
		a, b := stations[i].Position, stations[i+1].Position
		if pos >= a && pos <= b {
			if b == a {
				return i, i + 1, 0
			}
			return i, i + 1, (pos - a) / (b - a)
		}
	}
	return n - 1, n - 1, 0
}

// sampleAtHeight resolves a station's half-breadths at an arbitrary
// height. An exact match (within HeightTolerance) wins; otherwise the
// nearest enclosing samples blend vertically, which together with the
// station blend in Interpolate gives the four-corner fallback. Heights
// beyond the station's sampled range clamp to the edge sample. The
// starboard value survives only when every contributing sample carries
// one explicitly, so symmetric samples stay symmetric after
// densification.
func sampleAtHeight(st Station, h float64) (Sample, bool) {
	if len(st.Samples) == 0 {
		return Sample{}, false
	}
	if s, ok := st.SampleAt(h, HeightTolerance); ok {
		return s, true
	}
	if h <= st.Samples[0].Height {
		return st.Samples[0], true
	}
	last := st.Samples[len(st.Samples)-1]
	if h >= last.Height {
		return last, true
	}
	for i := 0; i < len(st.Samples)-1; i++ {
		a, b := st.Samples[i], st.Samples[i+1]
		if h < a.Height || h > b.Height {
			continue
		}
		vr := 0.0
		if b.Height != a.Height {
			vr = (h - a.Height) / (b.Height - a.Height)
		}
		blended := Sample{
			Height: h,
			Port:   lerp(a.Port, b.Port, vr),
		}
		if a.Starboard != nil && b.Starboard != nil {
			stbd := lerp(*a.Starboard, *b.Starboard, vr)
			blended.Starboard = &stbd
		}
		return blended, true
	}
	return Sample{}, false
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
