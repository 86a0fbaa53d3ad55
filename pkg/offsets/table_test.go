package offsets

import (
	"math"
	"testing"
)

func TestStarboardBreadthFallback(t *testing.T) {
	s := Sample{Height: 1, Port: 2.5}
	if s.StarboardBreadth() != 2.5 {
		t.Errorf("symmetric sample should fall back to port, got %v", s.StarboardBreadth())
	}

	stbd := 1.75
	s.Starboard = &stbd
	if s.StarboardBreadth() != 1.75 {
		t.Errorf("explicit starboard ignored, got %v", s.StarboardBreadth())
	}
}

func TestUnitsScale(t *testing.T) {
	if UnitsMeters.Scale() != 1.0 {
		t.Errorf("meters scale = %v", UnitsMeters.Scale())
	}
	if math.Abs(UnitsFeet.Scale()-0.3048) > 1e-12 {
		t.Errorf("feet scale = %v", UnitsFeet.Scale())
	}
	if math.Abs(UnitsInches.Scale()-0.0254) > 1e-12 {
		t.Errorf("inches scale = %v", UnitsInches.Scale())
	}
	if Units("furlongs").Scale() != 1.0 {
		t.Error("unknown units should scale as meters")
	}
}

func TestWaterlineHeightsUniqueSorted(t *testing.T) {
	table := &Table{
		Stations: []Station{
			{Position: 0, Samples: []Sample{{Height: 1.0, Port: 1}, {Height: 0.0, Port: 1}}},
			{Position: 5, Samples: []Sample{{Height: 1.0005, Port: 1}, {Height: 2.0, Port: 1}}},
		},
	}

	heights := table.WaterlineHeights()
	expected := []float64{0.0, 1.0, 2.0}
	if len(heights) != len(expected) {
		t.Fatalf("expected %d heights, got %d: %v", len(expected), len(heights), heights)
	}
	for i, h := range expected {
		if math.Abs(heights[i]-h) > HeightTolerance {
			t.Errorf("height[%d]: expected %v, got %v", i, h, heights[i])
		}
	}
}

func TestSampleAtTolerance(t *testing.T) {
	st := Station{Samples: []Sample{{Height: 0.5, Port: 3}}}

	if _, ok := st.SampleAt(0.5004, HeightTolerance); !ok {
		t.Error("height within tolerance not matched")
	}
	if _, ok := st.SampleAt(0.52, HeightTolerance); ok {
		t.Error("height outside tolerance matched")
	}
}

func TestParseDefaultsAndSorting(t *testing.T) {
	data := []byte(`
name: skiff
weight: 120
stations:
  - position: 4.0
    waterlines:
      - {height: 1.0, half_breadth_port: 0.9}
      - {height: 0.0, half_breadth_port: 0.2}
  - position: 0.0
    waterlines:
      - {height: 0.0, half_breadth_port: 0.1}
`)
	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if table.Units != UnitsMeters {
		t.Errorf("missing units should default to meters, got %q", table.Units)
	}
	if table.Stations[0].Position != 0.0 {
		t.Errorf("stations not sorted by position: first at %v", table.Stations[0].Position)
	}
	second := table.Stations[1]
	if second.Samples[0].Height != 0.0 || second.Samples[1].Height != 1.0 {
		t.Errorf("samples not sorted by height: %v", second.Samples)
	}
}

func TestParseRejectsUnknownUnits(t *testing.T) {
	if _, err := Parse([]byte("units: cubits\nstations: []")); err == nil {
		t.Error("unknown units should be rejected")
	}
}

func TestIsEmpty(t *testing.T) {
	empty := &Table{Stations: []Station{{Position: 0}}}
	if !empty.IsEmpty() {
		t.Error("table with sample-less stations should be empty")
	}
	full := &Table{Stations: []Station{{Position: 0, Samples: []Sample{{Height: 0, Port: 1}}}}}
	if full.IsEmpty() {
		t.Error("table with samples reported empty")
	}
}
