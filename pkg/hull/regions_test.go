package hull

import (
	"testing"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
)

// flatStrip builds a surface with one triangle centered over each of
// the given X positions, at the given height.
func flatStrip(xs []float64, y float64) *Surface {
	s := NewSurface("test")
	for _, x := range xs {
		a := s.addVertex(geometry.NewVector3(x-0.1, y, 0))
		b := s.addVertex(geometry.NewVector3(x+0.1, y, 0))
		c := s.addVertex(geometry.NewVector3(x, y, 0.3))
		s.addTriangle(a, b, c)
	}
	return s
}

func TestClassifyNearestStation(t *testing.T) {
	stations := []float64{0, 2, 4}
	waterlines := []float64{0, 1}
	s := flatStrip([]float64{0.2, 1.9, 3.8}, 0)

	g := Classify(s, stations, waterlines)
	for i := 0; i < 3; i++ {
		if len(g.Stations[i]) != 1 || g.Stations[i][0] != i {
			t.Errorf("station group %d: expected face %d, got %v", i, i, g.Stations[i])
		}
	}
}

func TestClassifyNearestWaterline(t *testing.T) {
	stations := []float64{0}
	waterlines := []float64{0, 1, 2}
	s := flatStrip([]float64{0}, 1.1)

	g := Classify(s, stations, waterlines)
	if len(g.Waterlines[1]) != 1 {
		t.Errorf("expected face in waterline group 1, got %v", g.Waterlines)
	}
}

func TestClassifyTieBreakFirstMinimum(t *testing.T) {
	// Centroid exactly between stations 0 and 2: the scan keeps the
	// first-encountered minimum under a strict less-than.
	stations := []float64{0, 2}
	waterlines := []float64{0}
	s := flatStrip([]float64{1.0}, 0)

	g := Classify(s, stations, waterlines)
	if len(g.Stations[0]) != 1 || len(g.Stations[1]) != 0 {
		t.Errorf("tie must go to the first station: %v", g.Stations)
	}
}

func TestClassifyDeckMembership(t *testing.T) {
	stations := []float64{0}
	waterlines := []float64{0, 1}
	s := flatStrip([]float64{0}, 1.0) // exactly at the top waterline

	g := Classify(s, stations, waterlines)
	if len(g.Deck) != 1 {
		t.Fatalf("expected 1 deck face, got %v", g.Deck)
	}
	// Deck membership is non-exclusive with the waterline group
	if len(g.Waterlines[1]) != 1 {
		t.Error("deck face should still belong to its waterline group")
	}
}

func TestClassifyDeckTolerance(t *testing.T) {
	stations := []float64{0}
	waterlines := []float64{0, 1}

	near := flatStrip([]float64{0}, 1.0+deckTolerance/2)
	if g := Classify(near, stations, waterlines); len(g.Deck) != 1 {
		t.Error("face within deck tolerance not flagged")
	}

	far := flatStrip([]float64{0}, 1.0-deckTolerance*5)
	if g := Classify(far, stations, waterlines); len(g.Deck) != 0 {
		t.Error("face outside deck tolerance flagged as deck")
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	g := Classify(NewSurface("empty"), []float64{0, 1}, []float64{0})
	if len(g.Deck) != 0 {
		t.Error("empty surface should produce empty groups")
	}

	s := flatStrip([]float64{0}, 0)
	g = Classify(s, nil, []float64{0})
	if len(g.Stations) != 0 || len(g.Deck) != 0 {
		t.Error("missing stations should produce empty groups")
	}
}
