package weights

import (
	"math"
	"testing"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
)

func TestTotalIsBasePlusLoads(t *testing.T) {
	l := NewLedger(1000)
	l.AddCustom(PointLoad{Position: geometry.NewVector3(1, 0, 0), Magnitude: 50})
	l.AddCustom(PointLoad{Position: geometry.NewVector3(2, 0, 0), Magnitude: 25})
	l.SetPainted([]PointLoad{
		{Position: geometry.NewVector3(0, 0, 0), Magnitude: 10},
		{Position: geometry.NewVector3(0, 1, 0), Magnitude: 10},
	})

	if got := l.Total(); math.Abs(got-1085) > 1e-12 {
		t.Errorf("total: expected 1085, got %v", got)
	}
}

func TestAddPaintedAccumulatesAcrossCommits(t *testing.T) {
	l := NewLedger(0)

	commit := []PointLoad{{Magnitude: 5}, {Magnitude: 5}}
	l.AddPainted(commit)
	l.AddPainted(commit)

	if got := l.PaintedWeight(); math.Abs(got-20) > 1e-12 {
		t.Errorf("painted weight after two commits: expected 20, got %v", got)
	}
	if got := l.PaintedCount(); got != 4 {
		t.Errorf("painted count after two commits: expected 4, got %d", got)
	}
}

func TestSetPaintedReplaces(t *testing.T) {
	l := NewLedger(0)
	l.SetPainted([]PointLoad{{Magnitude: 10}, {Magnitude: 10}})
	l.SetPainted([]PointLoad{{Magnitude: 3}})

	if got := l.PaintedCount(); got != 1 {
		t.Errorf("expected replacement, got %d loads", got)
	}
	if got := l.Total(); math.Abs(got-3) > 1e-12 {
		t.Errorf("total after replace: expected 3, got %v", got)
	}
}

func TestPaintedCopySemantics(t *testing.T) {
	l := NewLedger(0)
	in := []PointLoad{{Magnitude: 7}}
	l.SetPainted(in)

	// Mutating the input after the set must not reach the ledger.
	in[0].Magnitude = 999
	if got := l.PaintedWeight(); math.Abs(got-7) > 1e-12 {
		t.Errorf("ledger aliases caller slice: %v", got)
	}

	// Mutating the returned copy must not reach the ledger either.
	out := l.Painted()
	out[0].Magnitude = -1
	if got := l.PaintedWeight(); math.Abs(got-7) > 1e-12 {
		t.Errorf("returned slice aliases ledger: %v", got)
	}
}

func TestDistributionExcludesBase(t *testing.T) {
	l := NewLedger(500)
	l.AddPainted([]PointLoad{{Position: geometry.NewVector3(1, 2, 3), Magnitude: 4}})
	l.AddCustom(PointLoad{Position: geometry.NewVector3(5, 0, 0), Magnitude: 6})

	positions, magnitudes := l.Distribution()
	if len(positions) != 2 || len(magnitudes) != 2 {
		t.Fatalf("expected 2 entries, got %d/%d", len(positions), len(magnitudes))
	}
	if positions[0] != geometry.NewVector3(1, 2, 3) || magnitudes[0] != 4 {
		t.Errorf("painted load first: got %v %v", positions[0], magnitudes[0])
	}
	if magnitudes[1] != 6 {
		t.Errorf("custom load second: got %v", magnitudes[1])
	}
}

func TestClearPainted(t *testing.T) {
	l := NewLedger(100)
	l.AddPainted([]PointLoad{{Magnitude: 10}})
	l.ClearPainted()

	if l.PaintedCount() != 0 {
		t.Error("painted loads survived clear")
	}
	if got := l.Total(); math.Abs(got-100) > 1e-12 {
		t.Errorf("total after clear: expected 100, got %v", got)
	}
}
