// Package weights tracks the weight composition of a hull: the base
// structural weight from the offset table, custom point loads, and
// loads committed from painted face selections.
package weights

import (
	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
)

// PointLoad is a weight applied at a position on the hull.
type PointLoad struct {
	Position  geometry.Vector3
	Magnitude float64
}

// Ledger accumulates the weight state of a single hull. Painted loads
// are stored by value; callers keep no aliases into the ledger and the
// ledger keeps none into caller slices.
type Ledger struct {
	base    float64
	custom  []PointLoad
	painted []PointLoad
}

// NewLedger creates a ledger seeded with the hull's base weight.
func NewLedger(base float64) *Ledger {
	return &Ledger{base: base}
}

// SetBase replaces the base structural weight
func (l *Ledger) SetBase(w float64) { l.base = w }

// Base returns the base structural weight
func (l *Ledger) Base() float64 { return l.base }

// AddCustom records a manually placed point load.
func (l *Ledger) AddCustom(load PointLoad) {
	l.custom = append(l.custom, load)
}

// Custom returns a copy of the manually placed loads.
func (l *Ledger) Custom() []PointLoad {
	return clonePointLoads(l.custom)
}

// SetPainted replaces the painted loads with a copy of the given
// slice. The swap is all-or-nothing; a later mutation of the caller's
// slice does not reach the ledger.
func (l *Ledger) SetPainted(loads []PointLoad) {
	l.painted = clonePointLoads(loads)
}

// AddPainted appends copies of the given loads to the painted set.
// Committing the same faces twice yields two loads, not one.
func (l *Ledger) AddPainted(loads []PointLoad) {
	l.painted = append(l.painted, loads...)
}

// Painted returns a copy of the painted loads.
func (l *Ledger) Painted() []PointLoad {
	return clonePointLoads(l.painted)
}

// PaintedCount returns the number of painted loads
func (l *Ledger) PaintedCount() int { return len(l.painted) }

// PaintedWeight sums the painted load magnitudes.
func (l *Ledger) PaintedWeight() float64 {
	var sum float64
	for _, p := range l.painted {
		sum += p.Magnitude
	}
	return sum
}

// Total is the full displacement weight: base plus every custom and
// painted load.
func (l *Ledger) Total() float64 {
	sum := l.base
	for _, p := range l.custom {
		sum += p.Magnitude
	}
	for _, p := range l.painted {
		sum += p.Magnitude
	}
	return sum
}

// Distribution returns the positions and magnitudes of every placed
// load, painted first then custom, as parallel slices. The base weight
// has no position and is excluded.
func (l *Ledger) Distribution() ([]geometry.Vector3, []float64) {
	n := len(l.painted) + len(l.custom)
	positions := make([]geometry.Vector3, 0, n)
	magnitudes := make([]float64, 0, n)
	for _, p := range l.painted {
		positions = append(positions, p.Position)
		magnitudes = append(magnitudes, p.Magnitude)
	}
	for _, p := range l.custom {
		positions = append(positions, p.Position)
		magnitudes = append(magnitudes, p.Magnitude)
	}
	return positions, magnitudes
}

// ClearPainted drops every painted load.
func (l *Ledger) ClearPainted() {
	l.painted = nil
}

func clonePointLoads(in []PointLoad) []PointLoad {
	if len(in) == 0 {
		return nil
	}
	out := make([]PointLoad, len(in))
	copy(out, in)
	return out
}
