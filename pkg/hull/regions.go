package hull

import "math"

// deckTolerance is the absolute vertical distance, in scaled units,
// within which a face centroid counts as part of the deck.
const deckTolerance = 0.01

// Groups holds face indices partitioned by region. A face belongs to
// exactly one station group and one waterline group; deck membership
// is independent, so a face can be both "station k" and deck.
type Groups struct {
	Stations   [][]int
	Waterlines [][]int
	Deck       []int
}

// Classify assigns every face of the surface to its nearest station
// (by longitudinal distance) and nearest waterline (by vertical
// distance), and flags deck faces. Positions and heights are in scaled
// units. Empty input yields empty groups, never an error.
func Classify(s *Surface, stationPositions, waterlineHeights []float64) Groups {
	g := Groups{
		Stations:   make([][]int, len(stationPositions)),
		Waterlines: make([][]int, len(waterlineHeights)),
	}
	if s == nil || len(s.Vertices) == 0 || len(stationPositions) == 0 || len(waterlineHeights) == 0 {
		return g
	}

	top := waterlineHeights[0]
	for _, h := range waterlineHeights[1:] {
		if h > top {
			top = h
		}
	}

	for f := 0; f < s.TriangleCount(); f++ {
		c := s.Centroid(f)

		si := nearestIndex(stationPositions, c.X)
		wi := nearestIndex(waterlineHeights, c.Y)
		g.Stations[si] = append(g.Stations[si], f)
		g.Waterlines[wi] = append(g.Waterlines[wi], f)

		if math.Abs(c.Y-top) <= deckTolerance {
			g.Deck = append(g.Deck, f)
		}
	}
	return g
}

// nearestIndex returns the index of the value closest to v. Ties keep
// the first-encountered minimum: the comparison is a strict less-than
// in scan order.
func nearestIndex(values []float64, v float64) int {
	best := 0
	bestDist := math.Abs(values[0] - v)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - v); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
