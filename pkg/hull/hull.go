package hull

import (
	"errors"

	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

// Mesh is one complete generation result: the hull body, the three cap
// surfaces, the face groups and the scaled station/waterline axes the
// classifier used. A Mesh is immutable after Build; regeneration
// replaces it wholesale.
type Mesh struct {
	Body  *Surface
	Bow   *Surface
	Stern *Surface
	Deck  *Surface

	Lookup map[VertexKey]uint32
	Keel   map[int]uint32
	Groups Groups

	// StationPositions and WaterlineHeights are the (densified) axes
	// in scaled units.
	StationPositions []float64
	WaterlineHeights []float64

	deckFaces map[int]struct{}
}

// Build runs the full pipeline: densify the table per the LOD
// configuration, generate the body and cap surfaces, classify faces
// into groups and bake per-vertex colors. An invalid LOD configuration
// is rejected with no result; invalid geometry yields a placeholder
// mesh together with ErrInvalidGeometry.
func Build(t *offsets.Table, lod offsets.LODConfig, cm ColorMap) (*Mesh, error) {
	dense, err := offsets.Interpolate(t, lod)
	if err != nil && !errors.Is(err, offsets.ErrEmptyTable) {
		return nil, err
	}

	body, buildErr := BuildBody(dense)

	// Caps always come from the original, non-densified table.
	bow := BuildBowCap(t)
	stern := BuildSternCap(t)
	deck := BuildDeckCap(t)

	if buildErr == nil {
		for _, c := range []*Surface{bow, stern, deck} {
			if !c.hasFiniteVertices() {
				buildErr = ErrInvalidGeometry
				break
			}
		}
	}
	if buildErr != nil {
		return placeholderMesh(), ErrInvalidGeometry
	}

	scale := dense.Units.Scale()
	positions := make([]float64, len(dense.Stations))
	for i, st := range dense.Stations {
		positions[i] = st.Position * scale
	}
	heights := dense.WaterlineHeights()
	for i := range heights {
		heights[i] *= scale
	}

	m := &Mesh{
		Body:             body.Surface,
		Bow:              bow,
		Stern:            stern,
		Deck:             deck,
		Lookup:           body.Lookup,
		Keel:             body.Keel,
		StationPositions: positions,
		WaterlineHeights: heights,
	}

	m.Groups = Classify(m.Body, positions, heights)
	m.deckFaces = make(map[int]struct{}, len(m.Groups.Deck))
	for _, f := range m.Groups.Deck {
		m.deckFaces[f] = struct{}{}
	}

	cm = cm.resolve()
	Colorize(m.Body, m.Groups, cm)
	fillColor(m.Bow, cm.Default)
	fillColor(m.Stern, cm.Default)
	fillColor(m.Deck, cm.Deck)

	return m, nil
}

func placeholderMesh() *Mesh {
	return &Mesh{
		Body:      Placeholder(),
		Bow:       NewSurface("bow"),
		Stern:     NewSurface("stern"),
		Deck:      NewSurface("deck"),
		Lookup:    map[VertexKey]uint32{},
		Keel:      map[int]uint32{},
		deckFaces: map[int]struct{}{},
	}
}

// Surfaces returns the non-empty surfaces of the mesh, body first.
func (m *Mesh) Surfaces() []*Surface {
	var out []*Surface
	for _, s := range []*Surface{m.Body, m.Bow, m.Stern, m.Deck} {
		if s != nil && !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

// FaceTag returns the classification tag for a face: the owning
// surface's name, except body faces in the deck group, which tag as
// "deck".
func (m *Mesh) FaceTag(s *Surface, face int) string {
	if s == m.Body {
		if _, ok := m.deckFaces[face]; ok {
			return "deck"
		}
	}
	return s.Name
}
