package hull

// ColorMap names the four colors the colorizer applies. A zero-valued
// entry falls back to the built-in default, so callers override any
// subset.
type ColorMap struct {
	Default   Color
	Station   Color
	Waterline Color
	Deck      Color
}

// DefaultColorMap returns the built-in hull color scheme.
func DefaultColorMap() ColorMap {
	return ColorMap{
		Default:   Color{R: 120, G: 144, B: 156, A: 255},
		Station:   Color{R: 230, G: 145, B: 56, A: 255},
		Waterline: Color{R: 61, G: 133, B: 198, A: 255},
		Deck:      Color{R: 106, G: 168, B: 79, A: 255},
	}
}

// resolve fills zero-valued entries from the defaults.
func (cm ColorMap) resolve() ColorMap {
	def := DefaultColorMap()
	zero := Color{}
	if cm.Default == zero {
		cm.Default = def.Default
	}
	if cm.Station == zero {
		cm.Station = def.Station
	}
	if cm.Waterline == zero {
		cm.Waterline = def.Waterline
	}
	if cm.Deck == zero {
		cm.Deck = def.Deck
	}
	return cm
}

// Colorize assigns a color to every vertex of the surface in strict
// precedence order: default first, then station groups, then waterline
// groups, then deck faces. Later writes win per vertex, so deck always
// wins on shared vertices. The computed colors are stored on the
// surface and returned.
func Colorize(s *Surface, groups Groups, cm ColorMap) []Color {
	cm = cm.resolve()

	colors := make([]Color, len(s.Vertices))
	for i := range colors {
		colors[i] = cm.Default
	}

	paint := func(faces []int, c Color) {
		for _, f := range faces {
			for k := 0; k < 3; k++ {
				colors[s.Indices[f*3+k]] = c
			}
		}
	}

	for _, faces := range groups.Stations {
		paint(faces, cm.Station)
	}
	for _, faces := range groups.Waterlines {
		paint(faces, cm.Waterline)
	}
	paint(groups.Deck, cm.Deck)

	s.Colors = colors
	return colors
}

// fillColor paints every vertex of a surface with one color.
func fillColor(s *Surface, c Color) {
	s.Colors = make([]Color, len(s.Vertices))
	for i := range s.Colors {
		s.Colors[i] = c
	}
}
