package convert

// Symbology is the default visualization suggestion stored with a data
// product. The heuristic is purely a function of the band statistics so
// identical inputs always produce the same suggestion.
type Symbology struct {
	Mode string `json:"mode"` // "singleband" or "rgb"

	// singleband
	ColorRamp string  `json:"color_ramp,omitempty"`
	Min       float64 `json:"min,omitempty"`
	Max       float64 `json:"max,omitempty"`

	// rgb
	Red   *ChannelRange `json:"red,omitempty"`
	Green *ChannelRange `json:"green,omitempty"`
	Blue  *ChannelRange `json:"blue,omitempty"`
}

// ChannelRange is the stretch applied to one RGB channel.
type ChannelRange struct {
	Band int     `json:"band"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// DefaultSymbology proposes a rendering default from band statistics:
// one band renders as a single-band color ramp, three or more as RGB
// using the first three bands. Two-band rasters fall back to rendering
// the first band.
func DefaultSymbology(bands []BandStats) Symbology {
	if len(bands) >= 3 {
		return Symbology{
			Mode:  "rgb",
			Red:   &ChannelRange{Band: bands[0].Band, Min: bands[0].Min, Max: bands[0].Max},
			Green: &ChannelRange{Band: bands[1].Band, Min: bands[1].Min, Max: bands[1].Max},
			Blue:  &ChannelRange{Band: bands[2].Band, Min: bands[2].Min, Max: bands[2].Max},
		}
	}

	s := Symbology{Mode: "singleband", ColorRamp: "rainbow"}
	if len(bands) > 0 {
		s.Min = bands[0].Min
		s.Max = bands[0].Max
	}
	return s
}
