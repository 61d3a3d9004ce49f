package choropleth

// Style is a Leaflet path style descriptor for one county fill.
type Style struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Palette maps known wage rates to fill styles. Matching is by exact
// numeric equality: a rate outside the rule set takes the default style.
// This must not become a range comparison; unlisted rates are meant to
// fall silently into the default bucket.
type Palette struct {
	Rules   map[float64]Style
	Default Style
}

// DefaultPalette returns the gold shading used by the Washington wage
// map: darker gold for higher override rates, light gold otherwise.
func DefaultPalette() Palette {
	return Palette{
		Rules: map[float64]Style{
			30.09: {FillColor: "#ffd700", Color: "#000000", Weight: 1, FillOpacity: 0.7},
			26.54: {FillColor: "#f5c855", Color: "#000000", Weight: 1, FillOpacity: 0.7},
		},
		Default: Style{FillColor: "#ffeeba", Color: "#000000", Weight: 1, FillOpacity: 0.7},
	}
}

// StyleFor resolves the fill style for a numeric rate.
func (p Palette) StyleFor(rate float64) Style {
	if s, ok := p.Rules[rate]; ok {
		return s
	}
	return p.Default
}

// LegendEntry is one swatch + label line in the fixed legend block.
type LegendEntry struct {
	Swatch string
	Label  string
}

// DefaultLegend returns the static legend for the known rate tiers.
func DefaultLegend() []LegendEntry {
	return []LegendEntry{
		{Swatch: "#ffd700", Label: "King County: 30.09"},
		{Swatch: "#f5c855", Label: "Whatcom County: 26.54 (starting May 1st)"},
		{Swatch: "#ffeeba", Label: "All other counties: 23.70"},
	}
}
