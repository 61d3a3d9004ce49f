package choropleth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFor_KnownRates(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, "#ffd700", p.StyleFor(30.09).FillColor)
	assert.Equal(t, "#f5c855", p.StyleFor(26.54).FillColor)
	assert.Equal(t, "#ffeeba", p.StyleFor(23.70).FillColor)
}

func TestStyleFor_UnlistedRatesFallBack(t *testing.T) {
	p := DefaultPalette()

	// Equality matching, not ranges: anything off the known constants,
	// however close or large, lands in the default bucket.
	for _, rate := range []float64{0, 23.71, 26.53, 26.55, 30.0899, 30.10, 100} {
		assert.Equal(t, p.Default, p.StyleFor(rate), "rate %v", rate)
	}
}

func TestStyleFor_Deterministic(t *testing.T) {
	p := DefaultPalette()
	first := p.StyleFor(26.54)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.StyleFor(26.54))
	}
}

func TestStyleFor_CommonAttributes(t *testing.T) {
	p := DefaultPalette()
	for _, rate := range []float64{30.09, 26.54, 23.70, 1.0} {
		s := p.StyleFor(rate)
		assert.Equal(t, "#000000", s.Color)
		assert.Equal(t, 1, s.Weight)
		assert.InDelta(t, 0.7, s.FillOpacity, 0.001)
	}
}

func TestDefaultLegend(t *testing.T) {
	legend := DefaultLegend()
	assert.Len(t, legend, 3)
	assert.Equal(t, "King County: 30.09", legend[0].Label)
	assert.Equal(t, "Whatcom County: 26.54 (starting May 1st)", legend[1].Label)
	assert.Equal(t, "All other counties: 23.70", legend[2].Label)
}
