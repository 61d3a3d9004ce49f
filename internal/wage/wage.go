// Package wage holds the hardcoded minimum-wage dataset and joins it
// onto county boundary features.
//
// The figures are labeled in Canadian dollars even though they describe
// Washington state counties. That mismatch is present in the published
// dataset and is preserved literally.
package wage

import (
	"strconv"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/mycoleb/WashingtonMinimumWages/internal/county"
)

// Feature property keys written by the wage join.
const (
	PropNumeric = "min_wage_numeric"
	PropDisplay = "min_wage_cad"
)

const displaySuffix = " Canadian Dollars an hour"

// Override is a county-specific rate superseding the default, with an
// optional qualifying note appended to the display string.
type Override struct {
	Rate float64
	Note string
}

// Table maps county names to wage overrides around a default rate.
type Table struct {
	Default   float64
	Overrides map[string]Override
}

// Assignment is the resolved wage for one county.
type Assignment struct {
	Rate    float64
	Display string
}

// DefaultTable returns the published wage dataset: 23.70 everywhere,
// with King and Whatcom overrides.
func DefaultTable() Table {
	return Table{
		Default: 23.70,
		Overrides: map[string]Override{
			"King":    {Rate: 30.09},
			"Whatcom": {Rate: 26.54, Note: " starting May 1st"},
		},
	}
}

// Resolve returns the wage assignment for a county name. Names without
// an override get the default rate; matching is by exact string.
func (t Table) Resolve(name string) Assignment {
	rate := t.Default
	note := ""
	if o, ok := t.Overrides[name]; ok {
		rate = o.Rate
		note = o.Note
	}
	return Assignment{
		Rate:    rate,
		Display: strconv.FormatFloat(rate, 'f', -1, 64) + displaySuffix + note,
	}
}

// Apply joins the table onto every feature, writing min_wage_numeric and
// min_wage_cad into the property bag keyed off the resolved NAME.
func (t Table) Apply(fc *geojson.FeatureCollection) {
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		name, _ := f.Properties[county.PropName].(string)
		a := t.Resolve(name)
		f.Properties[PropNumeric] = a.Rate
		f.Properties[PropDisplay] = a.Display
	}
}
