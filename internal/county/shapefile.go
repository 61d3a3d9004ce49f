package county

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// LoadShapefile reads county boundaries from a local Census TIGER or
// cartographic boundary shapefile, filters to the target state, and
// returns the same enriched FeatureCollection shape the network loader
// produces. Record order follows the shapefile.
func LoadShapefile(path, stateFIPS string) (*geojson.FeatureCollection, error) {
	log := zap.L().With(zap.String("component", "county.shapefile"))

	reader, err := shp.Open(path)
	if err != nil {
		return nil, &LoadError{Err: eris.Wrapf(err, "county: open shapefile %s", path)}
	}
	defer func() { _ = reader.Close() }()

	stateIdx := fieldIndex(reader, "STATEFP")
	countyIdx := fieldIndex(reader, "COUNTYFP")
	if stateIdx < 0 || countyIdx < 0 {
		return nil, &LoadError{Err: eris.New("county: required shapefile fields (STATEFP, COUNTYFP) not found")}
	}

	fc := &geojson.FeatureCollection{}
	for reader.Next() {
		_, shape := reader.Shape()
		if shape == nil {
			continue
		}

		state := strings.TrimSpace(reader.Attribute(stateIdx))
		if state != stateFIPS {
			continue
		}
		cnty := strings.TrimSpace(reader.Attribute(countyIdx))

		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		g := polygonToMultiPolygon(poly)
		if g == nil {
			continue
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       FullCode(state, cnty),
			Geometry: g,
			Properties: map[string]interface{}{
				PropState:  state,
				PropCounty: cnty,
			},
		})
	}

	Enrich(fc)

	log.Info("loaded county boundaries from shapefile",
		zap.String("path", path),
		zap.String("state_fips", stateFIPS),
		zap.Int("count", len(fc.Features)),
	)

	return fc, nil
}

func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// polygonToMultiPolygon converts a shapefile Polygon to a go-geom
// MultiPolygon in EPSG:4326.
func polygonToMultiPolygon(p *shp.Polygon) geom.T {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, 2*(end-start))
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("county: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}

		if err := mp.Push(poly); err != nil {
			zap.L().Debug("county: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
