package county

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/mycoleb/WashingtonMinimumWages/internal/fetcher"
)

// Property keys used by the national county boundary document.
const (
	PropState    = "STATE"
	PropCounty   = "COUNTY"
	PropName     = "NAME"
	PropNameLSAD = "NAMELSAD"
)

// Loader fetches the national county boundary document and narrows it to
// one state's counties, enriched with human-readable names. Geometry is
// WGS84 longitude/latitude (EPSG:4326) end to end.
type Loader struct {
	fetcher   fetcher.Fetcher
	url       string
	stateFIPS string
}

// NewLoader creates a Loader for the given source URL and state FIPS code.
func NewLoader(f fetcher.Fetcher, url, stateFIPS string) *Loader {
	return &Loader{fetcher: f, url: url, stateFIPS: stateFIPS}
}

// Load downloads the national boundary document, filters it to the
// target state, and enriches each feature with NAME and NAMELSAD.
// A non-success response surfaces unchanged as *fetcher.FetchError; any
// other fetch or decode failure is wrapped in *LoadError. Both are
// logged before returning.
func (l *Loader) Load(ctx context.Context) (*geojson.FeatureCollection, error) {
	log := zap.L().With(zap.String("component", "county.loader"))

	data, err := l.fetcher.DownloadBytes(ctx, l.url)
	if err != nil {
		var fe *fetcher.FetchError
		if errors.As(err, &fe) {
			log.Error("boundary fetch returned non-success status",
				zap.String("url", l.url),
				zap.Int("status", fe.StatusCode),
			)
			return nil, err
		}
		log.Error("boundary fetch failed", zap.String("url", l.url), zap.Error(err))
		return nil, &LoadError{Err: err}
	}

	var national geojson.FeatureCollection
	if err := json.Unmarshal(data, &national); err != nil {
		log.Error("boundary document decode failed", zap.Error(err))
		return nil, &LoadError{Err: eris.Wrap(err, "county: decode boundary document")}
	}

	fc := FilterState(&national, l.stateFIPS)
	Enrich(fc)

	log.Info("loaded county boundaries",
		zap.String("state_fips", l.stateFIPS),
		zap.Int("count", len(fc.Features)),
	)

	return fc, nil
}

// FilterState selects features whose STATE property equals stateFIPS,
// preserving the source document order.
func FilterState(fc *geojson.FeatureCollection, stateFIPS string) *geojson.FeatureCollection {
	out := &geojson.FeatureCollection{}
	for _, f := range fc.Features {
		if s, _ := f.Properties[PropState].(string); s == stateFIPS {
			out.Features = append(out.Features, f)
		}
	}
	return out
}

// Enrich writes NAME and NAMELSAD into each feature's properties from
// the embedded FIPS name table. Unmapped codes resolve to the Unknown
// sentinel. Features are not otherwise mutated.
func Enrich(fc *geojson.FeatureCollection) {
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		state, _ := f.Properties[PropState].(string)
		cnty, _ := f.Properties[PropCounty].(string)
		full := FullCode(state, cnty)
		f.Properties[PropName] = Name(full)
		f.Properties[PropNameLSAD] = LongName(full)
	}
}
