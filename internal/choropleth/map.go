// Package choropleth renders the wage-joined county collection into a
// standalone interactive Leaflet document.
package choropleth

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/mycoleb/WashingtonMinimumWages/internal/config"
	"github.com/mycoleb/WashingtonMinimumWages/internal/wage"
)

//go:embed map.tmpl.html
var mapTemplate string

var tmpl = template.Must(template.New("map").Parse(mapTemplate))

// Property key the renderer writes the resolved style under.
const PropStyle = "style"

// Map composes the document: fixed basemap, styled county layer, hover
// tooltip, legend block, and title block.
type Map struct {
	CenterLat   float64
	CenterLng   float64
	Zoom        int
	TileURL     string
	Attribution string
	Title       string
	Subtitle    string
	Palette     Palette
	Legend      []LegendEntry
}

// New builds a Map from config, with the default palette and legend.
func New(cfg config.MapConfig) Map {
	return Map{
		CenterLat:   cfg.CenterLat,
		CenterLng:   cfg.CenterLng,
		Zoom:        cfg.Zoom,
		TileURL:     cfg.Tiles,
		Attribution: cfg.Attribution,
		Title:       cfg.Title,
		Subtitle:    cfg.Subtitle,
		Palette:     DefaultPalette(),
		Legend:      DefaultLegend(),
	}
}

type templateData struct {
	Title       string
	Subtitle    string
	CenterLat   float64
	CenterLng   float64
	Zoom        int
	TileURL     string
	Attribution string
	Legend      []LegendEntry
	GeoJSON     template.JS
}

// Render resolves a fill style once per feature and serializes the
// complete HTML document. Output is deterministic for a given input
// collection: no timestamps, and property maps encode with sorted keys.
func (m Map) Render(fc *geojson.FeatureCollection) ([]byte, error) {
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		rate, _ := f.Properties[wage.PropNumeric].(float64)
		f.Properties[PropStyle] = m.Palette.StyleFor(rate)
	}

	geo, err := json.Marshal(fc)
	if err != nil {
		return nil, eris.Wrap(err, "choropleth: encode geojson")
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		CenterLat:   m.CenterLat,
		CenterLng:   m.CenterLng,
		Zoom:        m.Zoom,
		TileURL:     m.TileURL,
		Attribution: m.Attribution,
		Legend:      m.Legend,
		GeoJSON:     template.JS(geo),
	})
	if err != nil {
		return nil, eris.Wrap(err, "choropleth: execute template")
	}

	return buf.Bytes(), nil
}

// WriteFile renders the map and writes it to path, overwriting any
// existing file. Returns the path written. Nothing is written when
// rendering fails.
func (m Map) WriteFile(fc *geojson.FeatureCollection, path string) (string, error) {
	html, err := m.Render(fc)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, html, 0o644); err != nil {
		return "", eris.Wrapf(err, "choropleth: write %s", path)
	}

	zap.L().Info("wrote choropleth map", zap.String("path", path), zap.Int("bytes", len(html)))
	return path, nil
}
