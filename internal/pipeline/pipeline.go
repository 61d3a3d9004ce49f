// Package pipeline wires the boundary loader, the wage join, and the
// map renderer into the one-shot run the CLI exposes.
package pipeline

import (
	"context"
	"time"

	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/mycoleb/WashingtonMinimumWages/internal/choropleth"
	"github.com/mycoleb/WashingtonMinimumWages/internal/config"
	"github.com/mycoleb/WashingtonMinimumWages/internal/county"
	"github.com/mycoleb/WashingtonMinimumWages/internal/fetcher"
	"github.com/mycoleb/WashingtonMinimumWages/internal/wage"
)

// Pipeline runs load → wage join → render → write. No stage produces
// output when an earlier stage fails.
type Pipeline struct {
	loader    *county.Loader
	shapefile string
	stateFIPS string
	wages     wage.Table
	renderer  choropleth.Map
	output    string
}

// Option adjusts pipeline construction.
type Option func(*Pipeline)

// WithShapefile loads boundaries from a local shapefile instead of the
// network source.
func WithShapefile(path string) Option {
	return func(p *Pipeline) { p.shapefile = path }
}

// WithOutput overrides the output file path.
func WithOutput(path string) Option {
	return func(p *Pipeline) {
		if path != "" {
			p.output = path
		}
	}
}

// New builds a pipeline from config.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   time.Duration(cfg.Source.TimeoutSecs) * time.Second,
	})

	p := &Pipeline{
		loader:    county.NewLoader(f, cfg.Source.URL, cfg.Source.StateFIPS),
		stateFIPS: cfg.Source.StateFIPS,
		wages:     wage.DefaultTable(),
		renderer:  choropleth.New(cfg.Map),
		output:    cfg.Map.Output,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) load(ctx context.Context) (*geojson.FeatureCollection, error) {
	if p.shapefile != "" {
		return county.LoadShapefile(p.shapefile, p.stateFIPS)
	}
	return p.loader.Load(ctx)
}

// Render produces the HTML document in memory without touching the
// filesystem. Loader failures propagate unchanged.
func (p *Pipeline) Render(ctx context.Context) ([]byte, error) {
	fc, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	p.wages.Apply(fc)

	return p.renderer.Render(fc)
}

// Run executes the full pipeline and writes the output file, returning
// its path. The file is only written after every stage has succeeded.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	fc, err := p.load(ctx)
	if err != nil {
		return "", err
	}

	p.wages.Apply(fc)

	path, err := p.renderer.WriteFile(fc, p.output)
	if err != nil {
		return "", err
	}

	zap.L().Info("pipeline complete",
		zap.Int("counties", len(fc.Features)),
		zap.String("output", path),
	)

	return path, nil
}
