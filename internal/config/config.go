package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Map    MapConfig    `yaml:"map" mapstructure:"map"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures the boundary document source.
type SourceConfig struct {
	URL         string `yaml:"url" mapstructure:"url"`
	StateFIPS   string `yaml:"state_fips" mapstructure:"state_fips"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// MapConfig configures the rendered choropleth.
type MapConfig struct {
	CenterLat   float64 `yaml:"center_lat" mapstructure:"center_lat"`
	CenterLng   float64 `yaml:"center_lng" mapstructure:"center_lng"`
	Zoom        int     `yaml:"zoom" mapstructure:"zoom"`
	Tiles       string  `yaml:"tiles" mapstructure:"tiles"`
	Attribution string  `yaml:"attribution" mapstructure:"attribution"`
	Title       string  `yaml:"title" mapstructure:"title"`
	Subtitle    string  `yaml:"subtitle" mapstructure:"subtitle"`
	Output      string  `yaml:"output" mapstructure:"output"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml, WAMAP_* environment
// variables, and built-in defaults, in that order of precedence.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("WAMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The zero-config run reproduces the canonical Washington map.
	v.SetDefault("source.url", "https://raw.githubusercontent.com/plotly/datasets/master/geojson-counties-fips.json")
	v.SetDefault("source.state_fips", "53")
	v.SetDefault("source.timeout_secs", 30)
	v.SetDefault("source.user_agent", "wamap/1.0")
	v.SetDefault("map.center_lat", 47.5)
	v.SetDefault("map.center_lng", -120.5)
	v.SetDefault("map.zoom", 7)
	v.SetDefault("map.tiles", "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", "&copy; OpenStreetMap contributors &copy; CARTO")
	v.SetDefault("map.title", "Minimum Wage by County in Washington State (CAD)")
	v.SetDefault("map.subtitle", "All Counties in Gold Shades - Richer Counties in Darker Gold")
	v.SetDefault("map.output", "washington_minimum_wage_cad_map.html")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger builds the global zap logger from config.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
