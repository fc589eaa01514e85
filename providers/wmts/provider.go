package wmts

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "WMTS"
	DefaultVersion      = "1.0.0"
	DefaultFormat       = "image/jpeg"
	DefaultStyle        = "default"
	DefaultMaximumLevel = 25
)

type Config struct {
	URL             string `json:"url"`
	Layer           string `json:"layer"`
	Style           string `json:"style"`
	TileMatrixSetID string `json:"tileMatrixSetID"`
	Format          string `json:"format"`
	MinimumLevel    int    `json:"minimumLevel"`
	MaximumLevel    int    `json:"maximumLevel"`
	Credit          string `json:"credit"`
}

type Provider struct {
	*providers.Tiled
}

func DefaultConfig() Config {
	return Config{
		Style:        DefaultStyle,
		Format:       DefaultFormat,
		MaximumLevel: DefaultMaximumLevel,
	}
}

func New(cfg Config) (core.ImageryProvider, error) {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("providers: url is required for provider %q", Kind)
	}
	if strings.TrimSpace(cfg.Layer) == "" {
		return nil, fmt.Errorf("providers: layer is required for provider %q", Kind)
	}
	if strings.TrimSpace(cfg.TileMatrixSetID) == "" {
		return nil, fmt.Errorf("providers: tile matrix set id is required for provider %q", Kind)
	}
	if strings.TrimSpace(cfg.Style) == "" {
		cfg.Style = defaults.Style
	}
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = defaults.Format
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}

	values := url.Values{}
	values.Set("service", "WMTS")
	values.Set("version", DefaultVersion)
	values.Set("request", "GetTile")
	values.Set("layer", cfg.Layer)
	values.Set("style", cfg.Style)
	values.Set("tilematrixset", cfg.TileMatrixSetID)
	values.Set("format", cfg.Format)

	separator := "?"
	if strings.Contains(cfg.URL, "?") {
		separator = "&"
	}
	template := cfg.URL + separator + values.Encode() +
		"&tilematrix={z}&tilerow={y}&tilecol={x}"

	tiled, err := providers.NewTiled(providers.TiledConfig{
		Kind:         Kind,
		URLTemplate:  template,
		MinimumLevel: cfg.MinimumLevel,
		MaximumLevel: cfg.MaximumLevel,
		Credit:       cfg.Credit,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{Tiled: tiled}, nil
}

func FromOptions(options core.ProviderOptions) (core.ImageryProvider, error) {
	var cfg Config
	if err := providers.DecodeOptions(options, &cfg); err != nil {
		return nil, err
	}
	return New(cfg)
}

var _ core.ImageryProvider = (*Provider)(nil)
