package bing

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind            = "BING"
	DefaultURL      = "https://dev.virtualearth.net"
	DefaultMapStyle = "Aerial"
	DefaultCulture  = "en-US"

	// Quadkeys have one digit per level, so level 0 is unaddressable.
	minimumLevel        = 1
	DefaultMaximumLevel = 21
)

type Config struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	MapStyle     string `json:"mapStyle"`
	Culture      string `json:"culture"`
	MaximumLevel int    `json:"maximumLevel"`
	Credit       string `json:"credit"`
}

type Provider struct {
	*providers.Tiled
}

func DefaultConfig() Config {
	return Config{
		URL:          DefaultURL,
		MapStyle:     DefaultMapStyle,
		Culture:      DefaultCulture,
		MaximumLevel: DefaultMaximumLevel,
	}
}

func New(cfg Config) (core.ImageryProvider, error) {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, fmt.Errorf("providers: key is required for provider %q", Kind)
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = defaults.URL
	}
	if strings.TrimSpace(cfg.MapStyle) == "" {
		cfg.MapStyle = defaults.MapStyle
	}
	if strings.TrimSpace(cfg.Culture) == "" {
		cfg.Culture = defaults.Culture
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}

	template := fmt.Sprintf(
		"%s/REST/v1/Imagery/tiles/%s/{quadkey}?key=%s&culture=%s",
		strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/"),
		cfg.MapStyle,
		cfg.Key,
		cfg.Culture,
	)
	tiled, err := providers.NewTiled(providers.TiledConfig{
		Kind:         Kind,
		URLTemplate:  template,
		MinimumLevel: minimumLevel,
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
