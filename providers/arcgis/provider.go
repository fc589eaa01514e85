package arcgis

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "ARCGIS_MAPSERVER"
	DefaultMaximumLevel = 21
)

type Config struct {
	URL          string `json:"url"`
	Token        string `json:"token"`
	MinimumLevel int    `json:"minimumLevel"`
	MaximumLevel int    `json:"maximumLevel"`
	Credit       string `json:"credit"`
}

type Provider struct {
	*providers.Tiled
}

func DefaultConfig() Config {
	return Config{
		MaximumLevel: DefaultMaximumLevel,
	}
}

func New(cfg Config) (core.ImageryProvider, error) {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("providers: url is required for provider %q", Kind)
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}

	// MapServer tile layout is level/row/column.
	template := strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/") + "/tile/{z}/{y}/{x}"
	if token := strings.TrimSpace(cfg.Token); token != "" {
		template += "?token=" + token
	}
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
