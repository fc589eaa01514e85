package googleearth

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "GOOGLE_EARTH_ENTERPRISE"
	DefaultMaximumLevel = 23
)

type Config struct {
	URL          string `json:"url"`
	Channel      int    `json:"channel"`
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
	if cfg.Channel <= 0 {
		return nil, fmt.Errorf("providers: channel is required for provider %q", Kind)
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}

	template := fmt.Sprintf(
		"%s/query?request=ImageryMaps&channel=%d&version=1&x={x}&y={y}&z={z}",
		strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/"),
		cfg.Channel,
	)
	tiled, err := providers.NewTiled(providers.TiledConfig{
		Kind:         Kind,
		URLTemplate:  template,
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
