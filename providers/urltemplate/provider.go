package urltemplate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "URL_TEMPLATE"
	DefaultMaximumLevel = 25
)

type Config struct {
	URL          string   `json:"url"`
	Subdomains   []string `json:"subdomains"`
	MinimumLevel int      `json:"minimumLevel"`
	MaximumLevel int      `json:"maximumLevel"`
	TileWidth    int      `json:"tileWidth"`
	TileHeight   int      `json:"tileHeight"`
	Credit       string   `json:"credit"`
}

type Provider struct {
	*providers.Tiled
}

func DefaultConfig() Config {
	return Config{
		MaximumLevel: DefaultMaximumLevel,
		TileWidth:    providers.DefaultTileWidth,
		TileHeight:   providers.DefaultTileHeight,
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

	tiled, err := providers.NewTiled(providers.TiledConfig{
		Kind:         Kind,
		URLTemplate:  cfg.URL,
		Subdomains:   cfg.Subdomains,
		TileWidth:    cfg.TileWidth,
		TileHeight:   cfg.TileHeight,
		MinimumLevel: cfg.MinimumLevel,
		MaximumLevel: cfg.MaximumLevel,
		Credit:       cfg.Credit,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{Tiled: tiled}, nil
}

// FromOptions builds the provider straight from the endpoint options
// payload.
func FromOptions(options core.ProviderOptions) (core.ImageryProvider, error) {
	var cfg Config
	if err := providers.DecodeOptions(options, &cfg); err != nil {
		return nil, err
	}
	return New(cfg)
}

var _ core.ImageryProvider = (*Provider)(nil)
