package tms

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                 = "TMS"
	DefaultFileExtension = "png"
	DefaultMaximumLevel  = 25
)

// Config follows the tile-map-service layout: origin at the bottom left, so
// the row index is flipped relative to the slippy-map convention.
type Config struct {
	URL           string `json:"url"`
	FileExtension string `json:"fileExtension"`
	MinimumLevel  int    `json:"minimumLevel"`
	MaximumLevel  int    `json:"maximumLevel"`
	Credit        string `json:"credit"`
}

type Provider struct {
	*providers.Tiled
}

func DefaultConfig() Config {
	return Config{
		FileExtension: DefaultFileExtension,
		MaximumLevel:  DefaultMaximumLevel,
	}
}

func New(cfg Config) (core.ImageryProvider, error) {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("providers: url is required for provider %q", Kind)
	}
	extension := strings.TrimPrefix(strings.TrimSpace(cfg.FileExtension), ".")
	if extension == "" {
		extension = defaults.FileExtension
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}

	template := strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/") + "/{z}/{x}/{reverseY}." + extension
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
