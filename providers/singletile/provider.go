package singletile

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const Kind = "SINGLE_TILE"

type Config struct {
	URL        string `json:"url"`
	TileWidth  int    `json:"tileWidth"`
	TileHeight int    `json:"tileHeight"`
	Credit     string `json:"credit"`
}

// Provider serves one image as the entire pyramid: a single tile at level 0.
type Provider struct {
	cfg Config
}

func New(cfg Config) (core.ImageryProvider, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("providers: url is required for provider %q", Kind)
	}
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = providers.DefaultTileWidth
	}
	if cfg.TileHeight <= 0 {
		cfg.TileHeight = providers.DefaultTileHeight
	}
	return &Provider{cfg: cfg}, nil
}

func FromOptions(options core.ProviderOptions) (core.ImageryProvider, error) {
	var cfg Config
	if err := providers.DecodeOptions(options, &cfg); err != nil {
		return nil, err
	}
	return New(cfg)
}

func (p *Provider) Kind() string { return Kind }

func (p *Provider) TileWidth() int { return p.cfg.TileWidth }

func (p *Provider) TileHeight() int { return p.cfg.TileHeight }

func (p *Provider) MinimumLevel() int { return 0 }

func (p *Provider) MaximumLevel() int { return 0 }

func (p *Provider) Credit() string { return p.cfg.Credit }

func (p *Provider) TileURL(level, x, y int) (string, error) {
	if err := providers.CheckTileBounds(Kind, level, 0, 0, x, y); err != nil {
		return "", err
	}
	return p.cfg.URL, nil
}

var _ core.ImageryProvider = (*Provider)(nil)
