package wms

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "WMS"
	DefaultVersion      = "1.1.1"
	DefaultFormat       = "image/jpeg"
	DefaultSRS          = "EPSG:3857"
	DefaultMaximumLevel = 25

	webMercatorExtent = 20037508.342789244
)

type Config struct {
	URL          string            `json:"url"`
	Layers       string            `json:"layers"`
	Parameters   map[string]string `json:"parameters"`
	MinimumLevel int               `json:"minimumLevel"`
	MaximumLevel int               `json:"maximumLevel"`
	TileWidth    int               `json:"tileWidth"`
	TileHeight   int               `json:"tileHeight"`
	Credit       string            `json:"credit"`
}

// Provider issues GetMap KVP requests, one tile-sized bounding box per tile.
// It does not embed the tiled base because the tile address becomes a
// web-mercator bbox, not a template substitution.
type Provider struct {
	cfg Config
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
	if strings.TrimSpace(cfg.Layers) == "" {
		return nil, fmt.Errorf("providers: layers is required for provider %q", Kind)
	}
	if cfg.MaximumLevel <= 0 {
		cfg.MaximumLevel = defaults.MaximumLevel
	}
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = defaults.TileWidth
	}
	if cfg.TileHeight <= 0 {
		cfg.TileHeight = defaults.TileHeight
	}
	if cfg.MinimumLevel < 0 {
		return nil, fmt.Errorf("providers: minimum level must not be negative for provider %q", Kind)
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

func (p *Provider) MinimumLevel() int { return p.cfg.MinimumLevel }

func (p *Provider) MaximumLevel() int { return p.cfg.MaximumLevel }

func (p *Provider) Credit() string { return p.cfg.Credit }

func (p *Provider) TileURL(level, x, y int) (string, error) {
	if err := providers.CheckTileBounds(Kind, level, p.cfg.MinimumLevel, p.cfg.MaximumLevel, x, y); err != nil {
		return "", err
	}

	values := url.Values{}
	values.Set("service", "WMS")
	values.Set("version", DefaultVersion)
	values.Set("request", "GetMap")
	values.Set("styles", "")
	values.Set("format", DefaultFormat)
	values.Set("srs", DefaultSRS)
	values.Set("layers", p.cfg.Layers)
	values.Set("width", fmt.Sprintf("%d", p.cfg.TileWidth))
	values.Set("height", fmt.Sprintf("%d", p.cfg.TileHeight))
	values.Set("bbox", bboxForTile(level, x, y))

	// Caller-supplied parameters win, so hosts can pin version, format, or
	// vendor extensions.
	keys := make([]string, 0, len(p.cfg.Parameters))
	for key := range p.cfg.Parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		values.Set(strings.ToLower(key), p.cfg.Parameters[key])
	}

	separator := "?"
	if strings.Contains(p.cfg.URL, "?") {
		separator = "&"
	}
	return p.cfg.URL + separator + values.Encode(), nil
}

// bboxForTile computes the web-mercator bounding box of a slippy-map tile,
// minx,miny,maxx,maxy per the 1.1.1 axis order.
func bboxForTile(level, x, y int) string {
	extent := 1 << uint(level)
	span := 2 * webMercatorExtent / float64(extent)
	minX := -webMercatorExtent + float64(x)*span
	maxY := webMercatorExtent - float64(y)*span
	return fmt.Sprintf("%.8f,%.8f,%.8f,%.8f", minX, maxY-span, minX+span, maxY)
}

var _ core.ImageryProvider = (*Provider)(nil)
