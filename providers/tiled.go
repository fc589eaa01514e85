package providers

import (
	"fmt"
	"strings"
)

const (
	DefaultTileWidth  = 256
	DefaultTileHeight = 256
)

// TiledConfig describes a template-addressed tile pyramid. URLTemplate
// placeholders: {z}, {x}, {y}, {reverseY}, {quadkey}, and {s} for subdomain
// rotation.
type TiledConfig struct {
	Kind         string
	URLTemplate  string
	Subdomains   []string
	TileWidth    int
	TileHeight   int
	MinimumLevel int
	MaximumLevel int
	Credit       string
}

// Tiled is the shared base for template-addressed imagery families. It owns
// grid bounds checking and placeholder expansion; family packages translate
// their options schema into a TiledConfig.
type Tiled struct {
	cfg TiledConfig
}

func NewTiled(cfg TiledConfig) (*Tiled, error) {
	cfg.Kind = strings.TrimSpace(cfg.Kind)
	if cfg.Kind == "" {
		return nil, fmt.Errorf("providers: provider kind is required")
	}
	cfg.URLTemplate = strings.TrimSpace(cfg.URLTemplate)
	if cfg.URLTemplate == "" {
		return nil, fmt.Errorf("providers: url template is required for provider %q", cfg.Kind)
	}
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = DefaultTileWidth
	}
	if cfg.TileHeight <= 0 {
		cfg.TileHeight = DefaultTileHeight
	}
	if cfg.MinimumLevel < 0 {
		return nil, fmt.Errorf("providers: minimum level must not be negative for provider %q", cfg.Kind)
	}
	if cfg.MaximumLevel < cfg.MinimumLevel {
		return nil, fmt.Errorf(
			"providers: maximum level %d below minimum level %d for provider %q",
			cfg.MaximumLevel, cfg.MinimumLevel, cfg.Kind,
		)
	}
	subdomains := make([]string, 0, len(cfg.Subdomains))
	for _, subdomain := range cfg.Subdomains {
		if trimmed := strings.TrimSpace(subdomain); trimmed != "" {
			subdomains = append(subdomains, trimmed)
		}
	}
	cfg.Subdomains = subdomains
	return &Tiled{cfg: cfg}, nil
}

func (t *Tiled) Kind() string {
	if t == nil {
		return ""
	}
	return t.cfg.Kind
}

func (t *Tiled) TileWidth() int {
	return t.cfg.TileWidth
}

func (t *Tiled) TileHeight() int {
	return t.cfg.TileHeight
}

func (t *Tiled) MinimumLevel() int {
	return t.cfg.MinimumLevel
}

func (t *Tiled) MaximumLevel() int {
	return t.cfg.MaximumLevel
}

func (t *Tiled) Credit() string {
	return t.cfg.Credit
}

// TileURL expands the template for one tile address after bounds checking
// against the level range and the 2^level grid.
func (t *Tiled) TileURL(level, x, y int) (string, error) {
	if t == nil {
		return "", fmt.Errorf("providers: tiled provider is nil")
	}
	if err := CheckTileBounds(t.cfg.Kind, level, t.cfg.MinimumLevel, t.cfg.MaximumLevel, x, y); err != nil {
		return "", err
	}
	extent := 1 << uint(level)

	replacements := []string{
		"{z}", fmt.Sprintf("%d", level),
		"{x}", fmt.Sprintf("%d", x),
		"{y}", fmt.Sprintf("%d", y),
		"{reverseY}", fmt.Sprintf("%d", extent-1-y),
	}
	if strings.Contains(t.cfg.URLTemplate, "{quadkey}") {
		replacements = append(replacements, "{quadkey}", QuadKey(level, x, y))
	}
	if len(t.cfg.Subdomains) > 0 {
		index := (x + y + level) % len(t.cfg.Subdomains)
		replacements = append(replacements, "{s}", t.cfg.Subdomains[index])
	}
	return strings.NewReplacer(replacements...).Replace(t.cfg.URLTemplate), nil
}

// CheckTileBounds validates a tile address against the level range and the
// 2^level grid.
func CheckTileBounds(kind string, level, minLevel, maxLevel, x, y int) error {
	if level < minLevel || level > maxLevel {
		return fmt.Errorf(
			"providers: level %d outside [%d, %d] for provider %q",
			level, minLevel, maxLevel, kind,
		)
	}
	extent := 1 << uint(level)
	if x < 0 || x >= extent || y < 0 || y >= extent {
		return fmt.Errorf(
			"providers: tile (%d, %d) outside %dx%d grid at level %d for provider %q",
			x, y, extent, extent, level, kind,
		)
	}
	return nil
}

// QuadKey encodes a tile address as a quadtree key, most significant level
// first. Level 0 has no digits, so the minimum usable level for quadkey
// templates is 1.
func QuadKey(level, x, y int) string {
	var builder strings.Builder
	for i := level; i > 0; i-- {
		digit := byte('0')
		mask := 1 << uint(i-1)
		if x&mask != 0 {
			digit++
		}
		if y&mask != 0 {
			digit += 2
		}
		builder.WriteByte(digit)
	}
	return builder.String()
}
