package singletile

import (
	"testing"

	"github.com/goliatone/go-assets/core"
)

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected missing url to fail")
	}
}

func TestTileURL_SingleTileAtLevelZero(t *testing.T) {
	provider, err := New(Config{URL: "https://images.example.com/world.png"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	got, err := provider.TileURL(0, 0, 0)
	if err != nil {
		t.Fatalf("tile url: %v", err)
	}
	if got != "https://images.example.com/world.png" {
		t.Fatalf("unexpected tile url: %q", got)
	}

	if _, err := provider.TileURL(1, 0, 0); err == nil {
		t.Fatalf("expected level 1 to be rejected")
	}
	if _, err := provider.TileURL(0, 1, 0); err == nil {
		t.Fatalf("expected column 1 to be rejected at level 0")
	}
}

func TestFromOptions(t *testing.T) {
	provider, err := FromOptions(core.ProviderOptions{
		"url":        "https://images.example.com/world.png",
		"tileWidth":  1024,
		"tileHeight": 512,
		"credit":     "Imagery Co",
	})
	if err != nil {
		t.Fatalf("from options: %v", err)
	}
	if provider.TileWidth() != 1024 || provider.TileHeight() != 512 {
		t.Fatalf("unexpected tile size: %dx%d", provider.TileWidth(), provider.TileHeight())
	}
	if provider.Credit() != "Imagery Co" {
		t.Fatalf("unexpected credit: %q", provider.Credit())
	}
}
