package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DefaultServerURL = "https://api.assetforge.io"

type CacheConfig struct {
	Enabled  bool          `koanf:"enabled" mapstructure:"enabled"`
	Capacity int           `koanf:"capacity" mapstructure:"capacity"`
	Shards   int           `koanf:"shards" mapstructure:"shards"`
	TTL      time.Duration `koanf:"ttl" mapstructure:"ttl"`
}

type Config struct {
	ServerURL      string        `koanf:"server_url" mapstructure:"server_url"`
	AccessToken    string        `koanf:"access_token" mapstructure:"access_token"`
	RequestTimeout time.Duration `koanf:"request_timeout" mapstructure:"request_timeout"`
	Cache          CacheConfig   `koanf:"cache" mapstructure:"cache"`
}

func DefaultConfig() Config {
	return Config{
		ServerURL:      DefaultServerURL,
		RequestTimeout: 30 * time.Second,
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 256,
			Shards:   16,
			TTL:      5 * time.Minute,
		},
	}
}

func (c Config) Validate() error {
	server := strings.TrimSpace(c.ServerURL)
	if server == "" {
		return fmt.Errorf("%w: server_url is required", ErrInvalidServerURL)
	}
	parsed, err := url.Parse(server)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("%w: server_url must be absolute, got %q", ErrInvalidServerURL, server)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: server_url scheme must be http or https, got %q", ErrInvalidServerURL, parsed.Scheme)
	}
	return nil
}
