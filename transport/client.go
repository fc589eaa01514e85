package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-assets/core"
)

const defaultUserAgent = "go-assets"

type Config struct {
	Timeout          time.Duration `koanf:"timeout" mapstructure:"timeout"`
	RetryCount       int           `koanf:"retry_count" mapstructure:"retry_count"`
	RetryWaitTime    time.Duration `koanf:"retry_wait_time" mapstructure:"retry_wait_time"`
	RetryMaxWaitTime time.Duration `koanf:"retry_max_wait_time" mapstructure:"retry_max_wait_time"`
	UserAgent        string        `koanf:"user_agent" mapstructure:"user_agent"`
	Debug            bool          `koanf:"debug" mapstructure:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Timeout:          30 * time.Second,
		RetryCount:       3,
		RetryWaitTime:    100 * time.Millisecond,
		RetryMaxWaitTime: 2 * time.Second,
		UserAgent:        defaultUserAgent,
	}
}

// Client fetches endpoint descriptors over HTTP. It satisfies
// core.EndpointClient and is safe for concurrent use.
type Client struct {
	client *resty.Client
	logger core.Logger
}

type Option func(*Client)

func WithLogger(logger core.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithRestyClient(client *resty.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

func New(cfg Config, opts ...Option) *Client {
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}
	if cfg.RetryWaitTime <= 0 {
		cfg.RetryWaitTime = defaults.RetryWaitTime
	}
	if cfg.RetryMaxWaitTime <= 0 {
		cfg.RetryMaxWaitTime = defaults.RetryMaxWaitTime
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}

	client := &Client{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(client)
	}
	client.logger = glog.Ensure(client.logger)

	if client.client == nil {
		restyClient := resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", cfg.UserAgent).
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(cfg.RetryWaitTime).
			SetRetryMaxWaitTime(cfg.RetryMaxWaitTime)
		restyClient.AddRetryCondition(retryCondition)
		if cfg.Debug {
			restyClient.SetDebug(true)
		}
		client.client = restyClient
	}
	return client
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

// FetchEndpoint performs the descriptor lookup GET. The request carries its
// own auth query parameters; nothing is added here beyond correlation
// headers. Failures are not swallowed; they come back wrapped in the asset
// error envelope.
func (c *Client) FetchEndpoint(ctx context.Context, req core.EndpointRequest) (core.Endpoint, error) {
	requestID := uuid.NewString()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParams(req.QueryParameters).
		Get(req.URL)
	if err != nil {
		return core.Endpoint{}, fetchError(req, err)
	}
	if resp.StatusCode() >= 400 {
		return core.Endpoint{}, statusError(req, resp.StatusCode(), resp.String())
	}

	var endpoint core.Endpoint
	if err := json.Unmarshal(resp.Body(), &endpoint); err != nil {
		return core.Endpoint{}, decodeError(req, err)
	}

	c.logger.WithContext(ctx).Debug("endpoint fetch completed",
		"asset_id", req.AssetID,
		"status", resp.StatusCode(),
		"request_id", requestID,
		"external_type", string(endpoint.ExternalType),
	)
	return endpoint, nil
}

var _ core.EndpointClient = (*Client)(nil)
