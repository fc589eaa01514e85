package assets

import (
	"context"
	"sync"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers/hosted"
	"github.com/goliatone/go-assets/store"
	"github.com/goliatone/go-assets/transport"
)

type Config = core.Config

type CacheConfig = core.CacheConfig

type Option = core.Option

type Service = core.Service

type ServiceDependencies = core.ServiceDependencies

type AssetType = core.AssetType
type ExternalType = core.ExternalType
type Attribution = core.Attribution
type Endpoint = core.Endpoint
type ProviderOptions = core.ProviderOptions
type Resource = core.Resource
type ResolveRequest = core.ResolveRequest

type ImageryProvider = core.ImageryProvider
type ImageryConstructor = core.ImageryConstructor
type Registry = core.Registry
type EndpointClient = core.EndpointClient
type EndpointCache = core.EndpointCache

var (
	WithLogger            = core.WithLogger
	WithLoggerProvider    = core.WithLoggerProvider
	WithMetricsRecorder   = core.WithMetricsRecorder
	WithErrorFactory      = core.WithErrorFactory
	WithErrorMapper       = core.WithErrorMapper
	WithEndpointClient    = core.WithEndpointClient
	WithEndpointCache     = core.WithEndpointCache
	WithRegistry          = core.WithRegistry
	WithNativeConstructor = core.WithNativeConstructor
	WithConfigProvider    = core.WithConfigProvider
	WithOptionsResolver   = core.WithOptionsResolver
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}

// Setup builds a service wired with the default transport client, the
// endpoint descriptor cache, the builtin imagery registry, and the hosted
// native constructor. Caller options run last and may replace any of them.
func Setup(cfg Config, opts ...Option) (*Service, error) {
	registry, err := BuiltinImageryRegistry()
	if err != nil {
		return nil, err
	}

	transportCfg := transport.DefaultConfig()
	if cfg.RequestTimeout > 0 {
		transportCfg.Timeout = cfg.RequestTimeout
	}

	wired := []Option{
		WithEndpointClient(transport.New(transportCfg)),
		WithRegistry(registry),
		WithNativeConstructor(hosted.New),
	}
	if cfg.Cache.Enabled {
		wired = append(wired, WithEndpointCache(store.NewEndpointCache(cfg.Cache)))
	}
	wired = append(wired, opts...)

	return core.NewService(cfg, wired...)
}

var (
	defaultsMu     sync.Mutex
	defaultConfig  = core.DefaultConfig()
	defaultService *core.Service
)

// SetDefaultAccessToken sets the token used by the package-level resolution
// helpers. It does not affect services built explicitly via Setup.
func SetDefaultAccessToken(token string) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if defaultConfig.AccessToken == token {
		return
	}
	defaultConfig.AccessToken = token
	defaultService = nil
}

func DefaultAccessToken() string {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultConfig.AccessToken
}

// SetDefaultServerURL sets the API base used by the package-level resolution
// helpers. The URL must be absolute http(s).
func SetDefaultServerURL(serverURL string) error {
	candidate := core.DefaultConfig()
	candidate.ServerURL = serverURL
	if err := candidate.Validate(); err != nil {
		return err
	}

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if defaultConfig.ServerURL == serverURL {
		return nil
	}
	defaultConfig.ServerURL = serverURL
	defaultService = nil
	return nil
}

func DefaultServerURL() string {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultConfig.ServerURL
}

// Default returns the lazily built process-wide service. The instance is
// rebuilt after SetDefaultAccessToken or SetDefaultServerURL changes state.
func Default() (*Service, error) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if defaultService != nil {
		return defaultService, nil
	}
	service, err := Setup(defaultConfig)
	if err != nil {
		return nil, err
	}
	defaultService = service
	return defaultService, nil
}

// ResolveOption overrides one request field for a single package-level
// resolution; the process-wide defaults are untouched.
type ResolveOption func(*ResolveRequest)

func WithAccessToken(token string) ResolveOption {
	return func(req *ResolveRequest) {
		req.AccessToken = token
	}
}

func WithServerURL(serverURL string) ResolveOption {
	return func(req *ResolveRequest) {
		req.ServerURL = serverURL
	}
}

func resolveRequest(assetID int64, opts []ResolveOption) ResolveRequest {
	req := ResolveRequest{AssetID: assetID}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&req)
	}
	return req
}

// CreateResource resolves an asset id into a generic authenticated resource
// handle using the process-wide defaults, with optional per-call overrides.
func CreateResource(ctx context.Context, assetID int64, opts ...ResolveOption) (Resource, error) {
	service, err := Default()
	if err != nil {
		return Resource{}, err
	}
	return service.ResolveResource(ctx, resolveRequest(assetID, opts))
}

// CreateImageryProvider resolves an imagery asset id into a configured
// provider using the process-wide defaults, with optional per-call overrides.
func CreateImageryProvider(ctx context.Context, assetID int64, opts ...ResolveOption) (ImageryProvider, error) {
	service, err := Default()
	if err != nil {
		return nil, err
	}
	return service.ResolveImageryProvider(ctx, resolveRequest(assetID, opts))
}

// CreateEndpoint fetches the raw endpoint descriptor for an asset id using
// the process-wide defaults, with optional per-call overrides.
func CreateEndpoint(ctx context.Context, assetID int64, opts ...ResolveOption) (Endpoint, error) {
	service, err := Default()
	if err != nil {
		return Endpoint{}, err
	}
	return service.ResolveEndpoint(ctx, resolveRequest(assetID, opts))
}
