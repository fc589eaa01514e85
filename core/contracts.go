package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

// EndpointClient fetches the endpoint descriptor for a built request. It is
// the only suspension point in a resolution: everything after the fetch runs
// synchronously. Implementations live in the transport package; tests swap in
// deterministic stubs.
type EndpointClient interface {
	FetchEndpoint(ctx context.Context, req EndpointRequest) (Endpoint, error)
}

// EndpointClientFunc adapts a function to the EndpointClient contract.
type EndpointClientFunc func(ctx context.Context, req EndpointRequest) (Endpoint, error)

func (f EndpointClientFunc) FetchEndpoint(ctx context.Context, req EndpointRequest) (Endpoint, error) {
	return f(ctx, req)
}

// EndpointCache sits between the resolver and the endpoint client. A nil
// cache means every resolution fetches.
type EndpointCache interface {
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (Endpoint, error)) (Endpoint, error)
}

// ImageryProvider is a fully configured tile source. Construction happens in
// the provider family packages; once returned, ownership passes to the
// caller and the provider is never mutated by this module.
type ImageryProvider interface {
	Kind() string
	TileWidth() int
	TileHeight() int
	MinimumLevel() int
	MaximumLevel() int
	TileURL(level, x, y int) (string, error)
	Credit() string
}

// ImageryConstructor builds a provider from the endpoint options payload. The
// payload is passed through verbatim; each family decodes its own schema.
type ImageryConstructor func(options ProviderOptions) (ImageryProvider, error)

// NativeConstructor builds a provider for natively hosted imagery from the
// endpoint resource. Wired by the root package so core stays free of provider
// imports.
type NativeConstructor func(resource Resource, endpoint Endpoint) (ImageryProvider, error)

// Registry maps external type tags to imagery constructors. The builtin
// registry is closed after construction; Register exists so hosts can stand
// up their own table in tests or forks.
type Registry interface {
	Register(externalType ExternalType, constructor ImageryConstructor) error
	Get(externalType ExternalType) (ImageryConstructor, bool)
	Tags() []ExternalType
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
