package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

// Service is the endpoint-resolution and type-dispatch pipeline. It is safe
// for concurrent use: config is read-only after construction and the
// constructor registry is only read at resolution time.
type Service struct {
	config            Config
	logger            Logger
	loggerProvider    LoggerProvider
	metricsRecorder   MetricsRecorder
	errorFactory      ErrorFactory
	errorMapper       ErrorMapper
	endpointClient    EndpointClient
	endpointCache     EndpointCache
	registry          Registry
	nativeConstructor NativeConstructor
	configProvider    ConfigProvider
	optionsResolver   OptionsResolver
}

type ServiceDependencies struct {
	Logger            Logger
	LoggerProvider    LoggerProvider
	MetricsRecorder   MetricsRecorder
	ErrorFactory      ErrorFactory
	ErrorMapper       ErrorMapper
	EndpointClient    EndpointClient
	EndpointCache     EndpointCache
	Registry          Registry
	NativeConstructor NativeConstructor
	ConfigProvider    ConfigProvider
	OptionsResolver   OptionsResolver
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("assets", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("assets"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorFactory == nil {
		builder.errorFactory = goerrors.New
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.registry == nil {
		builder.registry = NewConstructorRegistry()
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	return &Service{
		config:            finalConfig,
		logger:            logger,
		loggerProvider:    provider,
		metricsRecorder:   builder.metricsRecorder,
		errorFactory:      builder.errorFactory,
		errorMapper:       builder.errorMapper,
		endpointClient:    builder.endpointClient,
		endpointCache:     builder.endpointCache,
		registry:          builder.registry,
		nativeConstructor: builder.nativeConstructor,
		configProvider:    builder.configProvider,
		optionsResolver:   builder.optionsResolver,
	}, nil
}

func New(cfg Config, options ...Option) (*Service, error) {
	return NewService(cfg, options...)
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Dependencies() ServiceDependencies {
	if s == nil {
		return ServiceDependencies{}
	}
	return ServiceDependencies{
		Logger:            s.logger,
		LoggerProvider:    s.loggerProvider,
		MetricsRecorder:   s.metricsRecorder,
		ErrorFactory:      s.errorFactory,
		ErrorMapper:       s.errorMapper,
		EndpointClient:    s.endpointClient,
		EndpointCache:     s.endpointCache,
		Registry:          s.registry,
		NativeConstructor: s.nativeConstructor,
		ConfigProvider:    s.configProvider,
		OptionsResolver:   s.optionsResolver,
	}
}

// ResolveResource resolves an asset id into a generic authenticated resource
// handle. External imagery kinds are rejected; only natively hosted assets
// and the bare-URL external kinds are representable this way.
func (s *Service) ResolveResource(ctx context.Context, req ResolveRequest) (resource Resource, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"asset_id": req.AssetID,
	}
	defer func() {
		s.observeOperation(ctx, startedAt, "resolve_resource", err, fields)
	}()

	endpoint, endpointReq, err := s.fetchEndpoint(ctx, req, fields)
	if err != nil {
		return Resource{}, err
	}

	switch {
	case endpoint.ExternalType == ExternalTypeNone:
		resource, err = ResourceFromEndpoint(endpoint, endpointReq)
	// Imagery never degrades to a bare URL, even for allow-listed external
	// kinds; it carries tiling configuration only a provider can express.
	case endpoint.Type != AssetTypeImagery && endpoint.ExternalType.BareResource():
		resource, err = BareResourceFromOptions(endpoint)
	default:
		err = notResourceError(req.AssetID, endpoint.ExternalType)
		return Resource{}, err
	}
	if err != nil {
		err = s.mapError(err)
		return Resource{}, err
	}
	return resource, nil
}

// ResolveImageryProvider resolves an asset id into a configured imagery
// provider. Natively hosted imagery goes through the native constructor;
// externally hosted imagery dispatches on the descriptor's external type.
func (s *Service) ResolveImageryProvider(ctx context.Context, req ResolveRequest) (provider ImageryProvider, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"asset_id": req.AssetID,
	}
	defer func() {
		s.observeOperation(ctx, startedAt, "resolve_imagery_provider", err, fields)
	}()

	endpoint, endpointReq, err := s.fetchEndpoint(ctx, req, fields)
	if err != nil {
		return nil, err
	}

	if endpoint.Type != AssetTypeImagery {
		err = wrongAssetTypeError(req.AssetID, endpoint.Type)
		return nil, err
	}

	if endpoint.ExternalType == ExternalTypeNone {
		if s.nativeConstructor == nil {
			err = dependencyError("core: native imagery constructor is required")
			return nil, err
		}
		var resource Resource
		resource, err = ResourceFromEndpoint(endpoint, endpointReq)
		if err != nil {
			err = s.mapError(err)
			return nil, err
		}
		provider, err = s.nativeConstructor(resource, endpoint)
		if err != nil {
			err = s.mapError(err)
			return nil, err
		}
		return provider, nil
	}

	if s.registry == nil {
		err = dependencyError("core: imagery constructor registry is required")
		return nil, err
	}
	constructor, ok := s.registry.Get(endpoint.ExternalType)
	if !ok {
		err = unknownExternalTypeError(req.AssetID, endpoint.ExternalType)
		return nil, err
	}
	provider, err = constructor(endpoint.Options)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	return provider, nil
}

// ResolveEndpoint exposes the raw descriptor for hosts that need the
// untranslated document.
func (s *Service) ResolveEndpoint(ctx context.Context, req ResolveRequest) (endpoint Endpoint, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"asset_id": req.AssetID,
	}
	defer func() {
		s.observeOperation(ctx, startedAt, "resolve_endpoint", err, fields)
	}()

	endpoint, _, err = s.fetchEndpoint(ctx, req, fields)
	return endpoint, err
}

func (s *Service) fetchEndpoint(
	ctx context.Context,
	req ResolveRequest,
	fields map[string]any,
) (Endpoint, EndpointRequest, error) {
	if s == nil || s.endpointClient == nil {
		return Endpoint{}, EndpointRequest{}, dependencyError("core: endpoint client is required")
	}

	endpointReq, err := BuildEndpointRequest(s.config, req)
	if err != nil {
		return Endpoint{}, EndpointRequest{}, s.mapError(err)
	}

	fetch := func(ctx context.Context) (Endpoint, error) {
		return s.endpointClient.FetchEndpoint(ctx, endpointReq)
	}

	var endpoint Endpoint
	if s.endpointCache != nil {
		endpoint, err = s.endpointCache.GetOrFetch(ctx, endpointReq.CacheKey(), fetch)
	} else {
		endpoint, err = fetch(ctx)
	}
	if err != nil {
		return Endpoint{}, EndpointRequest{}, s.mapError(err)
	}
	if err := endpoint.Validate(); err != nil {
		return Endpoint{}, EndpointRequest{}, s.mapError(err)
	}

	fields["asset_type"] = string(endpoint.Type)
	if endpoint.ExternalType != ExternalTypeNone {
		fields["external_type"] = string(endpoint.ExternalType)
	}
	return endpoint, endpointReq, nil
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}
	mapper := defaultErrorMapper
	if s != nil && s.errorMapper != nil {
		mapper = s.errorMapper
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func dependencyError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(AssetErrorInternal)
}

func notResourceError(assetID int64, externalType ExternalType) error {
	message := fmt.Sprintf(
		"core: asset %s is hosted externally as %s and cannot be represented as a resource; use the imagery provider entry point",
		formatAssetID(assetID), externalType,
	)
	return goerrors.New(message, goerrors.CategoryOperation).
		WithCode(http.StatusUnprocessableEntity).
		WithTextCode(AssetErrorNotResource)
}

func wrongAssetTypeError(assetID int64, assetType AssetType) error {
	message := fmt.Sprintf(
		"core: asset %s is not an imagery asset, got type %s",
		formatAssetID(assetID), assetType,
	)
	return goerrors.New(message, goerrors.CategoryOperation).
		WithCode(http.StatusUnprocessableEntity).
		WithTextCode(AssetErrorWrongAssetType)
}

func unknownExternalTypeError(assetID int64, externalType ExternalType) error {
	message := fmt.Sprintf(
		"core: external type %q for asset %s is not registered",
		externalType, formatAssetID(assetID),
	)
	return goerrors.New(message, goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(AssetErrorUnknownExternalType)
}
