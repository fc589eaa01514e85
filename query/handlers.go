package query

import (
	"context"

	"github.com/goliatone/go-assets/core"
)

// ResolutionService is the read surface the query handlers wrap.
type ResolutionService interface {
	ResolveResource(ctx context.Context, req core.ResolveRequest) (core.Resource, error)
	ResolveImageryProvider(ctx context.Context, req core.ResolveRequest) (core.ImageryProvider, error)
	ResolveEndpoint(ctx context.Context, req core.ResolveRequest) (core.Endpoint, error)
}

type ResolveResourceQuery struct {
	service ResolutionService
}

func NewResolveResourceQuery(service ResolutionService) *ResolveResourceQuery {
	return &ResolveResourceQuery{service: service}
}

func (q *ResolveResourceQuery) Query(ctx context.Context, msg ResolveResourceMessage) (core.Resource, error) {
	if q == nil || q.service == nil {
		return core.Resource{}, queryDependencyError("query: resolution service is required")
	}
	return q.service.ResolveResource(ctx, msg.Request)
}

type ResolveImageryProviderQuery struct {
	service ResolutionService
}

func NewResolveImageryProviderQuery(service ResolutionService) *ResolveImageryProviderQuery {
	return &ResolveImageryProviderQuery{service: service}
}

func (q *ResolveImageryProviderQuery) Query(
	ctx context.Context,
	msg ResolveImageryProviderMessage,
) (core.ImageryProvider, error) {
	if q == nil || q.service == nil {
		return nil, queryDependencyError("query: resolution service is required")
	}
	return q.service.ResolveImageryProvider(ctx, msg.Request)
}

type ResolveEndpointQuery struct {
	service ResolutionService
}

func NewResolveEndpointQuery(service ResolutionService) *ResolveEndpointQuery {
	return &ResolveEndpointQuery{service: service}
}

func (q *ResolveEndpointQuery) Query(ctx context.Context, msg ResolveEndpointMessage) (core.Endpoint, error) {
	if q == nil || q.service == nil {
		return core.Endpoint{}, queryDependencyError("query: resolution service is required")
	}
	return q.service.ResolveEndpoint(ctx, msg.Request)
}
