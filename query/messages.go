package query

import (
	"fmt"

	"github.com/goliatone/go-assets/core"
)

const (
	TypeResolveResource        = "assets.query.resource.resolve"
	TypeResolveImageryProvider = "assets.query.imagery_provider.resolve"
	TypeResolveEndpoint        = "assets.query.endpoint.resolve"
)

type ResolveResourceMessage struct {
	Request core.ResolveRequest
}

func (ResolveResourceMessage) Type() string { return TypeResolveResource }

func (m ResolveResourceMessage) Validate() error {
	return validateResolveRequest(m.Request)
}

type ResolveImageryProviderMessage struct {
	Request core.ResolveRequest
}

func (ResolveImageryProviderMessage) Type() string { return TypeResolveImageryProvider }

func (m ResolveImageryProviderMessage) Validate() error {
	return validateResolveRequest(m.Request)
}

type ResolveEndpointMessage struct {
	Request core.ResolveRequest
}

func (ResolveEndpointMessage) Type() string { return TypeResolveEndpoint }

func (m ResolveEndpointMessage) Validate() error {
	return validateResolveRequest(m.Request)
}

func validateResolveRequest(req core.ResolveRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
