package assets

import (
	"fmt"

	assetsquery "github.com/goliatone/go-assets/query"
)

// Queries bundles the typed query handlers over a resolution service.
type Queries struct {
	ResolveResource        *assetsquery.ResolveResourceQuery
	ResolveImageryProvider *assetsquery.ResolveImageryProviderQuery
	ResolveEndpoint        *assetsquery.ResolveEndpointQuery
}

type Facade struct {
	service assetsquery.ResolutionService
	queries Queries
}

func NewFacade(service assetsquery.ResolutionService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("assets: resolution service is required")
	}
	facade := &Facade{service: service}
	facade.queries = Queries{
		ResolveResource:        assetsquery.NewResolveResourceQuery(service),
		ResolveImageryProvider: assetsquery.NewResolveImageryProviderQuery(service),
		ResolveEndpoint:        assetsquery.NewResolveEndpointQuery(service),
	}
	return facade, nil
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() assetsquery.ResolutionService {
	if f == nil {
		return nil
	}
	return f.service
}
