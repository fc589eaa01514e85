package assets

import (
	"context"
	"testing"

	"github.com/goliatone/go-assets/core"
	assetsquery "github.com/goliatone/go-assets/query"
)

func TestNewFacade_RequiresService(t *testing.T) {
	if _, err := NewFacade(nil); err == nil {
		t.Fatalf("expected nil service to be rejected")
	}
}

func TestFacade_QueriesResolveThroughService(t *testing.T) {
	client := core.EndpointClientFunc(func(context.Context, core.EndpointRequest) (core.Endpoint, error) {
		return core.Endpoint{
			Type: core.AssetType3DTiles,
			URL:  "https://assets.assetforge.io/124624234/tileset.json",
		}, nil
	})

	service, err := Setup(DefaultConfig(), WithEndpointClient(client))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	facade, err := NewFacade(service)
	if err != nil {
		t.Fatalf("new facade: %v", err)
	}

	queries := facade.Queries()
	if queries.ResolveResource == nil || queries.ResolveImageryProvider == nil || queries.ResolveEndpoint == nil {
		t.Fatalf("facade queries are incomplete: %+v", queries)
	}

	resource, err := queries.ResolveResource.Query(context.Background(), assetsquery.ResolveResourceMessage{
		Request: core.ResolveRequest{AssetID: 124624234},
	})
	if err != nil {
		t.Fatalf("resolve resource query: %v", err)
	}
	if resource.URL() != "https://assets.assetforge.io/124624234/tileset.json" {
		t.Fatalf("unexpected resource url: %q", resource.URL())
	}

	endpoint, err := queries.ResolveEndpoint.Query(context.Background(), assetsquery.ResolveEndpointMessage{
		Request: core.ResolveRequest{AssetID: 124624234},
	})
	if err != nil {
		t.Fatalf("resolve endpoint query: %v", err)
	}
	if endpoint.Type != core.AssetType3DTiles {
		t.Fatalf("unexpected descriptor: %+v", endpoint)
	}
}
