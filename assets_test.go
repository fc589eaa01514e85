package assets

import (
	"context"
	"testing"

	"github.com/goliatone/go-assets/core"
)

func resetDefaults(t *testing.T) {
	t.Helper()
	defaultsMu.Lock()
	defaultConfig = core.DefaultConfig()
	defaultService = nil
	defaultsMu.Unlock()
}

func TestSetDefaultServerURL_Validation(t *testing.T) {
	resetDefaults(t)
	defer resetDefaults(t)

	if err := SetDefaultServerURL("not-a-url"); err == nil {
		t.Fatalf("expected relative url to be rejected")
	}
	if got := DefaultServerURL(); got != core.DefaultServerURL {
		t.Fatalf("rejected url must not stick: %q", got)
	}

	if err := SetDefaultServerURL("https://staging.assetforge.io"); err != nil {
		t.Fatalf("set default server url: %v", err)
	}
	if got := DefaultServerURL(); got != "https://staging.assetforge.io" {
		t.Fatalf("unexpected default server url: %q", got)
	}
}

func TestDefault_RebuildsAfterSetterChanges(t *testing.T) {
	resetDefaults(t)
	defer resetDefaults(t)

	first, err := Default()
	if err != nil {
		t.Fatalf("default service: %v", err)
	}
	again, err := Default()
	if err != nil {
		t.Fatalf("default service: %v", err)
	}
	if first != again {
		t.Fatalf("default service must be memoized")
	}

	SetDefaultAccessToken("new-token")
	rebuilt, err := Default()
	if err != nil {
		t.Fatalf("default service: %v", err)
	}
	if rebuilt == first {
		t.Fatalf("default service must be rebuilt after a token change")
	}
	if rebuilt.Config().AccessToken != "new-token" {
		t.Fatalf("rebuilt service lost the token: %q", rebuilt.Config().AccessToken)
	}
	if DefaultAccessToken() != "new-token" {
		t.Fatalf("unexpected default token: %q", DefaultAccessToken())
	}
}

func TestCreateResource_PerCallOverrides(t *testing.T) {
	resetDefaults(t)
	defer resetDefaults(t)

	var seen core.EndpointRequest
	client := core.EndpointClientFunc(func(_ context.Context, req core.EndpointRequest) (core.Endpoint, error) {
		seen = req
		return core.Endpoint{
			Type: core.AssetType3DTiles,
			URL:  "https://assets.assetforge.io/124624234/tileset.json",
		}, nil
	})

	service, err := Setup(DefaultConfig(), WithEndpointClient(client))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defaultsMu.Lock()
	defaultService = service
	defaultsMu.Unlock()

	resource, err := CreateResource(context.Background(), 124624234,
		WithAccessToken("call-token"),
		WithServerURL("https://staging.assetforge.io"),
	)
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	if seen.URL != "https://staging.assetforge.io/v1/assets/124624234/endpoint" {
		t.Fatalf("server override did not reach the lookup: %q", seen.URL)
	}
	if seen.QueryParameters["access_token"] != "call-token" {
		t.Fatalf("token override did not reach the lookup: %v", seen.QueryParameters)
	}
	if resource.URL() != "https://assets.assetforge.io/124624234/tileset.json" {
		t.Fatalf("unexpected resource url: %q", resource.URL())
	}

	if DefaultAccessToken() != "" || DefaultServerURL() != core.DefaultServerURL {
		t.Fatalf("per-call overrides must not touch the process-wide defaults")
	}
}

func TestSetup_WiresResolutionPipeline(t *testing.T) {
	client := core.EndpointClientFunc(func(context.Context, core.EndpointRequest) (core.Endpoint, error) {
		return core.Endpoint{
			Type:         core.AssetTypeImagery,
			ExternalType: core.ExternalTypeBing,
			Options:      core.ProviderOptions{"key": "abc"},
		}, nil
	})

	service, err := Setup(DefaultConfig(), WithEndpointClient(client))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	provider, err := service.ResolveImageryProvider(context.Background(), ResolveRequest{AssetID: 2347923})
	if err != nil {
		t.Fatalf("resolve imagery provider: %v", err)
	}
	if provider.Kind() != "BING" {
		t.Fatalf("unexpected provider kind: %q", provider.Kind())
	}
}

func TestSetup_NativeImageryUsesHostedProvider(t *testing.T) {
	client := core.EndpointClientFunc(func(context.Context, core.EndpointRequest) (core.Endpoint, error) {
		return core.Endpoint{
			Type:        core.AssetTypeImagery,
			URL:         "https://assets.assetforge.io/88",
			AccessToken: "minted",
		}, nil
	})

	service, err := Setup(DefaultConfig(), WithEndpointClient(client))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	provider, err := service.ResolveImageryProvider(context.Background(), ResolveRequest{AssetID: 88})
	if err != nil {
		t.Fatalf("resolve imagery provider: %v", err)
	}
	if provider.Kind() != "HOSTED" {
		t.Fatalf("unexpected provider kind: %q", provider.Kind())
	}
	tile, err := provider.TileURL(0, 0, 0)
	if err != nil {
		t.Fatalf("tile url: %v", err)
	}
	if tile != "https://assets.assetforge.io/88/0/0/0.png?access_token=minted" {
		t.Fatalf("unexpected tile url: %q", tile)
	}
}
