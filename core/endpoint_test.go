package core

import (
	"strings"
	"testing"
)

func TestBuildEndpointRequest_TokenFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AccessToken = "cfg-token"

	req, err := BuildEndpointRequest(cfg, ResolveRequest{AssetID: 124624234})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if req.URL != "https://api.assetforge.io/v1/assets/124624234/endpoint" {
		t.Fatalf("unexpected url: %q", req.URL)
	}
	if req.QueryParameters["access_token"] != "cfg-token" {
		t.Fatalf("unexpected query parameters: %v", req.QueryParameters)
	}
}

func TestBuildEndpointRequest_OverridesWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AccessToken = "cfg-token"

	req, err := BuildEndpointRequest(cfg, ResolveRequest{
		AssetID:     42,
		AccessToken: "call-token",
		ServerURL:   "https://staging.assetforge.io/base",
	})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if req.URL != "https://staging.assetforge.io/base/v1/assets/42/endpoint" {
		t.Fatalf("unexpected url: %q", req.URL)
	}
	if req.QueryParameters["access_token"] != "call-token" {
		t.Fatalf("expected per-call token to win, got %v", req.QueryParameters)
	}
}

func TestBuildEndpointRequest_NoTokenOmitsParameter(t *testing.T) {
	req, err := BuildEndpointRequest(DefaultConfig(), ResolveRequest{AssetID: 7})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if _, ok := req.QueryParameters["access_token"]; ok {
		t.Fatalf("expected access_token to be omitted, got %v", req.QueryParameters)
	}
	if strings.Contains(req.RequestURL(), "access_token") {
		t.Fatalf("request url leaks a token parameter: %q", req.RequestURL())
	}
}

func TestBuildEndpointRequest_InvalidInput(t *testing.T) {
	if _, err := BuildEndpointRequest(DefaultConfig(), ResolveRequest{}); err == nil {
		t.Fatalf("expected missing asset id to fail")
	}
	if _, err := BuildEndpointRequest(Config{}, ResolveRequest{AssetID: 1}); err == nil {
		t.Fatalf("expected missing server url to fail")
	}
	if _, err := BuildEndpointRequest(Config{ServerURL: "not-a-url"}, ResolveRequest{AssetID: 1}); err == nil {
		t.Fatalf("expected relative server url to fail")
	}
}

func TestEndpointRequest_CacheKey(t *testing.T) {
	cfg := DefaultConfig()

	anonymous, err := BuildEndpointRequest(cfg, ResolveRequest{AssetID: 9})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	cfg.AccessToken = "token-a"
	tokenA, err := BuildEndpointRequest(cfg, ResolveRequest{AssetID: 9})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	cfg.AccessToken = "token-b"
	tokenB, err := BuildEndpointRequest(cfg, ResolveRequest{AssetID: 9})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	if anonymous.CacheKey() == tokenA.CacheKey() {
		t.Fatalf("anonymous and authenticated requests share a cache key")
	}
	if tokenA.CacheKey() == tokenB.CacheKey() {
		t.Fatalf("different tokens share a cache key")
	}
	if strings.Contains(tokenA.CacheKey(), "token-a") {
		t.Fatalf("cache key carries the raw token: %q", tokenA.CacheKey())
	}
}

func TestEndpointRequest_RequestURL(t *testing.T) {
	req := EndpointRequest{
		URL:             "https://api.assetforge.io/v1/assets/5/endpoint",
		QueryParameters: map[string]string{"access_token": "abc"},
	}
	if got := req.RequestURL(); got != "https://api.assetforge.io/v1/assets/5/endpoint?access_token=abc" {
		t.Fatalf("unexpected request url: %q", got)
	}
}
