package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-assets/core"
)

func testRequest(serverURL string, assetID int64, token string) core.EndpointRequest {
	req := core.EndpointRequest{
		AssetID:         assetID,
		URL:             fmt.Sprintf("%s/v1/assets/%d/endpoint", serverURL, assetID),
		QueryParameters: map[string]string{},
	}
	if token != "" {
		req.QueryParameters["access_token"] = token
	}
	return req
}

func TestClient_FetchEndpoint_Success(t *testing.T) {
	var gotPath, gotToken, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"type":         "IMAGERY",
			"externalType": "BING",
			"options":      map[string]any{"key": "abc"},
			"attributions": []map[string]any{{"text": "Imagery Co"}},
		}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := New(DefaultConfig())
	endpoint, err := client.FetchEndpoint(context.Background(), testRequest(server.URL, 2347923, "lookup-token"))
	if err != nil {
		t.Fatalf("fetch endpoint: %v", err)
	}

	if gotPath != "/v1/assets/2347923/endpoint" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotToken != "lookup-token" {
		t.Fatalf("unexpected token parameter: %q", gotToken)
	}
	if gotRequestID == "" {
		t.Fatalf("expected a correlation header")
	}
	if endpoint.Type != core.AssetTypeImagery || endpoint.ExternalType != core.ExternalTypeBing {
		t.Fatalf("unexpected descriptor: %+v", endpoint)
	}
	if endpoint.Options["key"] != "abc" {
		t.Fatalf("options were not decoded verbatim: %v", endpoint.Options)
	}
	if endpoint.Credit() != "Imagery Co" {
		t.Fatalf("unexpected credit: %q", endpoint.Credit())
	}
}

func TestClient_FetchEndpoint_OmitsTokenWhenAbsent(t *testing.T) {
	var hasToken bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasToken = r.URL.Query()["access_token"]
		w.Write([]byte(`{"type":"3DTILES","url":"https://assets.example.com/tileset.json"}`))
	}))
	defer server.Close()

	client := New(DefaultConfig())
	if _, err := client.FetchEndpoint(context.Background(), testRequest(server.URL, 9, "")); err != nil {
		t.Fatalf("fetch endpoint: %v", err)
	}
	if hasToken {
		t.Fatalf("anonymous lookup must not carry an access_token parameter")
	}
}

func TestClient_FetchEndpoint_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"asset not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := New(DefaultConfig())
	_, err := client.FetchEndpoint(context.Background(), testRequest(server.URL, 999, "token"))
	if err == nil {
		t.Fatalf("expected status error")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.TextCode != core.AssetErrorEndpointUnavailable {
		t.Fatalf("unexpected text code: %q", rich.TextCode)
	}
	if rich.Category != goerrors.CategoryExternal {
		t.Fatalf("unexpected category: %v", rich.Category)
	}
}

func TestClient_FetchEndpoint_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(DefaultConfig())
	_, err := client.FetchEndpoint(context.Background(), testRequest(server.URL, 7, "token"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected rich error, got %T", err)
	}
	if rich.TextCode != core.AssetErrorEndpointUnavailable {
		t.Fatalf("unexpected text code: %q", rich.TextCode)
	}
}

func TestClient_FetchEndpoint_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"type":"IMAGERY","externalType":"TMS","options":{"url":"https://tiles.example.com"}}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.RetryWaitTime = 1
	cfg.RetryMaxWaitTime = 2

	client := New(cfg)
	endpoint, err := client.FetchEndpoint(context.Background(), testRequest(server.URL, 3, ""))
	if err != nil {
		t.Fatalf("fetch endpoint: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if endpoint.ExternalType != core.ExternalTypeTMS {
		t.Fatalf("unexpected descriptor: %+v", endpoint)
	}
}

func TestRetryCondition(t *testing.T) {
	if !retryCondition(nil, context.DeadlineExceeded) {
		t.Fatalf("transport errors must retry")
	}
	if retryCondition(nil, nil) {
		t.Fatalf("nil response without error must not retry")
	}
}
