package core

import "testing"

func TestResourceFromEndpoint_MergesRequestAndEndpointAuth(t *testing.T) {
	endpoint := Endpoint{
		Type:        AssetType3DTiles,
		URL:         "https://assets.assetforge.io/124624234/tileset.json",
		AccessToken: "endpoint-token",
		Attributions: []Attribution{
			{Text: "Imagery Co"},
		},
	}
	req := EndpointRequest{
		AssetID:         124624234,
		URL:             "https://api.assetforge.io/v1/assets/124624234/endpoint",
		QueryParameters: map[string]string{"access_token": "lookup-token"},
	}

	resource, err := ResourceFromEndpoint(endpoint, req)
	if err != nil {
		t.Fatalf("resource from endpoint: %v", err)
	}
	if resource.URL() != endpoint.URL {
		t.Fatalf("unexpected url: %q", resource.URL())
	}
	if got := resource.QueryParameters()["access_token"]; got != "endpoint-token" {
		t.Fatalf("expected the descriptor token to win, got %q", got)
	}
	if resource.Credit() != "Imagery Co" {
		t.Fatalf("unexpected credit: %q", resource.Credit())
	}
}

func TestResourceFromEndpoint_MissingURL(t *testing.T) {
	if _, err := ResourceFromEndpoint(Endpoint{Type: AssetType3DTiles}, EndpointRequest{}); err == nil {
		t.Fatalf("expected missing endpoint url to fail")
	}
}

func TestBareResourceFromOptions(t *testing.T) {
	endpoint := Endpoint{
		Type:         AssetType3DTiles,
		ExternalType: ExternalType3DTiles,
		AccessToken:  "must-be-discarded",
		Options:      ProviderOptions{"url": "https://tiles.example.com/tileset.json"},
	}
	resource, err := BareResourceFromOptions(endpoint)
	if err != nil {
		t.Fatalf("bare resource: %v", err)
	}
	if resource.URL() != "https://tiles.example.com/tileset.json" {
		t.Fatalf("unexpected url: %q", resource.URL())
	}
	if len(resource.QueryParameters()) != 0 {
		t.Fatalf("bare resource must not carry auth, got %v", resource.QueryParameters())
	}

	endpoint.Options = ProviderOptions{}
	if _, err := BareResourceFromOptions(endpoint); err == nil {
		t.Fatalf("expected missing options url to fail")
	}
}

func TestResource_QueryParametersCopies(t *testing.T) {
	resource, err := NewResource("https://assets.example.com/a", map[string]string{"access_token": "abc"})
	if err != nil {
		t.Fatalf("new resource: %v", err)
	}
	leaked := resource.QueryParameters()
	leaked["access_token"] = "mutated"
	if resource.QueryParameters()["access_token"] != "abc" {
		t.Fatalf("resource query parameters were mutated through the accessor")
	}
}

func TestResource_RequestURL(t *testing.T) {
	resource, err := NewResource("https://assets.example.com/a", map[string]string{"access_token": "abc"})
	if err != nil {
		t.Fatalf("new resource: %v", err)
	}
	if got := resource.RequestURL(); got != "https://assets.example.com/a?access_token=abc" {
		t.Fatalf("unexpected request url: %q", got)
	}

	withQuery, err := NewResource("https://assets.example.com/a?v=2", map[string]string{"access_token": "abc"})
	if err != nil {
		t.Fatalf("new resource: %v", err)
	}
	if got := withQuery.RequestURL(); got != "https://assets.example.com/a?v=2&access_token=abc" {
		t.Fatalf("unexpected request url: %q", got)
	}
}
